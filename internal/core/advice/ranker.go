package advice

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"skincare-advisor/internal/core/dataset"
)

// DefaultIngredientLimit 每個策略預設選出的成分數量
const DefaultIngredientLimit = 5

// 成分總表的欄位關鍵字；解析失敗時退回前五欄的位置順序
var (
	heroNameKeys  = []string{"中文", "Name"}
	heroCatKeys   = []string{"分类", "分類", "Category"}
	heroINCIKeys  = []string{"INCI"}
	heroDescKeys  = []string{"功效", "描述", "Desc"}
	heroScoreKeys = []string{"分数", "分數", "Score"}
)

// RankIngredients 為指定策略挑出得分最高的成分。
// 分類欄以子字串包含比對策略名稱（「防晒」要能命中「防晒霜,保湿」，
// 所以是包含而非相等）；分數欄逐列轉為數值，缺值或無法解析視為 0，
// 負數視為 0。排序為分數遞減的穩定排序，同分保留來源列順序。
// 轉換只發生在輸出值上，來源資料表不會被修改，因此多個策略可以
// 併發排序同一份快照。
func RankIngredients(strategy string, hero dataset.Table, limit int) []Ingredient {
	if limit <= 0 {
		limit = DefaultIngredientLimit
	}

	nameCol := dataset.FindColumnOr(hero, 0, heroNameKeys...)
	catCol := dataset.FindColumnOr(hero, 1, heroCatKeys...)
	inciCol := dataset.FindColumnOr(hero, 2, heroINCIKeys...)
	descCol := dataset.FindColumnOr(hero, 3, heroDescKeys...)
	scoreCol := dataset.FindColumnOr(hero, 4, heroScoreKeys...)
	if catCol < 0 {
		return nil
	}

	var matched []Ingredient
	for i := range hero.Rows {
		if !strings.Contains(hero.Cell(i, catCol), strategy) {
			continue
		}
		score := coerceScore(hero.Cell(i, scoreCol))
		matched = append(matched, Ingredient{
			Name:        hero.Cell(i, nameCol),
			INCI:        hero.Cell(i, inciCol),
			Category:    hero.Cell(i, catCol),
			Description: hero.Cell(i, descCol),
			Score:       score,
			Stars:       int(score),
			Progress:    int(score) * 20,
		})
	}

	// 同分之下保留來源順序是正確性要求，必須用穩定排序
	sort.SliceStable(matched, func(a, b int) bool {
		return matched[a].Score > matched[b].Score
	})

	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched
}

// coerceScore 把分數儲存格轉為非負數值，無法解析時視為 0。
// ParseFloat 會接受 "NaN" 與 "Inf" 字面值，這裡一併視為無效分數。
func coerceScore(cell string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
