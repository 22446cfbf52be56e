package advice

import (
	"testing"

	"skincare-advisor/internal/core/dataset"
)

func heroTable() dataset.Table {
	return dataset.Table{
		Columns: []string{"中文名", "分类", "INCI", "功效", "分数"},
		Rows: [][]string{
			{"烟酰胺", "控油,美白", "Niacinamide", "调理水油", "5"},
			{"水杨酸", "控油", "Salicylic Acid", "疏通毛孔", "3"},
			{"茶树精粹", "控油", "Tea Tree Oil", "净化", "0"},
			{"锌PCA", "控油", "Zinc PCA", "控油锁水", "5"},
			{"金缕梅", "控油", "Hamamelis", "收敛", "2"},
			{"白柳树皮", "控油", "Salix Alba", "温和代谢", "NaN"},
			{"玻尿酸", "保湿", "Hyaluronic Acid", "补水", "5"},
		},
	}
}

func TestRankIngredientsTopFiveStableOrder(t *testing.T) {
	got := RankIngredients("控油", heroTable(), 5)

	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}

	wantScores := []float64{5, 5, 3, 2, 0}
	for i, ing := range got {
		if ing.Score != wantScores[i] {
			t.Fatalf("score[%d] = %v, want %v (order: %v)", i, ing.Score, wantScores[i], got)
		}
	}

	// 兩個 5 分列之間必須保留來源順序：烟酰胺在锌PCA之前
	if got[0].Name != "烟酰胺" || got[1].Name != "锌PCA" {
		t.Fatalf("tie between equal scores must keep source order, got %q then %q",
			got[0].Name, got[1].Name)
	}
}

func TestRankIngredientsInvalidScoreSortsLast(t *testing.T) {
	got := RankIngredients("控油", heroTable(), 10)

	if len(got) != 6 {
		t.Fatalf("len = %d, want 6", len(got))
	}
	last := got[len(got)-1]
	if last.Score != 0 {
		t.Fatalf("invalid scores must coerce to 0, got %v", last.Score)
	}
	// 兩個 0 分列（茶树精粹在前、NaN 的白柳树皮在後）保留來源順序
	if got[4].Name != "茶树精粹" || got[5].Name != "白柳树皮" {
		t.Fatalf("zero-score rows out of source order: %q, %q", got[4].Name, got[5].Name)
	}
}

func TestRankIngredientsSubstringContainment(t *testing.T) {
	table := dataset.Table{
		Columns: []string{"中文名", "分类", "INCI", "功效", "分数"},
		Rows: [][]string{
			{"氧化锌", "防晒霜,保湿", "Zinc Oxide", "物理防晒", "4"},
			{"烟酰胺", "控油", "Niacinamide", "调理", "5"},
		},
	}

	got := RankIngredients("防晒", table, 5)
	if len(got) != 1 || got[0].Name != "氧化锌" {
		t.Fatalf("strategy must match category by containment, got %v", got)
	}
}

func TestRankIngredientsStarsAndProgress(t *testing.T) {
	got := RankIngredients("控油", heroTable(), 1)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Stars != 5 || got[0].Progress != 100 {
		t.Fatalf("stars/progress = %d/%d, want 5/100", got[0].Stars, got[0].Progress)
	}
}

func TestRankIngredientsDoesNotMutateSource(t *testing.T) {
	table := heroTable()
	RankIngredients("控油", table, 5)

	// 分數欄的原始文字必須原封不動，不同策略的併發排序共用同一份快照
	if got := table.Cell(5, 4); got != "NaN" {
		t.Fatalf("source score cell mutated: %q", got)
	}
}

func TestRankIngredientsNoMatch(t *testing.T) {
	if got := RankIngredients("美白", dataset.Table{}, 5); len(got) != 0 {
		t.Fatalf("empty table should yield no ingredients, got %v", got)
	}
}

func TestRankIngredientsPositionalFallback(t *testing.T) {
	// 表頭全部無法辨識時退回前五欄的位置順序
	table := dataset.Table{
		Columns: []string{"c0", "c1", "c2", "c3", "c4"},
		Rows: [][]string{
			{"某成分", "控油", "INCI-X", "描述", "4"},
		},
	}

	got := RankIngredients("控油", table, 5)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	if got[0].Name != "某成分" || got[0].INCI != "INCI-X" || got[0].Score != 4 {
		t.Fatalf("positional fallback mis-mapped: %+v", got[0])
	}
}
