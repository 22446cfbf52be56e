package advice

import (
	"skincare-advisor/internal/core/dataset"
)

// 肌膚類型表的欄位關鍵字，涵蓋簡繁體與英文版本的表頭
var (
	profileIconKeys   = []string{"Icon"}
	profileTitleKeys  = []string{"标题", "標題", "Title"}
	profileFeelKeys   = []string{"感受", "感", "Feel"}
	profileVisualKeys = []string{"特征", "特徵", "Visual"}
	profileStratKeys  = []string{"策略", "Strategy"}
)

// Profiles 把肌膚類型表轉為類型清單，順序依照來源列順序。
// 類型名稱固定取第一欄，其餘欄位以關鍵字解析，缺欄位時留空。
func Profiles(t dataset.Table) []Profile {
	iconCol, _ := dataset.FindColumn(t, profileIconKeys...)
	titleCol, _ := dataset.FindColumn(t, profileTitleKeys...)
	feelCol, _ := dataset.FindColumn(t, profileFeelKeys...)
	visualCol, _ := dataset.FindColumn(t, profileVisualKeys...)
	stratCol, _ := dataset.FindColumn(t, profileStratKeys...)

	profiles := make([]Profile, 0, len(t.Rows))
	seen := make(map[string]bool, len(t.Rows))
	for i := range t.Rows {
		id := t.Cell(i, 0)
		if id == "" || seen[id] {
			// 重複的類型名稱屬於資料品質問題，沿用首列
			continue
		}
		seen[id] = true

		profiles = append(profiles, Profile{
			ID:         id,
			Icon:       t.Cell(i, iconCol),
			Title:      t.Cell(i, titleCol),
			Feel:       dataset.SplitList(t.Cell(i, feelCol)),
			Visual:     dataset.SplitList(t.Cell(i, visualCol)),
			Strategies: dataset.SplitList(t.Cell(i, stratCol)),
		})
	}
	return profiles
}

// ExpandStrategies 查出指定肌膚類型的策略名稱清單。
// 以第一欄精確比對類型名稱，取首個符合列；策略欄以逗號切開、
// 去空白、丟棄空項目，保留來源順序（順序是作者的優先度訊號）。
// 類型不存在或策略欄無法解析時回傳空清單。
func ExpandStrategies(profileID string, t dataset.Table) []string {
	stratCol, ok := dataset.FindColumn(t, profileStratKeys...)
	if !ok {
		return nil
	}
	for i := range t.Rows {
		if t.Cell(i, 0) == profileID {
			return dataset.SplitList(t.Cell(i, stratCol))
		}
	}
	return nil
}
