package dataset

import (
	"strings"
)

// Table 以欄位標籤加列資料表示一份試算表分頁。
// 內容一律為字串；缺值在正規化後以空字串表示。
type Table struct {
	Columns []string
	Rows    [][]string
}

// IsEmpty 檢查資料表是否沒有任何資料列
func (t Table) IsEmpty() bool {
	return len(t.Rows) == 0
}

// Cell 讀取指定列與欄的值，超出範圍時回傳空字串
func (t Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// IsAbsent 檢查儲存格值是否為缺值標記
func IsAbsent(value string) bool {
	return value == ""
}

// 全形逗號與頓號一律折疊為 ASCII 逗號，讓清單欄位只有一種分隔符
var listSeparators = strings.NewReplacer("，", ",", "、", ",")

// Normalize 清理資料表：欄位標籤去除前後空白，儲存格去除前後空白、
// 折疊分隔符，並把字串化缺值 "nan" 轉為空字串。結果是新的資料表，
// 來源不會被修改；對已正規化的資料表再執行一次是無操作。
func Normalize(t Table) Table {
	clean := Table{
		Columns: make([]string, len(t.Columns)),
		Rows:    make([][]string, len(t.Rows)),
	}
	for i, col := range t.Columns {
		clean.Columns[i] = strings.TrimSpace(col)
	}
	for i, row := range t.Rows {
		cleanRow := make([]string, len(row))
		for j, cell := range row {
			cleanRow[j] = normalizeCell(cell)
		}
		clean.Rows[i] = cleanRow
	}
	return clean
}

// normalizeCell 清理單一儲存格
func normalizeCell(cell string) string {
	v := strings.TrimSpace(cell)
	if strings.EqualFold(v, "nan") {
		return ""
	}
	return listSeparators.Replace(v)
}

// SplitList 以逗號切開清單欄位，去除空白並丟棄空項目，保留原始順序
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
