package dataset

import (
	"strings"
)

// FindColumn 在資料表欄位標籤中尋找第一個包含任一關鍵字的欄位，
// 回傳欄位索引。試算表各版本間欄位命名並不一致（例如「分类」、
// 「分類」、"Category"），因此用關鍵字包含比對而不是精確比對。
// 比對順序以欄位為準：最先出現的符合欄位勝出，與關鍵字順序無關。
// 找不到時回傳 (-1, false)，呼叫端必須處理缺欄位的情況。
func FindColumn(t Table, keywords ...string) (int, bool) {
	for i, col := range t.Columns {
		for _, key := range keywords {
			if key != "" && strings.Contains(col, key) {
				return i, true
			}
		}
	}
	return -1, false
}

// FindColumnOr 同 FindColumn，但找不到時退回指定的位置索引。
// 位置索引超出欄位範圍時回傳 -1。
func FindColumnOr(t Table, fallback int, keywords ...string) int {
	if i, ok := FindColumn(t, keywords...); ok {
		return i
	}
	if fallback >= 0 && fallback < len(t.Columns) {
		return fallback
	}
	return -1
}
