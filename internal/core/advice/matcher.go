package advice

import (
	"net/url"
	"strings"

	"skincare-advisor/internal/core/dataset"
)

// 嚴選清單的欄位關鍵字（表頭為固定英文名稱）
var (
	pickStratKeys = []string{"Strategy"}
	pickNameKeys  = []string{"Product_Name"}
	pickDescKeys  = []string{"Product_Desc"}
)

// 防晒策略觸發三分查詢；關鍵字涵蓋簡繁體寫法
var sunKeywords = []string{"防晒", "防曬"}

// 防晒三分查詢的固定類別
var sunSplitQueries = []struct {
	label string
	query string
}{
	{"物理防晒", "物理防晒霜"},
	{"化学防晒", "化学防晒霜"},
	{"混合防晒", "混合防晒霜"},
}

// 合成查詢最多帶入的成分名稱數量
const maxQueryIngredients = 5

// MatchProducts 為策略挑選單品或合成搜尋查詢。
// 嚴選清單內有策略名稱精確符合的列時直接回傳那些單品（略過
// 名稱為空或缺值的列）；否則合成查詢：防晒類策略產生物理／化學／
// 混合三條平行查詢，其餘策略把策略名稱與前幾名成分名稱合成單一
// 查詢。空輸入不是錯誤，沒有成分時查詢只含策略名稱。
func MatchProducts(strategy string, topIngredients []string, picks dataset.Table) ProductMatch {
	if products := matchPicks(strategy, picks); len(products) > 0 {
		return ProductMatch{Policy: PolicyExactMatch, Products: products}
	}

	if containsAny(strategy, sunKeywords) {
		queries := make([]SearchQuery, 0, len(sunSplitQueries))
		for _, q := range sunSplitQueries {
			queries = append(queries, SearchQuery{
				Label:     q.label,
				Query:     q.query,
				ShopLinks: buildShopLinks(q.query),
			})
		}
		return ProductMatch{Policy: PolicySunSplit, Queries: queries}
	}

	terms := []string{strategy}
	names := topIngredients
	if len(names) > maxQueryIngredients {
		names = names[:maxQueryIngredients]
	}
	terms = append(terms, names...)
	query := strings.Join(terms, " ")

	return ProductMatch{
		Policy: PolicyGenericSearch,
		Queries: []SearchQuery{{
			Query:     query,
			ShopLinks: buildShopLinks(query),
		}},
	}
}

// matchPicks 從嚴選清單挑出策略名稱精確符合的單品
func matchPicks(strategy string, picks dataset.Table) []Product {
	if picks.IsEmpty() {
		return nil
	}
	stratCol, ok := dataset.FindColumn(picks, pickStratKeys...)
	if !ok {
		return nil
	}
	nameCol, _ := dataset.FindColumn(picks, pickNameKeys...)
	descCol, _ := dataset.FindColumn(picks, pickDescKeys...)

	var products []Product
	for i := range picks.Rows {
		if picks.Cell(i, stratCol) != strategy {
			continue
		}
		name := strings.TrimSpace(picks.Cell(i, nameCol))
		if name == "" || strings.EqualFold(name, "nan") {
			continue
		}
		products = append(products, Product{
			Name:        name,
			Description: strings.TrimSpace(picks.Cell(i, descCol)),
			ShopLinks:   buildShopLinks(name),
		})
	}
	return products
}

// buildShopLinks 以關鍵字組出三個電商入口的搜尋深連結。
// 小紅書與淘寶用 App 喚醒協議，京東用行動版網頁。
func buildShopLinks(keyword string) ShopLinks {
	kw := url.QueryEscape(keyword)
	return ShopLinks{
		Xiaohongshu: "xhsdiscover://search/result?keyword=" + kw,
		JD:          "https://so.m.jd.com/ware/search.action?keyword=" + kw,
		Taobao:      "taobao://s.taobao.com/search?q=" + kw,
	}
}

// containsAny 檢查字串是否包含任一關鍵字
func containsAny(s string, keywords []string) bool {
	for _, key := range keywords {
		if strings.Contains(s, key) {
			return true
		}
	}
	return false
}
