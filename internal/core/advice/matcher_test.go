package advice

import (
	"strings"
	"testing"

	"skincare-advisor/internal/core/dataset"
)

func picksTable() dataset.Table {
	return dataset.Table{
		Columns: []string{"Strategy", "Product_Name", "Product_Desc"},
		Rows: [][]string{
			{"控油", "某控油精华", "水杨酸配方"},
			{"控油", "", "名称缺失"},
			{"控油", "nan", "字符串化缺值"},
			{"保湿", "某保湿霜", "神经酰胺"},
		},
	}
}

func TestMatchProductsExactMatch(t *testing.T) {
	match := MatchProducts("控油", []string{"烟酰胺"}, picksTable())

	if match.Policy != PolicyExactMatch {
		t.Fatalf("policy = %q, want %q", match.Policy, PolicyExactMatch)
	}
	if len(match.Products) != 1 {
		t.Fatalf("products = %d, want 1 (empty and nan names skipped)", len(match.Products))
	}
	p := match.Products[0]
	if p.Name != "某控油精华" || p.Description != "水杨酸配方" {
		t.Fatalf("unexpected product: %+v", p)
	}
	if !strings.HasPrefix(p.ShopLinks.Xiaohongshu, "xhsdiscover://search/result?keyword=") {
		t.Fatalf("xiaohongshu link = %q", p.ShopLinks.Xiaohongshu)
	}
	if !strings.Contains(p.ShopLinks.JD, "so.m.jd.com") {
		t.Fatalf("jd link = %q", p.ShopLinks.JD)
	}
	if !strings.HasPrefix(p.ShopLinks.Taobao, "taobao://") {
		t.Fatalf("taobao link = %q", p.ShopLinks.Taobao)
	}
}

func TestMatchProductsGenericSearch(t *testing.T) {
	names := []string{"A", "B", "C", "D", "E", "F"}
	match := MatchProducts("修护", names, picksTable())

	if match.Policy != PolicyGenericSearch {
		t.Fatalf("policy = %q, want %q", match.Policy, PolicyGenericSearch)
	}
	if len(match.Queries) != 1 {
		t.Fatalf("queries = %d, want 1", len(match.Queries))
	}
	q := match.Queries[0].Query
	if !strings.HasPrefix(q, "修护") {
		t.Fatalf("query must start with strategy name: %q", q)
	}
	for _, name := range names[:5] {
		if !strings.Contains(q, name) {
			t.Fatalf("query missing ingredient %q: %q", name, q)
		}
	}
	if strings.Contains(q, "F") {
		t.Fatalf("query must cap ingredients at 5: %q", q)
	}
}

func TestMatchProductsStrategyOnlyQuery(t *testing.T) {
	match := MatchProducts("修护", nil, dataset.Table{})

	if match.Policy != PolicyGenericSearch {
		t.Fatalf("policy = %q, want %q", match.Policy, PolicyGenericSearch)
	}
	if got := match.Queries[0].Query; got != "修护" {
		t.Fatalf("empty ingredients should yield strategy-only query, got %q", got)
	}
}

func TestMatchProductsSunProtectionSplit(t *testing.T) {
	for _, strategy := range []string{"防晒", "日常防曬", "防晒加强"} {
		t.Run(strategy, func(t *testing.T) {
			match := MatchProducts(strategy, []string{"氧化锌"}, dataset.Table{})

			if match.Policy != PolicySunSplit {
				t.Fatalf("policy = %q, want %q", match.Policy, PolicySunSplit)
			}
			if len(match.Queries) != 3 {
				t.Fatalf("queries = %d, want 3", len(match.Queries))
			}
			labels := []string{match.Queries[0].Label, match.Queries[1].Label, match.Queries[2].Label}
			want := []string{"物理防晒", "化学防晒", "混合防晒"}
			for i := range want {
				if labels[i] != want[i] {
					t.Fatalf("labels = %v, want %v", labels, want)
				}
			}
		})
	}
}

func TestMatchProductsPicksBeatSunSplit(t *testing.T) {
	picks := dataset.Table{
		Columns: []string{"Strategy", "Product_Name", "Product_Desc"},
		Rows:    [][]string{{"防晒", "某防晒乳", "SPF50"}},
	}

	match := MatchProducts("防晒", nil, picks)
	if match.Policy != PolicyExactMatch {
		t.Fatalf("exact picks must win over sun split, got %q", match.Policy)
	}
}

func TestBuildShopLinksEscapesKeyword(t *testing.T) {
	links := buildShopLinks("控油 精华")
	if strings.Contains(links.JD, " ") {
		t.Fatalf("keyword not escaped: %q", links.JD)
	}
	if !strings.Contains(links.JD, "keyword=") {
		t.Fatalf("jd link malformed: %q", links.JD)
	}
}
