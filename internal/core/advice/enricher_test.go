package advice

import (
	"strings"
	"testing"

	"skincare-advisor/internal/core/dataset"
)

func strategyTable() dataset.Table {
	return dataset.Table{
		Columns: []string{"策略", "说明", "图1", "图2", "图3", "视频1", "视频2", "视频3"},
		Rows: [][]string{
			{
				"控油",
				"清爽为先\n分区护理",
				"https://drive.google.com/file/d/ABC123/view?usp=sharing",
				"https://example.com/oil.png",
				"不是链接",
				"控油手法|https://www.bilibili.com/video/BV1xx411c7mD",
				"https://cdn.example.com/guide.mp4",
				"",
			},
		},
	}
}

func TestEnrichStrategy(t *testing.T) {
	content := EnrichStrategy("控油", strategyTable())

	if !strings.Contains(content.Narrative, "\n") {
		t.Fatalf("narrative must keep embedded newlines, got %q", content.Narrative)
	}

	if len(content.Images) != 2 {
		t.Fatalf("images = %d, want 2 (non-http cell skipped)", len(content.Images))
	}
	if want := "https://drive.google.com/uc?export=view&id=ABC123"; content.Images[0] != want {
		t.Fatalf("drive link not rewritten: %q", content.Images[0])
	}
	if content.Images[1] != "https://example.com/oil.png" {
		t.Fatalf("plain image link altered: %q", content.Images[1])
	}

	if len(content.Videos) != 2 {
		t.Fatalf("videos = %d, want 2 (empty cell skipped)", len(content.Videos))
	}
	first := content.Videos[0]
	if first.Title != "控油手法" {
		t.Fatalf("video title = %q", first.Title)
	}
	if !strings.Contains(first.EmbedURL, "bvid=BV1xx411c7mD") {
		t.Fatalf("bilibili embed url missing BV id: %q", first.EmbedURL)
	}
	second := content.Videos[1]
	if second.EmbedURL != "" || second.URL != "https://cdn.example.com/guide.mp4" {
		t.Fatalf("direct video mis-parsed: %+v", second)
	}
}

func TestEnrichStrategyUnknownName(t *testing.T) {
	content := EnrichStrategy("美白", strategyTable())
	if content.Narrative != "" || len(content.Images) != 0 || len(content.Videos) != 0 {
		t.Fatalf("unknown strategy should yield empty content, got %+v", content)
	}
}

func TestConvertGoogleDriveURL(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			"share link rewritten",
			"https://drive.google.com/file/d/ABC123/view?usp=sharing",
			"https://drive.google.com/uc?export=view&id=ABC123",
		},
		{
			"missing file segment unchanged",
			"https://drive.google.com/open?id=ABC123",
			"https://drive.google.com/open?id=ABC123",
		},
		{
			"other host unchanged",
			"https://example.com/file/d/ABC123/view",
			"https://example.com/file/d/ABC123/view",
		},
		{
			"empty identifier unchanged",
			"https://drive.google.com/file/d//view",
			"https://drive.google.com/file/d//view",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ConvertGoogleDriveURL(tc.input); got != tc.want {
				t.Fatalf("ConvertGoogleDriveURL(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestParseVideoCell(t *testing.T) {
	cases := []struct {
		name   string
		cell   string
		wantOK bool
		title  string
		url    string
	}{
		{"bare url", "https://v.example.com/a.mp4", true, "", "https://v.example.com/a.mp4"},
		{"title pipe url", "手法|https://v.example.com/a.mp4", true, "手法", "https://v.example.com/a.mp4"},
		{"fullwidth pipe", "手法｜https://v.example.com/a.mp4", true, "手法", "https://v.example.com/a.mp4"},
		{"plain text skipped", "明天再拍", false, "", ""},
		{"pipe without url skipped", "手法|稍后补充", false, "", ""},
		{"empty skipped", "", false, "", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ref, ok := parseVideoCell(tc.cell)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if ref.Title != tc.title || ref.URL != tc.url {
				t.Fatalf("ref = %+v, want title %q url %q", ref, tc.title, tc.url)
			}
		})
	}
}

func TestParseVideoCellShortLink(t *testing.T) {
	ref, ok := parseVideoCell("https://b23.tv/BV1yy4y1z7ab")
	if !ok {
		t.Fatal("short link should parse")
	}
	if !strings.Contains(ref.EmbedURL, "bvid=BV1yy4y1z7ab") {
		t.Fatalf("embed url missing BV id: %q", ref.EmbedURL)
	}
}
