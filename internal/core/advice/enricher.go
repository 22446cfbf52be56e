package advice

import (
	"fmt"
	"regexp"
	"strings"

	"skincare-advisor/internal/core/dataset"
)

// 策略說明表採固定欄位位置：第 0 欄為策略名稱、第 1 欄為說明文字、
// 第 2–4 欄為圖片連結、第 5–7 欄為影片參考
const (
	strategyNarrativeCol = 1
	strategyImageFirst   = 2
	strategyImageLast    = 4
	strategyVideoFirst   = 5
	strategyVideoLast    = 7
)

var bilibiliIDPattern = regexp.MustCompile(`(BV[a-zA-Z0-9]+)`)

// EnrichStrategy 查出策略的說明文字、圖片與影片參考。
// 以第 0 欄精確比對策略名稱；找不到對應列時回傳全空內容，
// 單一儲存格無法辨識時只略過該儲存格，其餘照常輸出。
func EnrichStrategy(strategy string, t dataset.Table) StrategyContent {
	row := -1
	for i := range t.Rows {
		if t.Cell(i, 0) == strategy {
			row = i
			break
		}
	}
	if row < 0 {
		return StrategyContent{}
	}

	content := StrategyContent{
		Narrative: t.Cell(row, strategyNarrativeCol),
	}

	for col := strategyImageFirst; col <= strategyImageLast; col++ {
		url := t.Cell(row, col)
		if !isHTTPURL(url) {
			continue
		}
		content.Images = append(content.Images, ConvertGoogleDriveURL(url))
	}

	for col := strategyVideoFirst; col <= strategyVideoLast; col++ {
		if ref, ok := parseVideoCell(t.Cell(row, col)); ok {
			content.Videos = append(content.Videos, ref)
		}
	}

	return content
}

// ConvertGoogleDriveURL 把 Google Drive 的檔案分享連結改寫為
// 可直接檢視的形式。不是分享連結、或路徑不含預期片段時，
// 原樣回傳而不報錯。
func ConvertGoogleDriveURL(url string) string {
	if !strings.Contains(url, "drive.google.com") || !strings.Contains(url, "/file/d/") {
		return url
	}
	rest := url[strings.Index(url, "/file/d/")+len("/file/d/"):]
	if i := strings.Index(rest, "/"); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return url
	}
	return fmt.Sprintf("https://drive.google.com/uc?export=view&id=%s", rest)
}

// parseVideoCell 解析影片儲存格，格式為「標題|連結」或純連結。
// 全形直線一律先換成半形；Bilibili 連結另外抽出 BV 編號組出
// 內嵌播放器連結，其餘連結視為可直接播放的來源。
func parseVideoCell(cell string) (VideoRef, bool) {
	val := strings.TrimSpace(strings.ReplaceAll(cell, "｜", "|"))
	if !strings.HasPrefix(val, "http") && !strings.Contains(val, "|") {
		return VideoRef{}, false
	}

	var title, url string
	if i := strings.Index(val, "|"); i >= 0 {
		title = strings.TrimSpace(val[:i])
		url = strings.TrimSpace(val[i+1:])
	} else {
		url = val
	}
	if !isHTTPURL(url) {
		return VideoRef{}, false
	}

	ref := VideoRef{Title: title, URL: url}
	if strings.Contains(url, "bilibili.com") || strings.Contains(url, "b23.tv") {
		if bv := bilibiliIDPattern.FindString(url); bv != "" {
			ref.EmbedURL = fmt.Sprintf(
				"https://player.bilibili.com/player.html?bvid=%s&page=1&high_quality=1&danmaku=0", bv)
		}
	}
	return ref, true
}

// isHTTPURL 檢查值是否為 HTTP(S) 連結
func isHTTPURL(v string) bool {
	return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://")
}
