package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// FetchFunc 抓取單一來源的原始文字，失敗時回傳錯誤。
// 載入器只依賴這個介面，測試時可注入假實作。
type FetchFunc func(ctx context.Context, url string) (string, error)

// CSVFetcher 透過 HTTP 抓取試算表發布的 CSV 匯出
type CSVFetcher struct {
	client *resty.Client
}

// NewCSVFetcher 創建 CSV 抓取器
func NewCSVFetcher(timeout time.Duration) *CSVFetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "text/csv, text/plain").
		SetHeader("Accept-Charset", "utf-8")

	return &CSVFetcher{client: client}
}

// Fetch 抓取指定 URL 的原始內容
func (f *CSVFetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch source: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("source returned status %d", resp.StatusCode())
	}
	return string(resp.Body()), nil
}

// ParseCSV 把原始 CSV 文字解析為資料表。第一列視為欄位標籤。
// 各列長度允許不一致，缺的儲存格由 Table.Cell 視為空字串。
func ParseCSV(raw string) (Table, error) {
	raw = strings.TrimPrefix(raw, "\xef\xbb\xbf")
	if strings.TrimSpace(raw) == "" {
		return Table{}, nil
	}

	r := csv.NewReader(strings.NewReader(raw))
	r.LazyQuotes = true
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return Table{}, nil
		}
		return Table{}, fmt.Errorf("failed to read header row: %w", err)
	}

	var rows [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("failed to read row: %w", err)
		}
		rows = append(rows, record)
	}

	return Table{Columns: header, Rows: rows}, nil
}
