package advice

// Profile 肌膚類型定義
type Profile struct {
	ID         string   `json:"id"`         // 類型名稱，快照內唯一
	Icon       string   `json:"icon"`       // 顯示用圖示
	Title      string   `json:"title"`      // 定義參考文字
	Feel       []string `json:"feel"`       // 核心感受清單
	Visual     []string `json:"visual"`     // 視覺特徵清單
	Strategies []string `json:"strategies"` // 策略名稱，順序即呈現順序
}

// Ingredient 推薦成分
type Ingredient struct {
	Name        string  `json:"name"`
	INCI        string  `json:"inci"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Stars       int     `json:"stars"`    // 推薦指數星數
	Progress    int     `json:"progress"` // 進度條數值（score × 20）
}

// VideoRef 影片參考。EmbedURL 只有在辨識出 Bilibili BV 編號時
// 才會填入，否則以 URL 作為可直接播放的來源。
type VideoRef struct {
	Title    string `json:"title,omitempty"`
	URL      string `json:"url"`
	EmbedURL string `json:"embed_url,omitempty"`
}

// StrategyContent 策略說明內容。找不到對應策略列時全部為空，
// 不視為錯誤。
type StrategyContent struct {
	Narrative string     `json:"narrative"`
	Images    []string   `json:"images"`
	Videos    []VideoRef `json:"videos"`
}

// ShopLinks 三個電商入口的搜尋深連結
type ShopLinks struct {
	Xiaohongshu string `json:"xiaohongshu"`
	JD          string `json:"jd"`
	Taobao      string `json:"taobao"`
}

// Product 嚴選單品
type Product struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	ShopLinks   ShopLinks `json:"shop_links"`
}

// SearchQuery 合成的搜尋查詢
type SearchQuery struct {
	Label     string    `json:"label,omitempty"` // 防晒三分查詢時的類別標籤
	Query     string    `json:"query"`
	ShopLinks ShopLinks `json:"shop_links"`
}

// MatchPolicy 單品匹配採用的策略，供呈現層決定渲染方式
type MatchPolicy string

const (
	PolicyExactMatch    MatchPolicy = "exact-match"          // 嚴選清單內有精確符合的單品
	PolicyGenericSearch MatchPolicy = "generic-search"       // 以策略加成分合成單一查詢
	PolicySunSplit      MatchPolicy = "sun-protection-split" // 防晒策略的物理／化學／混合三分查詢
)

// ProductMatch 單品匹配結果
type ProductMatch struct {
	Policy   MatchPolicy   `json:"policy"`
	Products []Product     `json:"products,omitempty"`
	Queries  []SearchQuery `json:"queries,omitempty"`
}

// Bundle 單一策略的完整推薦組合
type Bundle struct {
	Strategy    string          `json:"strategy"`
	Content     StrategyContent `json:"content"`
	Ingredients []Ingredient    `json:"ingredients"`
	Products    ProductMatch    `json:"products"`
}
