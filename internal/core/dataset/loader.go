package dataset

import (
	"context"
	"strings"
	"sync"
	"time"

	"skincare-advisor/internal/infrastructure/config"
	"skincare-advisor/internal/pkg/common"

	"go.uber.org/zap"
)

// 試算表連結尚未填寫時的防呆標記，視同來源不可用
const placeholderMark = "請在這裡貼上"

// Snapshot 一次載入的三份核心資料表，載入後不再修改。
// 呼叫端拿到的是同一個不可變快照，不會看到刷新到一半的狀態。
type Snapshot struct {
	Hero     Table // 成分總表
	Profile  Table // 肌膚類型定義表
	Strategy Table // 策略說明表
	LoadedAt time.Time
}

// Loader 資料快照載入器。三份來源各自獨立抓取，任何一份失敗
// 只會讓該份降級為空表；快照整體以 TTL 快取，時間窗內的重複
// 呼叫共用同一份快照，不會重複抓取。
type Loader struct {
	cfg   *config.DatasetsConfig
	fetch FetchFunc

	mu      sync.Mutex
	snap    *Snapshot
	picks   *Table
	picksAt time.Time
}

// NewLoader 創建資料快照載入器
func NewLoader(cfg *config.DatasetsConfig, fetch FetchFunc) *Loader {
	return &Loader{
		cfg:   cfg,
		fetch: fetch,
	}
}

// Snapshot 取得目前的資料快照，必要時刷新。
// 刷新在鎖內進行，併發呼叫只會觸發一次抓取。
func (l *Loader) Snapshot(ctx context.Context) *Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.snap != nil && time.Since(l.snap.LoadedAt) < l.cfg.SnapshotTTL {
		return l.snap
	}

	start := time.Now()
	snap := &Snapshot{LoadedAt: start}

	// 三份來源之間沒有順序相依，平行抓取以縮短延遲
	var wg sync.WaitGroup
	load := func(name, url string, dst *Table) {
		defer wg.Done()
		*dst = l.loadTable(ctx, name, url)
	}
	wg.Add(3)
	go load("hero", l.cfg.HeroURL, &snap.Hero)
	go load("profile", l.cfg.ProfileURL, &snap.Profile)
	go load("strategy", l.cfg.StrategyURL, &snap.Strategy)
	wg.Wait()

	l.snap = snap
	common.LogSnapshotRefresh(3, time.Since(start))
	return snap
}

// Picks 取得本週嚴選清單，與核心快照各自獨立快取。
// 未設定連結或抓取失敗時回傳空表。
func (l *Loader) Picks(ctx context.Context) Table {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.picks != nil && time.Since(l.picksAt) < l.cfg.SnapshotTTL {
		return *l.picks
	}

	t := l.loadTable(ctx, "picks", l.cfg.PicksURL)
	l.picks = &t
	l.picksAt = time.Now()
	return t
}

// loadTable 抓取並解析單一來源，任何失敗都降級為空表
func (l *Loader) loadTable(ctx context.Context, name, url string) Table {
	if url == "" || strings.Contains(url, placeholderMark) {
		common.LogDebug("資料來源未設定，回傳空表",
			zap.String("來源", name),
		)
		return Table{}
	}

	raw, err := l.fetch(ctx, url)
	if err != nil {
		common.LogSourceFailure(name, err)
		return Table{}
	}

	t, err := ParseCSV(raw)
	if err != nil {
		common.LogSourceFailure(name, err)
		return Table{}
	}

	return Normalize(t)
}
