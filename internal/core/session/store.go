package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"skincare-advisor/internal/infrastructure/config"
	"skincare-advisor/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Step 精靈流程步驟。只有兩個狀態：鑑定中與方案已揭示。
type Step string

const (
	StepCollecting Step = "collecting" // 鑑定中，尚未確認
	StepRevealed   Step = "revealed"   // 已確認，方案已揭示
)

// State 單一使用者跨請求保存的兩個值：目前選定的肌膚類型
// 與精靈步驟。換類型時步驟一律重置回鑑定中。
type State struct {
	ProfileID string `json:"profile_id"`
	Step      Step   `json:"step"`
}

// Store 精靈流程狀態儲存。設定 redis 位址時存到 redis，
// 否則退回進程內的記憶體儲存。
type Store struct {
	client *redis.Client
	ttl    time.Duration

	mu  sync.RWMutex
	mem map[string]State
}

// NewStore 創建狀態儲存
func NewStore(cfg *config.SessionConfig) (*Store, error) {
	s := &Store{
		ttl: cfg.TTL,
		mem: make(map[string]State),
	}

	if cfg.RedisAddr == "" {
		common.LogInfo("未設定 redis，精靈狀態改用記憶體儲存")
		return s, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	s.client = client
	return s, nil
}

// Get 讀取精靈狀態，沒有紀錄時回傳初始狀態（鑑定中）
func (s *Store) Get(ctx context.Context, id string) (State, error) {
	if s.client == nil {
		s.mu.RLock()
		defer s.mu.RUnlock()
		if state, ok := s.mem[id]; ok {
			return state, nil
		}
		return State{Step: StepCollecting}, nil
	}

	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return State{Step: StepCollecting}, nil
		}
		return State{}, fmt.Errorf("failed to get session: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return state, nil
}

// Select 選定肌膚類型。類型改變時步驟重置回鑑定中，
// 重複選同一類型則維持原狀態。
func (s *Store) Select(ctx context.Context, id, profileID string) (State, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return State{}, err
	}

	if state.ProfileID != profileID {
		state = State{ProfileID: profileID, Step: StepCollecting}
		common.LogDebug("精靈狀態已重置",
			zap.String("session", id),
			zap.String("類型", profileID),
		)
	}

	return state, s.save(ctx, id, state)
}

// Confirm 使用者確認鑑定結果，步驟從鑑定中轉為已揭示。
// 尚未選定類型時維持初始狀態並回報錯誤。
func (s *Store) Confirm(ctx context.Context, id string) (State, error) {
	state, err := s.Get(ctx, id)
	if err != nil {
		return State{}, err
	}
	if state.ProfileID == "" {
		return state, common.ErrInvalidRequest
	}

	state.Step = StepRevealed
	return state, s.save(ctx, id, state)
}

// save 寫回狀態
func (s *Store) save(ctx context.Context, id string, state State) error {
	if s.client == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.mem[id] = state
		return nil
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}
	return nil
}

// key 生成儲存鍵
func (s *Store) key(id string) string {
	return "session:wizard:" + id
}

// Close 關閉儲存連線
func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
