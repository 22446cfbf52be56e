package advice

import (
	"context"

	"skincare-advisor/internal/core/dataset"
	"skincare-advisor/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 推薦組合服務，系統唯一的公開進入點。
// 純編排：載入快照、展開策略，再為每個策略依序執行
// 成分排序、策略說明與單品匹配。
type Service struct {
	loader *dataset.Loader
	limit  int
}

// NewService 創建推薦組合服務
func NewService(loader *dataset.Loader) *Service {
	return &Service{
		loader: loader,
		limit:  DefaultIngredientLimit,
	}
}

// Profiles 取得全部肌膚類型清單。
// 肌膚類型表為空是唯一回報給外層的失敗狀態，代表資料尚未
// 載入或連結設定有誤。
func (s *Service) Profiles(ctx context.Context) ([]Profile, error) {
	snap := s.loader.Snapshot(ctx)
	if snap.Profile.IsEmpty() {
		return nil, common.ErrProfileTableEmpty
	}
	return Profiles(snap.Profile), nil
}

// Assemble 為指定肌膚類型組出依策略排序的推薦組合清單。
// 類型不存在或沒有任何策略時回傳空清單，這是合法的終止狀態，
// 呈現層應顯示「尚無方案」而不是錯誤。
func (s *Service) Assemble(ctx context.Context, profileID string) ([]Bundle, error) {
	snap := s.loader.Snapshot(ctx)
	if snap.Profile.IsEmpty() {
		return nil, common.ErrProfileTableEmpty
	}

	strategies := ExpandStrategies(profileID, snap.Profile)
	if len(strategies) == 0 {
		common.LogInfo("肌膚類型沒有對應策略",
			zap.String("類型", profileID),
		)
		return []Bundle{}, nil
	}

	picks := s.loader.Picks(ctx)

	bundles := make([]Bundle, 0, len(strategies))
	for _, strategy := range strategies {
		ingredients := RankIngredients(strategy, snap.Hero, s.limit)

		names := make([]string, 0, len(ingredients))
		for _, ing := range ingredients {
			names = append(names, ing.Name)
		}

		bundles = append(bundles, Bundle{
			Strategy:    strategy,
			Content:     EnrichStrategy(strategy, snap.Strategy),
			Ingredients: ingredients,
			Products:    MatchProducts(strategy, names, picks),
		})
	}

	common.LogInfo("推薦方案已組合",
		zap.String("類型", profileID),
		zap.Int("策略數量", len(bundles)),
	)
	return bundles, nil
}
