package advice

import (
	"net/http"

	adviceService "skincare-advisor/internal/core/advice"
	"skincare-advisor/internal/core/session"
	"skincare-advisor/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler 推薦方案處理程序
type Handler struct {
	adviceService *adviceService.Service
	sessions      *session.Store
}

// NewHandler 創建新的推薦方案處理程序
func NewHandler(svc *adviceService.Service, sessions *session.Store) *Handler {
	return &Handler{
		adviceService: svc,
		sessions:      sessions,
	}
}

// ProfilesResponse 肌膚類型清單響應
type ProfilesResponse struct {
	Profiles []adviceService.Profile `json:"profiles"`
}

// RecommendationsResponse 推薦方案響應
type RecommendationsResponse struct {
	Profile string                 `json:"profile"`
	Bundles []adviceService.Bundle `json:"bundles"`
}

// SelectProfileRequest 選定肌膚類型請求
type SelectProfileRequest struct {
	ProfileID string `json:"profile_id" binding:"required"` // 選定的肌膚類型名稱
}

// HandleProfiles 回傳全部肌膚類型（側邊欄對比指南用）
func (h *Handler) HandleProfiles(c *gin.Context) {
	profiles, err := h.adviceService.Profiles(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ProfilesResponse{Profiles: profiles})
}

// HandleRecommendations 為指定肌膚類型組出推薦方案。
// 類型不存在或沒有策略時回傳空清單，呈現層顯示「尚無方案」。
func (h *Handler) HandleRecommendations(c *gin.Context) {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}

	profileID := c.Param("profile")
	common.LogInfo("開始組合推薦方案",
		zap.String("request_id", requestID),
		zap.String("類型", profileID),
	)

	bundles, err := h.adviceService.Assemble(c.Request.Context(), profileID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, RecommendationsResponse{
		Profile: profileID,
		Bundles: bundles,
	})
}

// HandleGetSession 讀取精靈流程狀態
func (h *Handler) HandleGetSession(c *gin.Context) {
	state, err := h.sessions.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// HandleSelectProfile 選定肌膚類型；換類型時精靈步驟重置回鑑定中
func (h *Handler) HandleSelectProfile(c *gin.Context) {
	var req SelectProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("請求格式無效", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	state, err := h.sessions.Select(c.Request.Context(), c.Param("id"), req.ProfileID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// HandleConfirm 使用者確認鑑定結果，精靈步驟轉為已揭示
func (h *Handler) HandleConfirm(c *gin.Context) {
	state, err := h.sessions.Confirm(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// respondError 把自定義錯誤轉為對應的 HTTP 響應
func (h *Handler) respondError(c *gin.Context, err error) {
	if ce, ok := err.(*common.CustomError); ok {
		c.JSON(ce.Status, gin.H{
			"error": ce.Message,
			"code":  ce.Code,
		})
		return
	}
	common.LogError("處理請求失敗",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
		"code":  common.ErrCodeInternalError,
	})
}
