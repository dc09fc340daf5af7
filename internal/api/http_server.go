package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"homebar/internal/auth"
	"homebar/internal/config"
	"homebar/internal/llm"
	"homebar/internal/metrics"
	"homebar/internal/model"
	"homebar/internal/service"
	"homebar/internal/storage"

	"github.com/gin-gonic/gin"
)

// requestTimeout bounds every repository call made by a handler. Suggestion
// calls use the gateway timeout instead.
const requestTimeout = 5 * time.Second

// HTTPHandler HTTP 请求处理器
type HTTPHandler struct {
	cfg               config.Config
	repo              model.Repository
	storage           storage.Storage
	storagePublicBase string
	owner             *auth.Owner
	metrics           *metrics.Metrics

	// 服务层
	recipeService      *service.RecipeService
	consumptionService *service.ConsumptionService
	statsService       *service.StatsService
	suggestionService  *service.SuggestionService
}

// NewHTTPHandler 创建 HTTP 处理器实例，gateway 与 metrics 可为 nil
func NewHTTPHandler(cfg config.Config, repo model.Repository, store storage.Storage, gateway *llm.Gateway, m *metrics.Metrics) (*HTTPHandler, error) {
	owner, err := auth.NewOwner(cfg)
	if err != nil {
		return nil, err
	}

	if gateway == nil {
		gateway = llm.NewGateway(nil, cfg.LLMTemperature)
	}

	statsSvc := service.NewStatsService(repo)
	return &HTTPHandler{
		cfg:                cfg,
		repo:               repo,
		storage:            store,
		storagePublicBase:  storage.NormalisePublicBase(cfg.StoragePublicBaseURL),
		owner:              owner,
		metrics:            m,
		recipeService:      service.NewRecipeService(repo, store),
		consumptionService: service.NewConsumptionService(repo),
		statsService:       statsSvc,
		suggestionService:  service.NewSuggestionService(repo, gateway, statsSvc, m),
	}, nil
}

// photoURL 将存储键转换为对外可访问的地址
func (h *HTTPHandler) photoURL(key string) string {
	return storage.PublicURL(h.storagePublicBase, key)
}

// requestContext 为仓库调用生成带超时的上下文
func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), requestTimeout)
}

// parseIDParam 解析路径中的正整数 ID，失败时直接写回 400
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		BadRequest(c, ErrCodeInvalidRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// requireRepo 在仓库不可用时写回 503
func (h *HTTPHandler) requireRepo(c *gin.Context) bool {
	if h.repo == nil {
		ServiceUnavailable(c, "repository not available")
		return false
	}
	return true
}

// Health 存活检查
func (h *HTTPHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
