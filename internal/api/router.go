package api

import (
	"strings"

	"homebar/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter 组装中间件与全部路由
func (h *HTTPHandler) NewRouter() *gin.Engine {
	r := gin.New()

	r.Use(RequestIDMiddleware())
	r.Use(LoggingMiddleware())
	r.Use(CORSMiddleware())
	if h.metrics != nil {
		r.Use(MetricsMiddleware(h.metrics))
	}
	r.Use(gin.Recovery())

	r.GET("/health", h.Health)
	if h.metrics != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.metrics.Registry(), promhttp.HandlerOpts{})))
	}

	apiGroup := r.Group("/api")

	authGroup := apiGroup.Group("/auth")
	authGroup.GET("/status", h.AuthStatus)
	authGroup.POST("/login", h.Login)

	// 读取接口开放，写入接口需要店主身份
	apiGroup.GET("/overview", h.Overview)
	apiGroup.GET("/participants", h.ListParticipants)
	apiGroup.GET("/inventory", h.ListInventory)
	apiGroup.GET("/inventory/:id", h.GetInventoryItem)
	apiGroup.GET("/recipes", h.ListRecipes)
	apiGroup.GET("/recipes/:id", h.GetRecipe)
	apiGroup.GET("/events", h.ListEvents)
	apiGroup.GET("/events/:id", h.GetEvent)
	apiGroup.GET("/events/:id/stats", h.EventStats)
	apiGroup.GET("/consumptions", h.ListConsumptions)
	apiGroup.GET("/suggestions/history", h.SuggestionHistory)
	apiGroup.GET("/bartenders", h.ListBartenders)

	protected := apiGroup.Group("")
	protected.Use(h.OwnerMiddleware())

	protected.POST("/participants", h.CreateParticipant)
	protected.PATCH("/participants/:id", h.UpdateParticipant)
	protected.DELETE("/participants/:id", h.DeleteParticipant)

	protected.POST("/inventory", h.SaveInventoryItem)
	protected.PATCH("/inventory/:id", h.PatchInventoryItem)
	protected.DELETE("/inventory/:id", h.DeleteInventoryItem)

	protected.POST("/recipes", h.SaveRecipe)
	protected.PUT("/recipes/:id", h.EditRecipe)
	protected.DELETE("/recipes/:id", h.DeleteRecipe)
	protected.POST("/recipes/:id/photo", h.UploadRecipePhoto)
	protected.DELETE("/recipes/:id/photo", h.DeleteRecipePhoto)

	protected.POST("/events", h.CreateEvent)
	protected.PATCH("/events/:id", h.UpdateEvent)
	protected.DELETE("/events/:id", h.DeleteEvent)
	protected.POST("/events/:id/recipes", h.AddEventRecipe)
	protected.DELETE("/events/:id/recipes/:recipe_id", h.RemoveEventRecipe)
	protected.POST("/events/:id/summary", h.EventSummary)
	protected.POST("/events/:id/recommendation", h.EventRecommendation)

	protected.POST("/consumptions", h.LogConsumption)
	protected.DELETE("/consumptions/:id", h.DeleteConsumption)

	protected.POST("/suggestions", h.Suggest)
	protected.POST("/suggestions/omakase", h.Omakase)

	protected.POST("/bartenders", h.CreateBartender)
	protected.PATCH("/bartenders/:id", h.UpdateBartender)
	protected.DELETE("/bartenders/:id", h.DeleteBartender)

	h.mountLocalPhotos(r)
	return r
}

// mountLocalPhotos 本地存储时直接由 gin 提供照片文件
func (h *HTTPHandler) mountLocalPhotos(r *gin.Engine) {
	localProvider, ok := h.storage.(storage.LocalBaseDirProvider)
	if !ok {
		return
	}
	publicPrefix := h.storagePublicBase
	if strings.HasPrefix(publicPrefix, "http://") || strings.HasPrefix(publicPrefix, "https://") {
		return
	}
	r.Static(publicPrefix, localProvider.LocalBaseDir())
}
