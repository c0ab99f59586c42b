package router

import (
	"net/http"

	handlerauth "github.com/dioncoinz/sibw-backend/internal/api/handler/auth"
	handlerbreakin "github.com/dioncoinz/sibw-backend/internal/api/handler/breakin"
	"github.com/dioncoinz/sibw-backend/internal/api/middleware"
	authservice "github.com/dioncoinz/sibw-backend/internal/service/auth"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Setup(
	authHandler *handlerauth.AuthHandler,
	breakInHandler *handlerbreakin.BreakInHandler,
	sessions *authservice.SessionService,
	mode string,
) *gin.Engine {
	if mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 使用自定义的 recovery 中间件（打印详细错误信息）
	r.Use(middleware.RecoveryMiddleware())
	r.Use(gin.Logger())
	r.Use(middleware.CORS())
	r.Use(middleware.MetricsMiddleware())

	// 公开API（不需要认证）
	api := r.Group("/api")
	{
		api.POST("/login", authHandler.Login)
		api.POST("/logout", authHandler.Logout)
	}

	// 需要认证的路由
	authenticated := api.Group("")
	authenticated.Use(middleware.SessionMiddleware(sessions))
	{
		breakIn := authenticated.Group("/break-in")
		{
			breakIn.POST("", breakInHandler.Create)         // 创建工单
			breakIn.GET("", breakInHandler.List)            // 工单列表
			breakIn.GET("/dashboard", breakInHandler.Dashboard) // 仪表盘指标
			breakIn.GET("/:id", breakInHandler.Get)         // 工单详情

			// 四级审批
			breakIn.POST("/:id/planner-decision", breakInHandler.PlannerDecision)
			breakIn.POST("/:id/coordinator-decision", breakInHandler.CoordinatorDecision)
			breakIn.POST("/:id/superintendent-decision", breakInHandler.SuperintendentDecision)
			breakIn.POST("/:id/manager-decision", breakInHandler.ManagerDecision)

			// 执行跟踪
			breakIn.POST("/:id/start", breakInHandler.Start)
			breakIn.POST("/:id/progress", breakInHandler.UpdateProgress)
			breakIn.POST("/:id/complete", breakInHandler.Complete)

			breakIn.DELETE("/:id", breakInHandler.Delete) // 删除工单
		}
	}

	// Prometheus Metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check (支持 GET 和 HEAD 方法)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"type":   "api-server",
		})
	})
	r.HEAD("/health", func(c *gin.Context) {
		c.Status(200)
	})

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Not Found",
		})
	})

	return r
}
