package router

import (
	"time"

	"planiftchop/internal/config"
	"planiftchop/internal/handler"
	"planiftchop/internal/infra"
	"planiftchop/internal/middleware"
	"planiftchop/internal/notify"
	"planiftchop/internal/repository"
	"planiftchop/internal/service"
	"planiftchop/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, notifier notify.Notifier, mailCB *infra.CircuitBreaker) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	dishRepo := repository.NewDishRepository(db)
	stockRepo := repository.NewStockRepository(db)
	planRepo := repository.NewPlanRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	dishSvc := service.NewDishService(dishRepo)
	stockSvc := service.NewStockService(stockRepo)
	planSvc := service.NewPlanService(planRepo, dishRepo)
	memberSvc := service.NewMemberService(memberRepo)
	shoppingSvc := service.NewShoppingService(planRepo, dishRepo, stockRepo)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	reportSvc := service.NewReportService(cfg.UserID, planRepo, dishRepo, stockRepo, memberSvc, shoppingSvc, notifier, dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	dishesH := handler.NewDishesHandler(dishSvc, cfg.UserID)
	stockH := handler.NewStockHandler(stockSvc, cfg.UserID)
	plansH := handler.NewPlansHandler(planSvc, cfg.UserID)
	membersH := handler.NewMembersHandler(memberSvc, cfg.UserID)
	shoppingH := handler.NewShoppingHandler(shoppingSvc, cfg.UserID)
	reportsH := handler.NewReportsHandler(reportSvc, cfg.UserID)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/health", handler.Health(db, rdb, mailCB))

	v1 := r.Group("/v1")
	{
		dishes := v1.Group("/dishes")
		{
			dishes.POST("", dishesH.Create)
			dishes.GET("", dishesH.List)
			dishes.GET("/:id", dishesH.GetByID)
			dishes.PUT("/:id", dishesH.Update)
			dishes.DELETE("/:id", dishesH.Delete)
		}

		stock := v1.Group("/stock")
		{
			stock.POST("", stockH.Create)
			stock.GET("", stockH.List)
			stock.GET("/alerts", stockH.Alerts)
			stock.PUT("/:id", stockH.Update)
			stock.DELETE("/:id", stockH.Delete)
		}

		plans := v1.Group("/plans")
		{
			plans.POST("", plansH.Create)
			plans.GET("", plansH.List)
			plans.PATCH("/:id/prepared", plansH.SetPrepared)
			plans.DELETE("/:id", plansH.Delete)
		}

		members := v1.Group("/members")
		{
			members.POST("", membersH.Create)
			members.GET("", membersH.List)
			members.DELETE("/:id", membersH.Delete)
		}

		v1.GET("/shopping-list", shoppingH.Get)
		v1.GET("/shopping-list/export.pdf", shoppingH.ExportPDF)
		v1.GET("/shopping-list/export.xlsx", shoppingH.ExportXLSX)

		v1.POST("/reports/email", reportsH.Email)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
