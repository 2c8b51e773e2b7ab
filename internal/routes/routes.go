package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/organizeja/gestor-api/internal/audit"
	"github.com/organizeja/gestor-api/internal/billing"
	"github.com/organizeja/gestor-api/internal/config"
	"github.com/organizeja/gestor-api/internal/handlers"
	infraRepo "github.com/organizeja/gestor-api/internal/infra/repository"
	"github.com/organizeja/gestor-api/internal/lock"
	"github.com/organizeja/gestor-api/internal/middleware"
	"github.com/organizeja/gestor-api/internal/storage"
	"github.com/organizeja/gestor-api/internal/tenant"
	ucCatalog "github.com/organizeja/gestor-api/internal/usecase/catalog"
	ucEvent "github.com/organizeja/gestor-api/internal/usecase/event"
	ucInventory "github.com/organizeja/gestor-api/internal/usecase/inventory"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	locker *lock.Locker,
	billingService *billing.Service,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	inventoryRepo := infraRepo.NewInventoryGormRepository(db)
	eventRepo := infraRepo.NewEventGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)

	logoStore := storage.NewLogoStore(cfg)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — ESTOQUE
	// ======================================================
	recordMovementUC := ucInventory.NewRecordMovement(
		inventoryRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧠 USE CASES — CATÁLOGO
	// ======================================================
	setMaterialsUC := ucCatalog.NewSetMaterials(
		catalogRepo,
		auditDispatcher,
	)

	estimateCostUC := ucCatalog.NewEstimateCost(
		catalogRepo,
	)

	// ======================================================
	// 🧠 USE CASES — AGENDA
	// ======================================================
	scheduleEventUC := ucEvent.NewScheduleEvent(
		eventRepo,
		auditDispatcher,
	)

	updateEventUC := ucEvent.NewUpdateEvent(
		eventRepo,
		auditDispatcher,
	)

	updateStatusUC := ucEvent.NewUpdateStatus(
		eventRepo,
		auditDispatcher,
	)

	completeEventUC := ucEvent.NewCompleteEvent(
		eventRepo,
		locker,
		auditDispatcher,
	)

	cancelEventUC := ucEvent.NewCancelEvent(
		eventRepo,
		auditDispatcher,
	)

	listEventsByDateUC := ucEvent.NewListEventsByDate(
		eventRepo,
	)

	listEventsByMonthUC := ucEvent.NewListEventsByMonth(
		eventRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	companyHandler := handlers.NewCompanyHandler(db, logoStore, auditDispatcher)

	clientHandler := handlers.NewClientHandler(db)
	productHandler := handlers.NewProductHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	movementHandler := handlers.NewMovementHandler(inventoryRepo, recordMovementUC)

	serviceHandler := handlers.NewServiceHandler(
		db,
		catalogRepo,
		setMaterialsUC,
		estimateCostUC,
	)

	eventHandler := handlers.NewEventHandler(
		scheduleEventUC,
		updateEventUC,
		updateStatusUC,
		completeEventUC,
		cancelEventUC,
		listEventsByDateUC,
		listEventsByMonthUC,
	)

	financeHandler := handlers.NewFinanceHandler(db)
	inviteHandler := handlers.NewInviteHandler(db, auditDispatcher)
	billingHandler := handlers.NewBillingHandler(db, billingService)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 💳 WEBHOOKS (sem JWT; assinatura própria)
		// ------------------------------
		api.POST("/webhooks/mercadopago", billingHandler.Webhook)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/me/dashboard", meHandler.Dashboard)

			secured.GET("/me/company", companyHandler.Get)
			secured.PATCH("/me/company", companyHandler.Update)
			secured.POST("/me/company/logo", companyHandler.UploadLogo)

			// ------------------------------
			// CLIENTES
			// ------------------------------
			secured.GET("/me/clients", clientHandler.List)
			secured.POST("/me/clients", clientHandler.Create)
			secured.GET("/me/clients/:id", clientHandler.Get)
			secured.PATCH("/me/clients/:id", clientHandler.Update)
			secured.DELETE("/me/clients/:id", clientHandler.Delete)

			// ------------------------------
			// SERVIÇOS + MATERIAIS
			// ------------------------------
			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.GET("/me/services/:id", serviceHandler.Get)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)
			secured.GET("/me/services/:id/materials", serviceHandler.GetMaterials)
			secured.PUT("/me/services/:id/materials", serviceHandler.PutMaterials)
			secured.GET("/me/services/:id/estimate", serviceHandler.Estimate)

			// ------------------------------
			// EVENTOS
			// ------------------------------
			secured.POST("/me/events", eventHandler.Create)
			secured.GET("/me/events", eventHandler.ListByDate)
			secured.GET("/me/events/month", eventHandler.ListByMonth)
			secured.PATCH("/me/events/:id", eventHandler.Update)
			secured.PATCH("/me/events/:id/status", eventHandler.UpdateStatus)
			secured.PATCH("/me/events/:id/cancel", eventHandler.Cancel)
			secured.POST("/me/events/:id/complete", eventHandler.Complete)

			// ------------------------------
			// FINANCEIRO
			// ------------------------------
			secured.GET("/me/finances", financeHandler.List)
			secured.POST("/me/finances", financeHandler.Create)

			// ------------------------------
			// 💳 COBRANÇA
			// ------------------------------
			secured.POST("/billing/checkout", billingHandler.Checkout)

			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// ESTOQUE (plus+)
			// ------------------------------
			estoque := secured.Group("/")
			estoque.Use(middleware.RequireFeature(db, tenant.FeatureEstoque))
			{
				estoque.GET("/me/products", productHandler.List)
				estoque.POST("/me/products", productHandler.Create)
				estoque.GET("/me/products/:id", productHandler.Get)
				estoque.PATCH("/me/products/:id", productHandler.Update)
				estoque.DELETE("/me/products/:id", productHandler.Delete)

				estoque.GET("/me/product-categories", categoryHandler.List)
				estoque.POST("/me/product-categories", categoryHandler.Create)
				estoque.DELETE("/me/product-categories/:id", categoryHandler.Delete)
			}

			// ------------------------------
			// MOVIMENTAÇÕES (plus+)
			// ------------------------------
			movimentacoes := secured.Group("/")
			movimentacoes.Use(middleware.RequireFeature(db, tenant.FeatureMovimentacoes))
			{
				movimentacoes.GET("/me/stock-movements", movementHandler.List)
				movimentacoes.POST("/me/stock-movements", movementHandler.Create)
			}

			// ------------------------------
			// CONVITES (pro)
			// ------------------------------
			invites := secured.Group("/")
			invites.Use(middleware.RequireFeature(db, tenant.FeatureInvites))
			{
				invites.POST("/invites", inviteHandler.Create)
				invites.GET("/me/members", inviteHandler.ListMembers)
			}
		}
	}
}
