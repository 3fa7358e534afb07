package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TallerServices01/maintenance-tracker/internal/handlers"
	infraRepo "github.com/TallerServices01/maintenance-tracker/internal/infra/repository"
	"github.com/TallerServices01/maintenance-tracker/internal/middleware"
	"github.com/TallerServices01/maintenance-tracker/internal/session"
	"github.com/TallerServices01/maintenance-tracker/internal/storage"
	ucOrder "github.com/TallerServices01/maintenance-tracker/internal/usecase/order"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	mgr *session.Manager,
	store session.Store,
	uploader storage.Uploader,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	orderRepo := infraRepo.NewOrderGormRepository(db)

	// ======================================================
	// USE CASES — ORDERS
	// ======================================================
	createOrderUC := ucOrder.NewCreateOrder(orderRepo)
	advanceOrderUC := ucOrder.NewAdvanceOrder(orderRepo)
	deleteOrderUC := ucOrder.NewDeleteOrder(orderRepo)
	listOrdersUC := ucOrder.NewListOrders(orderRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, mgr, store)
	orderHandler := handlers.NewOrderHandler(
		db,
		store,
		createOrderUC,
		advanceOrderUC,
		deleteOrderUC,
		listOrdersUC,
	)
	equipmentHandler := handlers.NewEquipmentHandler(db, store, uploader)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)

	// ======================================================
	// SESSION-GATED ROUTES
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.RequireSession(mgr, store))
	{
		secured.GET("/logout", authHandler.Logout)

		// ------------------------------
		// ORDERS
		// ------------------------------
		secured.GET("/", orderHandler.Index)
		secured.POST("/crear", orderHandler.Create)
		secured.GET("/cambiar/:id", orderHandler.Advance)
		secured.GET("/borrar/:id",
			middleware.RequireAdmin(store, "/"),
			orderHandler.Delete,
		)

		// ------------------------------
		// EQUIPMENT
		// ------------------------------
		secured.GET("/equipos", equipmentHandler.List)
		secured.POST("/equipos/crear", equipmentHandler.Create)
		secured.GET("/equipos/:id", equipmentHandler.Detail)
		secured.GET("/equipos/borrar/:id",
			middleware.RequireAdmin(store, "/equipos"),
			equipmentHandler.Delete,
		)
	}
}
