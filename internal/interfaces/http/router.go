package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmaventa-api/internal/application/access"
	"github.com/jhoicas/Farmaventa-api/internal/application/analytics"
	"github.com/jhoicas/Farmaventa-api/internal/application/auth"
	"github.com/jhoicas/Farmaventa-api/internal/application/cart"
	"github.com/jhoicas/Farmaventa-api/internal/application/orders"
	"github.com/jhoicas/Farmaventa-api/internal/application/usecase"
	"github.com/jhoicas/Farmaventa-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	MedicineUC  *usecase.MedicineUseCase
	CartUC      *cart.UseCase
	OrderUC     *orders.UseCase
	OrderPDFUC  *orders.PDFUseCase
	BuyerUC     *usecase.BuyerUseCase
	AdminUC     *usecase.AdminUseCase
	SettingsUC  *usecase.SettingsUseCase
	DashboardUC *analytics.DashboardUseCase
	Resolver    *access.Resolver
	JWTSecret   string
	Session     SessionConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth del storefront (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo (lectura pública)
	medicines := api.Group("/medicines")
	medicineHandler := NewMedicineHandler(deps.MedicineUC)
	medicines.Get("/", medicineHandler.List)
	medicines.Get("/:id", medicineHandler.GetByID)

	// Rutas del comprador (requieren Bearer Token)
	buyerProtected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	cartGroup := buyerProtected.Group("/cart")
	cartHandler := NewCartHandler(deps.CartUC)
	cartGroup.Get("/", cartHandler.Get)
	cartGroup.Delete("/", cartHandler.Clear)
	cartGroup.Post("/items", cartHandler.AddItem)
	cartGroup.Put("/items/:medicineID", cartHandler.SetQuantity)
	cartGroup.Delete("/items/:medicineID", cartHandler.RemoveItem)
	cartGroup.Post("/checkout", cartHandler.Checkout)

	orderHandler := NewOrderHandler(deps.OrderUC, deps.OrderPDFUC)
	myOrders := buyerProtected.Group("/my/orders")
	myOrders.Get("/", orderHandler.ListMine)
	myOrders.Get("/:id", orderHandler.GetMine)

	buyerHandler := NewBuyerHandler(deps.BuyerUC)
	profile := buyerProtected.Group("/profile")
	profile.Get("/", buyerHandler.GetProfile)
	profile.Put("/", buyerHandler.UpdateProfile)
	profile.Post("/addresses", buyerHandler.AddAddress)
	profile.Put("/addresses/:addressID/default", buyerHandler.SetDefaultAddress)

	// Panel de administración. Login e introspección son públicos; el resto
	// exige la cookie de sesión y el permiso de la sección.
	admin := api.Group("/admin")
	adminHandler := NewAdminHandler(deps.AuthUC, deps.AdminUC, deps.Session)
	admin.Post("/login", adminHandler.Login)
	admin.Post("/logout", adminHandler.Logout)
	admin.Get("/session", adminHandler.Session)

	adminProtected := admin.Group("/", SessionMiddleware(deps.Session))
	adminProtected.Get("/profile", adminHandler.Profile)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	adminProtected.Get("/dashboard",
		RequirePermission(entity.PermDashboard, deps.Resolver),
		dashboardHandler.Summary)

	adminOrders := adminProtected.Group("/orders", RequirePermission(entity.PermOrders, deps.Resolver))
	adminOrders.Get("/", orderHandler.List)
	adminOrders.Get("/export", orderHandler.ExportCSV)
	adminOrders.Get("/:id", orderHandler.GetByID)
	adminOrders.Get("/:id/invoice", orderHandler.InvoicePDF)
	adminOrders.Put("/:id/status", orderHandler.UpdateStatus)

	adminMedicines := adminProtected.Group("/medicines", RequirePermission(entity.PermDrugs, deps.Resolver))
	adminMedicines.Post("/", medicineHandler.Create)
	adminMedicines.Put("/:id", medicineHandler.Update)
	adminMedicines.Delete("/:id", medicineHandler.Delete)

	adminBuyers := adminProtected.Group("/buyers", RequirePermission(entity.PermBuyers, deps.Resolver))
	adminBuyers.Get("/", buyerHandler.List)
	adminBuyers.Get("/:id", buyerHandler.GetByID)
	adminBuyers.Post("/:id/approve", buyerHandler.Approve)
	adminBuyers.Post("/:id/toggle", buyerHandler.Toggle)

	adminAdmins := adminProtected.Group("/admins", RequirePermission(entity.PermManageAdmins, deps.Resolver))
	adminAdmins.Post("/", adminHandler.Create)
	adminAdmins.Get("/", adminHandler.List)
	adminAdmins.Get("/:id", adminHandler.GetByID)
	adminAdmins.Put("/:id", adminHandler.Update)
	adminAdmins.Post("/:id/approve", adminHandler.Approve)
	adminAdmins.Post("/:id/toggle", adminHandler.Toggle)

	adminSettings := adminProtected.Group("/settings", RequirePermission(entity.PermSettings, deps.Resolver))
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	adminSettings.Get("/", settingsHandler.Get)
	adminSettings.Put("/", settingsHandler.Update)
}
