package routes

import (
	"pizzapalace/configs"
	"pizzapalace/controllers"
	"pizzapalace/events"
	"pizzapalace/middlewares"
	"pizzapalace/monitor"
	"pizzapalace/repository"
	"pizzapalace/services"
	"pizzapalace/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, pub events.Publisher, feed *ws.OrderFeed, mon *monitor.Monitor) {
	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, catalogRepo, cfg.JWTSecret, cfg.JWTTTL)
	cartSvc := services.NewCartService(db, cartRepo, catalogRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, pub)
	orderSvc.Listener = feed

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	catalogCtrl := controllers.NewCatalogController(catalogRepo)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, cartSvc)
	staffCtrl := controllers.NewStaffOrderController(orderSvc)

	r.GET("/health", mon.Handler())

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
		aAuth.POST("/logout", authCtrl.Logout)
	}

	// Catalog (public, read-only)
	r.GET("/pizzas", catalogCtrl.ListPizzas)
	r.GET("/pizzas/:id", catalogCtrl.GetPizza)
	r.GET("/sizes", catalogCtrl.ListSizes)
	r.GET("/toppings", catalogCtrl.ListToppings)

	// Cart + orders (customer)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/qty", cartCtrl.UpdateQty)
		u.DELETE("/cart/items", cartCtrl.RemoveItem)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/orders", orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:number", orderCtrl.Detail)

		u.GET("/ws/orders/:number", feed.HandleWebSocket(orderSvc))
	}

	// Staff board (staff/admin)
	staff := r.Group("/staff", middlewares.AuthMiddleware(cfg.JWTSecret, "staff", "admin"))
	{
		staff.GET("/orders", staffCtrl.List)
		staff.PATCH("/orders/:number/status", staffCtrl.UpdateStatus)
		staff.PATCH("/orders/:number/payment", staffCtrl.UpdatePayment)
		staff.GET("/health/log", mon.LogHandler())
	}
}
