package router

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/SRAJAN1405/hotel/controllers"
	"github.com/SRAJAN1405/hotel/middlewares"
)

// SetupRouter wires the API routes and the static fallback for the built
// client bundle.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	reservationCtrl := controllers.NewReservationController(db)
	menuCtrl := controllers.NewMenuController(db)
	orderCtrl := controllers.NewOrderController(db)

	registerRoutes(r, reservationCtrl, menuCtrl, orderCtrl)

	return r
}

// SetupRouterWithOrderController is the test entry point: same routes, but
// the order controller (and with it the payment gateway) is supplied by the
// caller.
func SetupRouterWithOrderController(db *gorm.DB, orderCtrl *controllers.OrderController) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	registerRoutes(r, controllers.NewReservationController(db), controllers.NewMenuController(db), orderCtrl)

	return r
}

func registerRoutes(r *gin.Engine, reservationCtrl *controllers.ReservationController, menuCtrl *controllers.MenuController, orderCtrl *controllers.OrderController) {
	api := r.Group("/api")

	table := api.Group("/table")
	{
		table.GET("", reservationCtrl.GetAllReservations)
		table.PUT("/book", middlewares.NewBookingRateLimiter(), reservationCtrl.BookTable)
	}

	menu := api.Group("/menu")
	{
		menu.GET("/dishes", menuCtrl.GetAllDishes)
		menu.POST("/dishes", menuCtrl.CreateDish)
		menu.GET("/seed", menuCtrl.SeedMenu)
	}

	order := api.Group("/order")
	{
		order.GET("", orderCtrl.GetConfirmedOrders)
		order.POST("/create-order", orderCtrl.CreateOrder)
		order.POST("/cashfree-webhook", orderCtrl.CashfreeWebhook)
	}

	// Everything else falls back to the built client bundle: real files are
	// served directly, unknown paths get index.html so the SPA router takes
	// over.
	workDir, _ := os.Getwd()
	distPath := filepath.Join(workDir, "client", "dist")

	r.NoRoute(func(c *gin.Context) {
		requested := filepath.Join(distPath, filepath.Clean("/"+c.Request.URL.Path))
		if !strings.HasPrefix(requested, distPath) {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		index := filepath.Join(distPath, "index.html")
		if _, err := os.Stat(index); err != nil {
			c.String(http.StatusInternalServerError, "Error loading the application")
			return
		}
		c.File(index)
	})
}
