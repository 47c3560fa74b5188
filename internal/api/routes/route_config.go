package routes

import (
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/api/handlers"
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/middleware"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App          *fiber.App
	UserHandler  handlers.UserHandler
	FoodHandler  handlers.FoodHandler
	OrderHandler handlers.OrderHandler
	AdminHandler handlers.AdminHandler
	Middleware   middleware.Middleware
	JWTService   jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Foods()
	c.Orders()
	c.Admin()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) User() {
	users := c.App.Group("/api/users")
	// user routes
	{
		users.Post("/register", c.UserHandler.Register)
		users.Post("/login", c.UserHandler.Login)
		users.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		users.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
	}

	cart := c.App.Group("/api/cart", c.Middleware.AuthMiddleware(c.JWTService))
	{
		cart.Get("", c.UserHandler.GetCart)
		cart.Post("", c.UserHandler.AddToCart)
		cart.Put("/:id", c.UserHandler.UpdateCartItem)
		cart.Delete("/clear", c.UserHandler.ClearCart)
		cart.Delete("/:id", c.UserHandler.RemoveCartItem)
	}
}

func (c *Config) Foods() {
	foods := c.App.Group("/api/foods")

	// Catalog browsing is public, reviews need a logged-in user and
	// mutations are restricted to admins.
	foods.Get("", c.FoodHandler.GetFoods)
	foods.Get("/:id", c.FoodHandler.GetFoodByID)
	foods.Post("/:id/review", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.AddReview)

	foods.Post("/image", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), c.FoodHandler.UploadFoodImage)
	foods.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), c.FoodHandler.AddFood)
	foods.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), c.FoodHandler.UpdateFood)
	foods.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly(), c.FoodHandler.DeleteFood)
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/orders", c.Middleware.AuthMiddleware(c.JWTService))
	{
		orders.Post("", c.OrderHandler.CreateOrder)
		orders.Get("/my", c.OrderHandler.GetMyOrders)
		orders.Get("", c.Middleware.AdminOnly(), c.OrderHandler.GetAllOrders)
		orders.Put("/:id", c.Middleware.AdminOnly(), c.OrderHandler.UpdateOrderStatus)
	}
}

func (c *Config) Admin() {
	admin := c.App.Group("/api/admin", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminOnly())
	{
		admin.Get("/dashboard", c.AdminHandler.GetDashboard)
		admin.Get("/users", c.AdminHandler.GetAllUsers)
		admin.Put("/users/:id/delete", c.AdminHandler.SoftDeleteUser)
		admin.Put("/users/:id/restore", c.AdminHandler.RestoreUser)
		admin.Get("/review/analytics", c.AdminHandler.GetReviewAnalytics)
		admin.Get("/logs", c.AdminHandler.GetLogs)
	}
}
