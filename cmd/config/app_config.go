package config

import (
	"os"
	"time"

	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/api/handlers"
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/api/routes"
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/middleware"
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/utils"
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/utils/storage"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/admin"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/auditlog"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/food"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/jwt"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/order"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/payment"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Kolkata",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	orderRepository := order.NewOrderRepository(db)
	auditRepository := auditlog.NewAuditRepository(db)
	adminRepository := admin.NewAdminRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	paymentService := payment.NewPaymentService()
	userService := user.NewUserService(userRepository, foodRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, s3)
	orderService := order.NewOrderService(orderRepository, userRepository, foodRepository, paymentService)
	auditService := auditlog.NewAuditService(auditRepository)
	adminService := admin.NewAdminService(adminRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, auditService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, userService, auditService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, auditService, validator)
	adminHandler := handlers.NewAdminHandler(adminService, userService, auditService)

	// routes
	routesConfig := routes.Config{
		App:          app,
		UserHandler:  userHandler,
		FoodHandler:  foodHandler,
		OrderHandler: orderHandler,
		AdminHandler: adminHandler,
		Middleware:   middlewares,
		JWTService:   jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
