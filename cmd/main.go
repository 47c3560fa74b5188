package main

import (
	"log"

	"github.com/Aamirnihanms/RestuarentFoodOrder/cmd/config"
	migration "github.com/Aamirnihanms/RestuarentFoodOrder/cmd/database/migrate"
	"github.com/Aamirnihanms/RestuarentFoodOrder/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to set up app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
