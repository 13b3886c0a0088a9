package main

import (
	"log"

	"github.com/Gameonesoft123/gameon-v2-sub001/config"
	"github.com/Gameonesoft123/gameon-v2-sub001/database"
	authRoutes "github.com/Gameonesoft123/gameon-v2-sub001/routers/authRoutes"
	bonusRoutes "github.com/Gameonesoft123/gameon-v2-sub001/routers/bonusRoutes"
	cashflowRoutes "github.com/Gameonesoft123/gameon-v2-sub001/routers/cashflowRoutes"
	customerRoutes "github.com/Gameonesoft123/gameon-v2-sub001/routers/customerRoutes"
	machineRoutes "github.com/Gameonesoft123/gameon-v2-sub001/routers/machineRoutes"
	matchCreditRoutes "github.com/Gameonesoft123/gameon-v2-sub001/routers/matchCreditRoutes"
	staffRoutes "github.com/Gameonesoft123/gameon-v2-sub001/routers/staffRoutes"
	storeRoutes "github.com/Gameonesoft123/gameon-v2-sub001/routers/storeRoutes"
	superAdminRoutes "github.com/Gameonesoft123/gameon-v2-sub001/routers/superAdminRoutes"
	"github.com/Gameonesoft123/gameon-v2-sub001/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	storeRoutes.SetupStoreRoutes(app)
	customerRoutes.SetupCustomerRoutes(app)
	machineRoutes.SetupMachineRoutes(app)
	staffRoutes.SetupStaffRoutes(app)
	matchCreditRoutes.SetupMatchCreditRoutes(app)
	bonusRoutes.SetupBonusRoutes(app)
	cashflowRoutes.SetupCashflowRoutes(app)
	superAdminRoutes.SetupSuperAdminRoutes(app)

	// Nightly maintenance: stale-match auto-void + owner summaries
	utils.InitializeMatchScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
