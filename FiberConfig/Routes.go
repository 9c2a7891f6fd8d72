package FiberConfig

import (
	"fmt"
	"os"

	"LogiTrack/Controllers"
	"LogiTrack/Models"
	"LogiTrack/Store"
	"LogiTrack/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
)

func SetupRoutes(app *fiber.App, data *Store.Data) {
	// Initialize handlers
	authHandler := Controllers.NewAuthHandler(data)
	userHandler := Controllers.NewUserHandler(data)
	requestHandler := Controllers.NewRequestHandler(data)
	driverHandler := Controllers.NewDriverHandler(data)
	clientHandler := Controllers.NewClientHandler(data)
	rateHandler := Controllers.NewRateHandler(data)
	contractHandler := Controllers.NewContractHandler(data)
	expenseHandler := Controllers.NewExpenseHandler(data)
	transactionHandler := Controllers.NewTransactionHandler(data)
	reportHandler := Controllers.NewReportHandler(data)

	// API group
	api := app.Group("/api")

	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/validate-token", middleware.Verify(data), authHandler.ValidateToken)
	api.Post("/change-password", middleware.Verify(data), authHandler.ChangePassword)

	// User management is admin-only
	users := api.Group("/users", middleware.Verify(data, Models.RoleAdmin))
	users.Get("/", userHandler.GetUsers)
	users.Post("/", userHandler.CreateUser)
	users.Put("/", userHandler.UpdateUser)
	users.Delete("/:id", userHandler.DeleteUser)

	// Request routes
	requests := api.Group("/requests", middleware.Verify(data, Models.RoleOperational, Models.RoleClient))
	requests.Get("/", requestHandler.GetRequests)
	requests.Get("/delayed", requestHandler.GetDelayed)
	requests.Post("/", middleware.Verify(data, Models.RoleOperational), requestHandler.CreateRequest)
	requests.Put("/", middleware.Verify(data, Models.RoleOperational), requestHandler.UpdateRequest)
	requests.Patch("/:id/status", middleware.Verify(data, Models.RoleOperational), requestHandler.UpdateStatus)
	requests.Delete("/:id", middleware.Verify(data, Models.RoleOperational), requestHandler.DeleteRequest)

	// Driver and client registries
	drivers := api.Group("/drivers", middleware.Verify(data, Models.RoleOperational))
	drivers.Get("/", driverHandler.GetDrivers)
	drivers.Post("/", driverHandler.CreateDriver)
	drivers.Put("/", driverHandler.UpdateDriver)

	clients := api.Group("/clients", middleware.Verify(data, Models.RoleOperational))
	clients.Get("/", clientHandler.GetClients)
	clients.Post("/", clientHandler.CreateClient)
	clients.Put("/", clientHandler.UpdateClient)

	// Rate table is admin-only to edit, readable by operators
	api.Get("/rates", middleware.Verify(data, Models.RoleOperational), rateHandler.GetRates)
	api.Put("/rates", middleware.Verify(data, Models.RoleAdmin), rateHandler.UpdateRate)

	// Fixed contracts and their staff
	contracts := api.Group("/contracts", middleware.Verify(data, Models.RoleAdmin))
	contracts.Get("/", contractHandler.GetContracts)
	contracts.Get("/summary", contractHandler.GetSummary)
	contracts.Post("/", contractHandler.CreateContract)
	contracts.Put("/", contractHandler.UpdateContract)
	contracts.Delete("/:id", contractHandler.DeleteContract)
	contracts.Post("/:id/staff", contractHandler.AddStaff)
	contracts.Put("/:id/staff/:staffId", contractHandler.UpdateStaff)
	contracts.Delete("/:id/staff/:staffId", contractHandler.DeleteStaff)

	// Payroll expense ledger
	expenses := api.Group("/expenses", middleware.Verify(data, Models.RoleOperational))
	expenses.Get("/", expenseHandler.GetExpenses)
	expenses.Post("/", expenseHandler.CreateExpense)

	// Cash flow ledger is admin-only
	transactions := api.Group("/transactions", middleware.Verify(data, Models.RoleAdmin))
	transactions.Get("/", transactionHandler.GetTransactions)
	transactions.Get("/summary", transactionHandler.GetSummary)
	transactions.Post("/", transactionHandler.CreateTransaction)
	transactions.Put("/", transactionHandler.UpdateTransaction)
	transactions.Patch("/:id/status", transactionHandler.ToggleStatus)
	transactions.Delete("/:id", transactionHandler.DeleteTransaction)

	// Reports
	reports := api.Group("/reports", middleware.Verify(data, Models.RoleAdmin))
	reports.Get("/period", reportHandler.GetPeriodReport)
	reports.Get("/payroll", reportHandler.GetPayrollStatement)
	reports.Get("/payroll/export", reportHandler.ExportPayrollStatement)
}

func FiberConfig(data *Store.Data) {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.Logger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		MaxAge:           300,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		requests, _ := data.Requests.FetchAll(c.Context())
		drivers, _ := data.Drivers.FetchAll(c.Context())
		clients, _ := data.Clients.FetchAll(c.Context())
		return c.Render("index", fiber.Map{
			"Requests": len(requests),
			"Drivers":  len(drivers),
			"Clients":  len(clients),
		})
	})

	SetupRoutes(app, data)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	app.Listen(":" + port)
}
