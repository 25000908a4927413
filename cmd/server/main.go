package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"employee-management-api/internal/config"
	"employee-management-api/internal/database"
	"employee-management-api/internal/handlers"
	"employee-management-api/internal/repository"
	"employee-management-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(database.GetDB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// CORS is open to any origin; deployments are expected to narrow this.
	r.Use(cors.Default())

	// Initialize repositories and services
	db := database.GetDB()
	employeeRepo := repository.NewEmployeeRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	employeeService := services.NewEmployeeService(employeeRepo)
	taskService := services.NewTaskService(taskRepo)
	authService := services.NewAuthService(employeeRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(employeeService, authService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Employee Management API is running",
		})
	})

	// Auth routes
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Employee routes
	r.GET("/employees", employeeHandler.ListEmployees)
	r.GET("/employees/:id", employeeHandler.GetEmployee)
	r.PUT("/employees/:id", employeeHandler.UpdateEmployee)
	r.DELETE("/employees/:id", employeeHandler.DeleteEmployee)

	// Task routes
	r.POST("/tasks", taskHandler.CreateTask)
	r.GET("/tasks", taskHandler.ListTasks)
	r.GET("/tasks/:id", taskHandler.GetTask)
	r.GET("/my-tasks", taskHandler.ListMyTasks)
	r.PUT("/tasks/:id", taskHandler.UpdateTask)
	r.DELETE("/tasks/:id", taskHandler.DeleteTask)

	// Start server
	log.Printf("Server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
