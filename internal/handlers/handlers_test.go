package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"employee-management-api/internal/database"
	"employee-management-api/internal/repository"
	"employee-management-api/internal/services"
)

type apiTestEnv struct {
	db              *gorm.DB
	router          *gin.Engine
	employeeService *services.EmployeeService
	taskService     *services.TaskService
}

func setupAPITestEnv(t *testing.T) apiTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	employeeRepo := repository.NewEmployeeRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	employeeService := services.NewEmployeeService(employeeRepo)
	taskService := services.NewTaskService(taskRepo)
	authService := services.NewAuthService(employeeRepo)

	authHandler := NewAuthHandler(employeeService, authService)
	employeeHandler := NewEmployeeHandler(employeeService)
	taskHandler := NewTaskHandler(taskService)

	r := gin.New()
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/employees", employeeHandler.ListEmployees)
	r.GET("/employees/:id", employeeHandler.GetEmployee)
	r.PUT("/employees/:id", employeeHandler.UpdateEmployee)
	r.DELETE("/employees/:id", employeeHandler.DeleteEmployee)
	r.POST("/tasks", taskHandler.CreateTask)
	r.GET("/tasks", taskHandler.ListTasks)
	r.GET("/tasks/:id", taskHandler.GetTask)
	r.GET("/my-tasks", taskHandler.ListMyTasks)
	r.PUT("/tasks/:id", taskHandler.UpdateTask)
	r.DELETE("/tasks/:id", taskHandler.DeleteTask)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return apiTestEnv{
		db:              db,
		router:          r,
		employeeService: employeeService,
		taskService:     taskService,
	}
}

func performRequest(t *testing.T, r *gin.Engine, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
