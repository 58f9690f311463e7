package handler

import (
	"maintenance-backend/internal/app/middleware"
	"maintenance-backend/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	// REST API маршруты
	api := router.Group("/api")

	// ============ Клиенты (Clients) ============
	clients := api.Group("/clients")
	{
		// Чтение без авторизации
		clients.GET("", h.GetClients) // GET список

		// Изменения — для авторизованных пользователей
		clients.POST("", authMiddleware.WithAuthCheck(role.Operator, role.Admin), h.CreateClient)          // POST создание
		clients.PUT("/:id", authMiddleware.WithAuthCheck(role.Operator, role.Admin), h.UpdateClient)       // PUT изменение
		clients.DELETE("/:id", authMiddleware.WithAuthCheck(role.Operator, role.Admin), h.DeleteClient)    // DELETE удаление
	}

	// ============ Оборудование (Equipment) ============
	equipment := api.Group("/equipment")
	{
		equipment.GET("", h.GetEquipmentList)   // GET список с поиском
		equipment.GET("/:id", h.GetEquipment)   // GET одна запись

		equipment.POST("", authMiddleware.WithAuthCheck(role.Operator, role.Admin), h.CreateEquipment)                 // POST создание
		equipment.PUT("/:id", authMiddleware.WithAuthCheck(role.Operator, role.Admin), h.UpdateEquipment)              // PUT изменение
		equipment.DELETE("/:id", authMiddleware.WithAuthCheck(role.Operator, role.Admin), h.DeleteEquipment)           // DELETE удаление
		equipment.POST("/:id/image", authMiddleware.WithAuthCheck(role.Operator, role.Admin), h.UploadEquipmentPhoto)  // POST фото
	}

	// ============ Обслуживания (Services) ============
	services := api.Group("/services")
	{
		services.GET("", h.GetServices)                 // GET все обслуживания до горизонта
		services.GET("/upcoming", h.GetUpcomingServices) // GET ближайшие N

		// Переключение авторизации по идентичности (оборудование, дата)
		services.PUT("/authorize", authMiddleware.WithAuthCheck(role.Operator, role.Admin), h.AuthorizeService)
	}

	// ============ Календарь (Calendar) ============
	calendar := api.Group("/calendar")
	{
		calendar.GET("/:year/:month", h.GetCalendarMonth)           // GET месячный вид
		calendar.GET("/:year/:month/export", h.ExportCalendarMonth) // GET экспорт в iCalendar
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser) // POST регистрация
		auth.POST("/login", h.AuthHandler.LoginUser)       // POST аутентификация JWT

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Operator, role.Admin), h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", authMiddleware.WithAuthCheck(role.Operator, role.Admin), h.AuthHandler.UpdateUserProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Operator, role.Admin), h.AuthHandler.LogoutUser)
	}

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
