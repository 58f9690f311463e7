package handler

import (
	"fmt"
	"time"

	"maintenance-backend/internal/app/dto"
	"maintenance-backend/internal/app/repository"
	"maintenance-backend/internal/app/role"
	"maintenance-backend/internal/app/schedule"
	"maintenance-backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// Получение текущего пользователя из контекста
func (h *APIHandler) getUserFromContext(c *gin.Context) (uint, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return 0, role.Operator, fmt.Errorf("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return 0, r, fmt.Errorf("invalid user ID")
	}

	return id, r, nil
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// parseDate разбирает ISO дату; пустая строка — nil (поле не задано)
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	parsed, err := time.Parse(schedule.DateLayout, s)
	if err != nil {
		return nil, err
	}
	parsed = schedule.DateOnly(parsed)
	return &parsed, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(schedule.DateLayout)
}

// Преобразование оборудования в DTO
func toEquipmentResponse(eq repository.EquipmentInfo) dto.EquipmentResponse {
	photoURL := ""
	if eq.PhotoURL != nil {
		photoURL = *eq.PhotoURL
	}

	return dto.EquipmentResponse{
		ID:               eq.ID,
		ClientID:         eq.ClientID,
		ClientName:       eq.ClientName,
		Model:            eq.Model,
		SerialNumber:     eq.SerialNumber,
		Periodicity:      eq.Periodicity,
		FirstServiceDate: formatDate(eq.FirstServiceDate),
		UnderWarranty:    eq.UnderWarranty,
		WarrantyEndDate:  formatDate(eq.WarrantyEndDate),
		PhotoURL:         photoURL,
	}
}

// Преобразование обслуживания в DTO с денормализованными полями
func toServiceResponse(occ schedule.Occurrence, eq repository.EquipmentInfo) dto.ServiceResponse {
	return dto.ServiceResponse{
		EquipmentID:   occ.EquipmentID,
		ScheduledDate: occ.ScheduledDate.Format(schedule.DateLayout),
		Authorized:    occ.Authorized,
		Periodicity:   eq.Periodicity,
		Model:         eq.Model,
		SerialNumber:  eq.SerialNumber,
		ClientID:      eq.ClientID,
		ClientName:    eq.ClientName,
		UnderWarranty: eq.UnderWarranty,
	}
}
