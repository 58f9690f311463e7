package handler

import (
	"errors"
	"net/http"

	"maintenance-backend/internal/app/dto"
	"maintenance-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН КЛИЕНТЫ ============

// GetClients получает список клиентов
// @Summary Получение списка клиентов
// @Description Возвращает всех клиентов, отсортированных по имени
// @Tags Clients
// @Produce json
// @Success 200 {object} dto.ClientListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/clients [get]
func (h *APIHandler) GetClients(c *gin.Context) {
	clients, err := h.Repository.GetAllClients()
	if err != nil {
		logrus.Error("Error getting clients: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения клиентов")
		return
	}

	dtoClients := make([]dto.ClientResponse, len(clients))
	for i, client := range clients {
		dtoClients[i] = dto.ClientResponse{
			ID:   client.ID,
			Name: client.Name,
		}
	}

	c.JSON(http.StatusOK, dto.ClientListResponse{
		Clients: dtoClients,
		Total:   len(dtoClients),
	})
}

// CreateClient создает нового клиента
// @Summary Создание клиента
// @Description Создает нового клиента
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClientRequest true "Данные клиента"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/clients [post]
func (h *APIHandler) CreateClient(c *gin.Context) {
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	client, err := h.Repository.CreateClient(req.Name)
	if err != nil {
		logrus.Error("Error creating client: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания клиента")
		return
	}

	c.JSON(http.StatusCreated, dto.ClientResponse{
		ID:   client.ID,
		Name: client.Name,
	})
}

// UpdateClient обновляет клиента
// @Summary Обновление клиента
// @Description Обновляет имя клиента
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID клиента"
// @Param request body dto.CreateClientRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/{id} [put]
func (h *APIHandler) UpdateClient(c *gin.Context) {
	id := c.Param("id")

	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	if _, err := h.Repository.GetClientByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "Клиент не найден")
		return
	}

	if err := h.Repository.UpdateClient(id, req.Name); err != nil {
		logrus.Error("Error updating client: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления клиента")
		return
	}

	h.successResponse(c, http.StatusOK, "Клиент успешно обновлен", nil)
}

// DeleteClient удаляет клиента
// @Summary Удаление клиента
// @Description Удаляет клиента. Клиент с оборудованием не удаляется
// @Tags Clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID клиента"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/clients/{id} [delete]
func (h *APIHandler) DeleteClient(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.Repository.GetClientByID(id); err != nil {
		h.errorResponse(c, http.StatusNotFound, "Клиент не найден")
		return
	}

	err := h.Repository.DeleteClient(id)
	if err != nil {
		if errors.Is(err, repository.ErrClientHasEquipment) {
			h.errorResponse(c, http.StatusBadRequest, "Нельзя удалить клиента: у него есть оборудование")
			return
		}
		logrus.Error("Error deleting client: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления клиента")
		return
	}

	h.successResponse(c, http.StatusOK, "Клиент успешно удален", nil)
}
