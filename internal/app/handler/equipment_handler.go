package handler

import (
	"io"
	"net/http"

	"maintenance-backend/internal/app/dto"
	"maintenance-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ============ ДОМЕН ОБОРУДОВАНИЕ ============

// GetEquipmentList получает список оборудования
// @Summary Получение списка оборудования
// @Description Возвращает оборудование с возможностью поиска по модели, серийному номеру или клиенту
// @Tags Equipment
// @Produce json
// @Param query query string false "Поиск по модели, серийному номеру или имени клиента"
// @Success 200 {object} dto.EquipmentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/equipment [get]
func (h *APIHandler) GetEquipmentList(c *gin.Context) {
	searchQuery := c.Query("query")

	var equipment []repository.EquipmentInfo
	var err error

	if searchQuery == "" {
		equipment, err = h.Repository.GetAllEquipment()
	} else {
		equipment, err = h.Repository.SearchEquipment(searchQuery)
	}

	if err != nil {
		logrus.Error("Error getting equipment: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения оборудования")
		return
	}

	dtoEquipment := make([]dto.EquipmentResponse, len(equipment))
	for i, eq := range equipment {
		dtoEquipment[i] = toEquipmentResponse(eq)
	}

	c.JSON(http.StatusOK, dto.EquipmentListResponse{
		Equipment: dtoEquipment,
		Total:     len(dtoEquipment),
	})
}

// GetEquipment получает одну единицу оборудования
// @Summary Получение оборудования по ID
// @Description Возвращает детальную информацию об оборудовании
// @Tags Equipment
// @Produce json
// @Param id path string true "ID оборудования"
// @Success 200 {object} dto.EquipmentResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/equipment/{id} [get]
func (h *APIHandler) GetEquipment(c *gin.Context) {
	id := c.Param("id")

	equipment, err := h.Repository.GetEquipmentByID(id)
	if err != nil || equipment == nil {
		h.errorResponse(c, http.StatusNotFound, "Оборудование не найдено")
		return
	}

	c.JSON(http.StatusOK, toEquipmentResponse(*equipment))
}

// CreateEquipment создает оборудование
// @Summary Создание оборудования
// @Description Создает оборудование для существующего клиента. Дата первого сервиса опциональна:
// @Description без нее оборудование считается незапланированным и не имеет обслуживаний
// @Tags Equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEquipmentRequest true "Данные оборудования"
// @Success 201 {object} dto.EquipmentResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/equipment [post]
func (h *APIHandler) CreateEquipment(c *gin.Context) {
	var req dto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	// Проверяем что клиент существует
	client, err := h.Repository.GetClientByID(req.ClientID)
	if err != nil {
		h.errorResponse(c, http.StatusNotFound, "Клиент не найден")
		return
	}

	// Серийный номер уникален
	taken, err := h.Repository.SerialNumberTaken(req.SerialNumber, "")
	if err != nil {
		logrus.Error("Error checking serial number: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка проверки серийного номера")
		return
	}
	if taken {
		h.errorResponse(c, http.StatusBadRequest, "Оборудование с таким серийным номером уже существует")
		return
	}

	firstServiceDate, err := parseDate(req.FirstServiceDate)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверная дата первого сервиса")
		return
	}
	warrantyEndDate, err := parseDate(req.WarrantyEndDate)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверная дата окончания гарантии")
		return
	}

	equipment, err := h.Repository.CreateEquipment(req.ClientID, req.Model, req.SerialNumber,
		req.Periodicity, firstServiceDate, warrantyEndDate, req.UnderWarranty)
	if err != nil {
		logrus.Error("Error creating equipment: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка создания оборудования")
		return
	}

	c.JSON(http.StatusCreated, toEquipmentResponse(repository.EquipmentInfo{
		Equipment:  *equipment,
		ClientName: client.Name,
	}))
}

// UpdateEquipment обновляет оборудование
// @Summary Обновление оборудования
// @Description Обновляет данные оборудования. Изменение даты первого сервиса или периодичности
// @Description перегенерирует расписание: авторизации дат, которые больше не производятся, осиротевают
// @Tags Equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID оборудования"
// @Param request body dto.UpdateEquipmentRequest true "Данные для обновления"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/equipment/{id} [put]
func (h *APIHandler) UpdateEquipment(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	exists, err := h.Repository.EquipmentExists(id)
	if err != nil || !exists {
		h.errorResponse(c, http.StatusNotFound, "Оборудование не найдено")
		return
	}

	// Новый клиент должен существовать
	if req.ClientID != "" {
		if _, err := h.Repository.GetClientByID(req.ClientID); err != nil {
			h.errorResponse(c, http.StatusNotFound, "Клиент не найден")
			return
		}
	}

	// Новый серийный номер не должен быть занят другим оборудованием
	if req.SerialNumber != "" {
		taken, err := h.Repository.SerialNumberTaken(req.SerialNumber, id)
		if err != nil {
			logrus.Error("Error checking serial number: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "Ошибка проверки серийного номера")
			return
		}
		if taken {
			h.errorResponse(c, http.StatusBadRequest, "Оборудование с таким серийным номером уже существует")
			return
		}
	}

	// Подготавливаем указатели на поля
	var clientID, model, serialNumber, periodicity *string
	if req.ClientID != "" {
		clientID = &req.ClientID
	}
	if req.Model != "" {
		model = &req.Model
	}
	if req.SerialNumber != "" {
		serialNumber = &req.SerialNumber
	}
	if req.Periodicity != "" {
		periodicity = &req.Periodicity
	}

	firstServiceDate, err := parseDate(req.FirstServiceDate)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверная дата первого сервиса")
		return
	}
	warrantyEndDate, err := parseDate(req.WarrantyEndDate)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверная дата окончания гарантии")
		return
	}

	err = h.Repository.UpdateEquipment(id, clientID, model, serialNumber, periodicity,
		firstServiceDate, warrantyEndDate, req.UnderWarranty)
	if err != nil {
		logrus.Error("Error updating equipment: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления оборудования")
		return
	}

	h.successResponse(c, http.StatusOK, "Оборудование успешно обновлено", nil)
}

// DeleteEquipment удаляет оборудование
// @Summary Удаление оборудования
// @Description Удаляет оборудование вместе с авторизациями обслуживаний и фото.
// @Description Обслуживания исчезают из всех запросов сразу
// @Tags Equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID оборудования"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/equipment/{id} [delete]
func (h *APIHandler) DeleteEquipment(c *gin.Context) {
	id := c.Param("id")

	equipment, err := h.Repository.GetEquipmentByID(id)
	if err != nil || equipment == nil {
		h.errorResponse(c, http.StatusNotFound, "Оборудование не найдено")
		return
	}

	// Сначала удаляем фото из MinIO
	if equipment.PhotoURL != nil && *equipment.PhotoURL != "" && h.MinIOClient != nil {
		if err := h.MinIOClient.DeleteFile(*equipment.PhotoURL); err != nil {
			logrus.Warnf("Failed to delete photo from MinIO: %v", err)
		}
	}

	if err := h.Repository.DeleteEquipment(id); err != nil {
		logrus.Error("Error deleting equipment: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка удаления оборудования")
		return
	}

	h.successResponse(c, http.StatusOK, "Оборудование успешно удалено", nil)
}

// UploadEquipmentPhoto загружает фото оборудования
// @Summary Загрузка фото оборудования
// @Description Загружает фото оборудования в MinIO
// @Tags Equipment
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "ID оборудования"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/equipment/{id}/image [post]
func (h *APIHandler) UploadEquipmentPhoto(c *gin.Context) {
	id := c.Param("id")

	equipment, err := h.Repository.GetEquipmentByID(id)
	if err != nil || equipment == nil {
		h.errorResponse(c, http.StatusNotFound, "Оборудование не найдено")
		return
	}

	// Получаем файл из запроса
	file, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Файл не найден в запросе")
		return
	}

	openedFile, err := file.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}
	defer openedFile.Close()

	fileData, err := io.ReadAll(openedFile)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка чтения файла")
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusInternalServerError, "Хранилище файлов не настроено")
		return
	}

	// Удаляем старое фото (если есть)
	if equipment.PhotoURL != nil && *equipment.PhotoURL != "" {
		if err := h.MinIOClient.DeleteFile(*equipment.PhotoURL); err != nil {
			logrus.Warnf("Failed to delete old photo %s: %v", *equipment.PhotoURL, err)
		}
	}

	photoURL, err := h.MinIOClient.UploadFile(fileData, file.Filename)
	if err != nil {
		logrus.Error("Error uploading to MinIO: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка загрузки фото")
		return
	}

	if err := h.Repository.UpdateEquipmentPhoto(id, photoURL); err != nil {
		logrus.Error("Error updating equipment photo: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка обновления фото")
		return
	}

	h.successResponse(c, http.StatusOK, "Фото успешно загружено", gin.H{
		"photo_url": photoURL,
	})
}
