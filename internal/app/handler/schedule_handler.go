package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"maintenance-backend/internal/app/dto"
	"maintenance-backend/internal/app/repository"
	"maintenance-backend/internal/app/schedule"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Количество обслуживаний в ленте ближайших по умолчанию
const defaultUpcomingCount = 20

// ============ ДОМЕН ОБСЛУЖИВАНИЯ ============

// collectOccurrences генерирует обслуживания всего оборудования до горизонта
// и возвращает их вместе со справочником оборудования для денормализации
func (h *APIHandler) collectOccurrences(horizon time.Time) ([]schedule.Occurrence, map[string]repository.EquipmentInfo, error) {
	equipment, err := h.Repository.GetAllEquipment()
	if err != nil {
		return nil, nil, err
	}

	var occurrences []schedule.Occurrence
	equipmentByID := make(map[string]repository.EquipmentInfo, len(equipment))

	for _, eq := range equipment {
		equipmentByID[eq.ID] = eq
		occurrences = append(occurrences,
			schedule.Generate(eq.ID, eq.FirstServiceDate, schedule.Periodicity(eq.Periodicity), horizon)...)
	}

	return occurrences, equipmentByID, nil
}

// attachFlags проставляет занесённые в БД флаги авторизации
func (h *APIHandler) attachFlags(occurrences []schedule.Occurrence) ([]schedule.Occurrence, error) {
	if len(occurrences) == 0 {
		return occurrences, nil
	}

	minDate := occurrences[0].ScheduledDate
	maxDate := occurrences[0].ScheduledDate
	for _, occ := range occurrences {
		if occ.ScheduledDate.Before(minDate) {
			minDate = occ.ScheduledDate
		}
		if occ.ScheduledDate.After(maxDate) {
			maxDate = occ.ScheduledDate
		}
	}

	flags, err := h.Repository.GetAuthorizations(minDate, maxDate)
	if err != nil {
		return nil, err
	}
	return schedule.AttachAuthorizations(occurrences, flags), nil
}

func (h *APIHandler) toServiceResponses(occurrences []schedule.Occurrence, equipmentByID map[string]repository.EquipmentInfo) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, 0, len(occurrences))
	for _, occ := range occurrences {
		eq, ok := equipmentByID[occ.EquipmentID]
		if !ok {
			continue
		}
		responses = append(responses, toServiceResponse(occ, eq))
	}
	return responses
}

// GetServices получает все обслуживания
// @Summary Получение всех обслуживаний
// @Description Возвращает обслуживания всего оборудования от даты первого сервиса
// @Description до горизонта 12 месяцев вперед, с денормализованными полями для отображения
// @Tags Services
// @Produce json
// @Success 200 {object} dto.ServiceListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services [get]
func (h *APIHandler) GetServices(c *gin.Context) {
	horizon := schedule.DefaultHorizon(time.Now())

	occurrences, equipmentByID, err := h.collectOccurrences(horizon)
	if err != nil {
		logrus.Error("Error collecting occurrences: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения обслуживаний")
		return
	}

	occurrences, err = h.attachFlags(occurrences)
	if err != nil {
		logrus.Error("Error attaching authorizations: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения авторизаций")
		return
	}

	schedule.SortOccurrences(occurrences)
	services := h.toServiceResponses(occurrences, equipmentByID)

	c.JSON(http.StatusOK, dto.ServiceListResponse{
		Services: services,
		Total:    len(services),
	})
}

// GetUpcomingServices получает ближайшие обслуживания
// @Summary Лента ближайших обслуживаний
// @Description Возвращает не более count ближайших обслуживаний с датой не раньше from,
// @Description отсортированных по дате по всему оборудованию сразу
// @Tags Services
// @Produce json
// @Param count query int false "Количество (по умолчанию 20)"
// @Param from query string false "Дата отсчета (формат 2006-01-02, по умолчанию сегодня)"
// @Success 200 {object} dto.ServiceListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services/upcoming [get]
func (h *APIHandler) GetUpcomingServices(c *gin.Context) {
	count := defaultUpcomingCount
	if countStr := c.Query("count"); countStr != "" {
		parsed, err := strconv.Atoi(countStr)
		if err != nil || parsed < 1 {
			h.errorResponse(c, http.StatusBadRequest, "Неверное количество")
			return
		}
		count = parsed
	}

	from := schedule.DateOnly(time.Now())
	if fromStr := c.Query("from"); fromStr != "" {
		parsed, err := time.Parse(schedule.DateLayout, fromStr)
		if err != nil {
			h.errorResponse(c, http.StatusBadRequest, "Неверная дата отсчета")
			return
		}
		from = schedule.DateOnly(parsed)
	}

	horizon := schedule.DefaultHorizon(from)

	occurrences, equipmentByID, err := h.collectOccurrences(horizon)
	if err != nil {
		logrus.Error("Error collecting occurrences: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения обслуживаний")
		return
	}

	occurrences, err = h.attachFlags(occurrences)
	if err != nil {
		logrus.Error("Error attaching authorizations: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка получения авторизаций")
		return
	}

	upcoming := schedule.Upcoming(occurrences, count, from)
	services := h.toServiceResponses(upcoming, equipmentByID)

	c.JSON(http.StatusOK, dto.ServiceListResponse{
		Services: services,
		Total:    len(services),
	})
}

// AuthorizeService переключает авторизацию обслуживания
// @Summary Авторизация обслуживания
// @Description Устанавливает флаг авторизации по идентичности (оборудование, дата).
// @Description Операция идемпотентна. Флаг для даты, которую генератор не производит,
// @Description принимается, но не виден ни в одном запросе
// @Tags Services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AuthorizeServiceRequest true "Идентичность обслуживания и флаг"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/services/authorize [put]
func (h *APIHandler) AuthorizeService(c *gin.Context) {
	var req dto.AuthorizeServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные данные: "+err.Error())
		return
	}

	exists, err := h.Repository.EquipmentExists(req.EquipmentID)
	if err != nil || !exists {
		h.errorResponse(c, http.StatusNotFound, "Оборудование не найдено")
		return
	}

	scheduledDate, err := time.Parse(schedule.DateLayout, req.ScheduledDate)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверная дата обслуживания")
		return
	}

	if err := h.Repository.SetAuthorization(req.EquipmentID, scheduledDate, *req.Authorized); err != nil {
		logrus.Error("Error setting authorization: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка сохранения авторизации")
		return
	}

	h.successResponse(c, http.StatusOK, "Авторизация обновлена", gin.H{
		"equipment_id":   req.EquipmentID,
		"scheduled_date": req.ScheduledDate,
		"authorized":     *req.Authorized,
	})
}

// ============ ДОМЕН КАЛЕНДАРЬ ============

// parseMonthParams разбирает и проверяет параметры год/месяц
func (h *APIHandler) parseMonthParams(c *gin.Context) (int, int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный год")
		return 0, 0, false
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверный месяц")
		return 0, 0, false
	}

	return year, month, true
}

// monthOccurrences собирает обслуживания месяца с флагами авторизации
func (h *APIHandler) monthOccurrences(monthStart, monthEnd time.Time) ([]schedule.Occurrence, map[string]repository.EquipmentInfo, error) {
	occurrences, equipmentByID, err := h.collectOccurrences(monthEnd)
	if err != nil {
		return nil, nil, err
	}

	occurrences = schedule.FilterRange(occurrences, monthStart, monthEnd)

	occurrences, err = h.attachFlags(occurrences)
	if err != nil {
		return nil, nil, err
	}

	return occurrences, equipmentByID, nil
}

// GetCalendarMonth получает месячный вид календаря
// @Summary Месячный вид календаря
// @Description Возвращает обслуживания месяца, сгруппированные по дням, с агрегатным
// @Description статусом дня: full — авторизованы все, partial — часть, none — ни одного
// @Tags Calendar
// @Produce json
// @Param year path int true "Год"
// @Param month path int true "Месяц (1-12)"
// @Success 200 {object} dto.CalendarMonthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/calendar/{year}/{month} [get]
func (h *APIHandler) GetCalendarMonth(c *gin.Context) {
	year, month, ok := h.parseMonthParams(c)
	if !ok {
		return
	}

	monthStart, monthEnd, err := schedule.MonthBounds(year, month)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные границы месяца: "+err.Error())
		return
	}

	occurrences, equipmentByID, err := h.monthOccurrences(monthStart, monthEnd)
	if err != nil {
		logrus.Error("Error building month view: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка построения календаря")
		return
	}

	days := schedule.GroupByDay(occurrences)

	response := dto.CalendarMonthResponse{
		Year:  year,
		Month: month,
		Days:  make([]dto.CalendarDayResponse, 0, len(days)),
	}

	// Дни по возрастанию
	for day := 1; day <= 31; day++ {
		dayOccurrences, ok := days[day]
		if !ok {
			continue
		}
		response.Days = append(response.Days, dto.CalendarDayResponse{
			Day:      day,
			Status:   string(schedule.ClassifyDay(dayOccurrences)),
			Services: h.toServiceResponses(dayOccurrences, equipmentByID),
		})
		response.Total += len(dayOccurrences)
	}

	c.JSON(http.StatusOK, response)
}

// ExportCalendarMonth экспортирует месяц в iCalendar
// @Summary Экспорт месяца в iCalendar
// @Description Возвращает обслуживания месяца в формате iCalendar (.ics), событиями на весь день
// @Tags Calendar
// @Produce text/calendar
// @Param year path int true "Год"
// @Param month path int true "Месяц (1-12)"
// @Success 200 {string} string "iCalendar файл"
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/calendar/{year}/{month}/export [get]
func (h *APIHandler) ExportCalendarMonth(c *gin.Context) {
	year, month, ok := h.parseMonthParams(c)
	if !ok {
		return
	}

	monthStart, monthEnd, err := schedule.MonthBounds(year, month)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Неверные границы месяца: "+err.Error())
		return
	}

	occurrences, equipmentByID, err := h.monthOccurrences(monthStart, monthEnd)
	if err != nil {
		logrus.Error("Error building month export: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Ошибка построения календаря")
		return
	}

	schedule.SortOccurrences(occurrences)
	services := h.toServiceResponses(occurrences, equipmentByID)

	cal := buildCalendar(services)

	filename := fmt.Sprintf("maintenance_%04d_%02d.ics", year, month)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}
