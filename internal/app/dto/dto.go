package dto

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Клиенты (Clients) ============

type ClientResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}

type CreateClientRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100"`
}

// ============ Оборудование (Equipment) ============

type EquipmentResponse struct {
	ID           string `json:"id"`
	ClientID     string `json:"client_id"`
	ClientName   string `json:"client_name"`
	Model        string `json:"model"`
	SerialNumber string `json:"serial_number"`
	Periodicity  string `json:"periodicity"`
	// ISO дата (2006-01-02), пустая строка = расписание ещё не задано
	FirstServiceDate string `json:"first_service_date,omitempty"`
	UnderWarranty    bool   `json:"under_warranty"`
	WarrantyEndDate  string `json:"warranty_end_date,omitempty"`
	PhotoURL         string `json:"photo_url,omitempty"`
}

type EquipmentListResponse struct {
	Equipment []EquipmentResponse `json:"equipment"`
	Total     int                 `json:"total"`
}

type CreateEquipmentRequest struct {
	ClientID     string `json:"client_id" binding:"required,uuid"`
	Model        string `json:"model" binding:"required,min=1,max=100"`
	SerialNumber string `json:"serial_number" binding:"required,min=1,max=100"`
	Periodicity  string `json:"periodicity" binding:"required,oneof=monthly bimonthly quarterly four_monthly semiannual annual"`
	// Опциональная дата первого сервиса в формате 2006-01-02
	FirstServiceDate string `json:"first_service_date" binding:"omitempty,datetime=2006-01-02"`
	UnderWarranty    bool   `json:"under_warranty"`
	WarrantyEndDate  string `json:"warranty_end_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateEquipmentRequest struct {
	ClientID         string `json:"client_id" binding:"omitempty,uuid"`
	Model            string `json:"model" binding:"omitempty,min=1,max=100"`
	SerialNumber     string `json:"serial_number" binding:"omitempty,min=1,max=100"`
	Periodicity      string `json:"periodicity" binding:"omitempty,oneof=monthly bimonthly quarterly four_monthly semiannual annual"`
	FirstServiceDate string `json:"first_service_date" binding:"omitempty,datetime=2006-01-02"`
	UnderWarranty    *bool  `json:"under_warranty" binding:"omitempty"`
	WarrantyEndDate  string `json:"warranty_end_date" binding:"omitempty,datetime=2006-01-02"`
}

// ============ Обслуживания (Services) ============

// ServiceResponse — обслуживание с денормализованными полями для отображения.
// Поля клиента и оборудования подтягиваются join-ом в момент запроса
type ServiceResponse struct {
	EquipmentID   string `json:"equipment_id"`
	ScheduledDate string `json:"scheduled_date"` // ISO дата, без времени
	Authorized    bool   `json:"authorized"`
	Periodicity   string `json:"periodicity"`
	Model         string `json:"model"`
	SerialNumber  string `json:"serial_number"`
	ClientID      string `json:"client_id"`
	ClientName    string `json:"client_name"`
	UnderWarranty bool   `json:"under_warranty"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type AuthorizeServiceRequest struct {
	EquipmentID   string `json:"equipment_id" binding:"required,uuid"`
	ScheduledDate string `json:"scheduled_date" binding:"required,datetime=2006-01-02"`
	Authorized    *bool  `json:"authorized" binding:"required"`
}

// ============ Календарь (Calendar) ============

// CalendarDayResponse — один день месяца с обслуживаниями и агрегатным статусом
type CalendarDayResponse struct {
	Day      int               `json:"day"`
	Status   string            `json:"status"` // none, partial, full
	Services []ServiceResponse `json:"services"`
}

type CalendarMonthResponse struct {
	Year  int                   `json:"year"`
	Month int                   `json:"month"`
	Days  []CalendarDayResponse `json:"days"`
	Total int                   `json:"total"`
}

// ============ Пользователи (Users) ============

type UserResponse struct {
	ID          uint   `json:"id"`
	Login       string `json:"login"`
	FullName    string `json:"full_name"`
	IsModerator bool   `json:"is_moderator"`
}

type RegisterRequest struct {
	Login       string `json:"login" binding:"required,min=3,max=50"`
	Password    string `json:"password" binding:"required,min=6"`
	FullName    string `json:"full_name" binding:"required"`
	IsModerator bool   `json:"is_moderator"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,max=100"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}
