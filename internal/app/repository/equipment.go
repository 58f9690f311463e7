package repository

import (
	"database/sql"
	"errors"
	"time"

	"maintenance-backend/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EquipmentInfo — оборудование с денормализованным именем клиента.
// Имя подтягивается join-ом в момент запроса, не хранится в таблице
type EquipmentInfo struct {
	ds.Equipment
	ClientName string
}

// Методы для работы с оборудованием

// Получить всё оборудование
func (r *Repository) GetAllEquipment() ([]EquipmentInfo, error) {
	var equipment []ds.Equipment
	err := r.db.Preload("Client").Order("created_at").Find(&equipment).Error
	if err != nil {
		return nil, err
	}

	result := make([]EquipmentInfo, len(equipment))
	for i, eq := range equipment {
		result[i] = EquipmentInfo{
			Equipment:  eq,
			ClientName: eq.Client.Name,
		}
	}
	return result, nil
}

// Поиск оборудования по модели, серийному номеру или имени клиента
func (r *Repository) SearchEquipment(query string) ([]EquipmentInfo, error) {
	var equipment []ds.Equipment
	pattern := "%" + query + "%"
	err := r.db.Preload("Client").
		Joins("LEFT JOIN clients ON clients.id = equipment.client_id").
		Where("equipment.model ILIKE ? OR equipment.serial_number ILIKE ? OR clients.name ILIKE ?",
			pattern, pattern, pattern).
		Order("equipment.created_at").
		Find(&equipment).Error
	if err != nil {
		return nil, err
	}

	result := make([]EquipmentInfo, len(equipment))
	for i, eq := range equipment {
		result[i] = EquipmentInfo{
			Equipment:  eq,
			ClientName: eq.Client.Name,
		}
	}
	return result, nil
}

// Получить оборудование по ID
func (r *Repository) GetEquipmentByID(id string) (*EquipmentInfo, error) {
	// Используем курсор
	query := `SELECT e.id, e.client_id, e.model, e.serial_number, e.periodicity,
	                 e.first_service_date, e.under_warranty, e.warranty_end_date,
	                 e.photo_url, e.created_at, c.name
	          FROM equipment e
	          JOIN clients c ON c.id = e.client_id
	          WHERE e.id = $1`

	// Создание курсора (строковый указатель)
	row := r.db.Raw(query, id).Row()

	var info EquipmentInfo
	var firstServiceDate, warrantyEndDate sql.NullTime
	var photoURL sql.NullString

	// Сканирование строки из курсора
	err := row.Scan(&info.ID, &info.ClientID, &info.Model, &info.SerialNumber, &info.Periodicity,
		&firstServiceDate, &info.UnderWarranty, &warrantyEndDate,
		&photoURL, &info.CreatedAt, &info.ClientName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Записи нет
		}
		return nil, err
	}

	if firstServiceDate.Valid {
		info.FirstServiceDate = &firstServiceDate.Time
	}
	if warrantyEndDate.Valid {
		info.WarrantyEndDate = &warrantyEndDate.Time
	}
	if photoURL.Valid {
		info.PhotoURL = &photoURL.String
	}

	return &info, nil
}

// Существует ли оборудование
func (r *Repository) EquipmentExists(id string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Equipment{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Занят ли серийный номер другим оборудованием
func (r *Repository) SerialNumberTaken(serialNumber, excludeID string) (bool, error) {
	var count int64
	q := r.db.Model(&ds.Equipment{}).Where("serial_number = ?", serialNumber)
	if excludeID != "" {
		q = q.Where("id != ?", excludeID)
	}
	err := q.Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Создать оборудование
func (r *Repository) CreateEquipment(clientID, model, serialNumber, periodicity string,
	firstServiceDate, warrantyEndDate *time.Time, underWarranty bool) (*ds.Equipment, error) {

	equipment := ds.Equipment{
		ID:               uuid.New().String(),
		ClientID:         clientID,
		Model:            model,
		SerialNumber:     serialNumber,
		Periodicity:      periodicity,
		FirstServiceDate: firstServiceDate,
		UnderWarranty:    underWarranty,
		WarrantyEndDate:  warrantyEndDate,
		CreatedAt:        time.Now(),
	}

	err := r.db.Create(&equipment).Error
	if err != nil {
		return nil, err
	}

	return &equipment, nil
}

// Обновить оборудование (nil = поле не меняется)
func (r *Repository) UpdateEquipment(id string, clientID, model, serialNumber, periodicity *string,
	firstServiceDate, warrantyEndDate *time.Time, underWarranty *bool) error {

	updates := make(map[string]interface{})
	if clientID != nil {
		updates["client_id"] = *clientID
	}
	if model != nil {
		updates["model"] = *model
	}
	if serialNumber != nil {
		updates["serial_number"] = *serialNumber
	}
	if periodicity != nil {
		updates["periodicity"] = *periodicity
	}
	if firstServiceDate != nil {
		updates["first_service_date"] = *firstServiceDate
	}
	if warrantyEndDate != nil {
		updates["warranty_end_date"] = *warrantyEndDate
	}
	if underWarranty != nil {
		updates["under_warranty"] = *underWarranty
	}

	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&ds.Equipment{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("оборудование не найдено")
	}
	return nil
}

// Удалить оборудование вместе с авторизациями обслуживаний
func (r *Repository) DeleteEquipment(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("equipment_id = ?", id).Delete(&ds.ServiceAuthorization{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&ds.Equipment{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errors.New("оборудование не найдено")
		}
		return nil
	})
}

// Обновить фото оборудования
func (r *Repository) UpdateEquipmentPhoto(id, photoURL string) error {
	return r.db.Model(&ds.Equipment{}).Where("id = ?", id).Update("photo_url", photoURL).Error
}

// Сбросить фото оборудования
func (r *Repository) DeleteEquipmentPhoto(id string) error {
	return r.db.Model(&ds.Equipment{}).Where("id = ?", id).Update("photo_url", nil).Error
}
