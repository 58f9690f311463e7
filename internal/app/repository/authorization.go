package repository

import (
	"time"

	"maintenance-backend/internal/app/ds"
	"maintenance-backend/internal/app/schedule"

	"gorm.io/gorm/clause"
)

// Методы для работы с авторизациями обслуживаний (ledger).
// Храним только флаг по ключу (оборудование, дата); сами обслуживания
// вычисляются генератором. Записи для дат, которые генератор больше не
// производит, остаются в таблице, но ни один запрос их не увидит —
// ленивое осиротение.

// Установить флаг авторизации. Идемпотентный upsert: повторный вызов
// с теми же аргументами даёт тот же результат
func (r *Repository) SetAuthorization(equipmentID string, scheduledDate time.Time, authorized bool) error {
	auth := ds.ServiceAuthorization{
		EquipmentID:   equipmentID,
		ScheduledDate: schedule.DateOnly(scheduledDate),
		Authorized:    authorized,
		UpdatedAt:     time.Now(),
	}

	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "equipment_id"}, {Name: "scheduled_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"authorized", "updated_at"}),
	}).Create(&auth).Error
}

// Получить флаги авторизации в диапазоне дат (границы включительно).
// Ключ результата — идентичность обслуживания (оборудование, дата);
// отсутствующий ключ означает false (ожидает авторизации)
func (r *Repository) GetAuthorizations(from, to time.Time) (map[schedule.Key]bool, error) {
	var rows []ds.ServiceAuthorization
	err := r.db.Where("scheduled_date >= ? AND scheduled_date <= ?",
		schedule.DateOnly(from), schedule.DateOnly(to)).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	flags := make(map[schedule.Key]bool, len(rows))
	for _, row := range rows {
		key := schedule.Key{
			EquipmentID: row.EquipmentID,
			Date:        row.ScheduledDate.UTC().Format(schedule.DateLayout),
		}
		flags[key] = row.Authorized
	}
	return flags, nil
}
