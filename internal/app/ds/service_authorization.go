package ds

import "time"

// 3. Таблица авторизаций обслуживаний — единственное долговременное
// состояние обслуживания. Сами обслуживания перегенерируются по запросу,
// ключ (оборудование, дата) стабилен между перегенерациями.
type ServiceAuthorization struct {
	ID            uint      `gorm:"primaryKey"`
	EquipmentID   string    `gorm:"type:uuid;not null;index;uniqueIndex:idx_equipment_date"`
	ScheduledDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_equipment_date"`
	Authorized    bool      `gorm:"type:boolean;default:false;not null"`
	UpdatedAt     time.Time

	Equipment Equipment `gorm:"foreignKey:EquipmentID;constraint:OnDelete:CASCADE"`
}
