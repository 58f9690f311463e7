package ds

import "time"

// 2. Таблица оборудования
type Equipment struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	ClientID     string `gorm:"type:uuid;not null;index"`
	Model        string `gorm:"type:varchar(100);not null"`
	SerialNumber string `gorm:"type:varchar(100);uniqueIndex;not null"`
	Periodicity  string `gorm:"type:varchar(20);not null"` // monthly, bimonthly, quarterly, four_monthly, semiannual, annual
	// Дата первого сервиса — опорная дата расписания.
	// NULL = оборудование ещё не запланировано
	FirstServiceDate *time.Time `gorm:"type:date"`
	UnderWarranty    bool       `gorm:"type:boolean;default:false;not null"`
	WarrantyEndDate  *time.Time `gorm:"type:date"` // имеет смысл только при UnderWarranty
	PhotoURL         *string    `gorm:"type:varchar(255)"`
	CreatedAt        time.Time  `gorm:"not null"`

	Client Client `gorm:"foreignKey:ClientID"`
}
