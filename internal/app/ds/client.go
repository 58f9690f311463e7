package ds

// 1. Таблица клиентов — владельцы обслуживаемого оборудования
type Client struct {
	ID   string `gorm:"type:uuid;primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`
}
