package repository

import (
	"errors"

	"maintenance-backend/internal/app/ds"

	"github.com/google/uuid"
)

// Методы для работы с клиентами

var ErrClientHasEquipment = errors.New("у клиента есть оборудование, удаление невозможно")

// Получить всех клиентов
func (r *Repository) GetAllClients() ([]ds.Client, error) {
	var clients []ds.Client
	err := r.db.Order("name").Find(&clients).Error
	if err != nil {
		return nil, err
	}
	return clients, nil
}

// Получить клиента по ID
func (r *Repository) GetClientByID(id string) (*ds.Client, error) {
	var client ds.Client
	err := r.db.Where("id = ?", id).First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Создать клиента
func (r *Repository) CreateClient(name string) (*ds.Client, error) {
	client := ds.Client{
		ID:   uuid.New().String(),
		Name: name,
	}

	err := r.db.Create(&client).Error
	if err != nil {
		return nil, err
	}

	return &client, nil
}

// Обновить имя клиента
func (r *Repository) UpdateClient(id, name string) error {
	result := r.db.Model(&ds.Client{}).Where("id = ?", id).Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("клиент не найден")
	}
	return nil
}

// Есть ли у клиента оборудование
func (r *Repository) ClientHasEquipment(id string) (bool, error) {
	var count int64
	err := r.db.Model(&ds.Equipment{}).Where("client_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Удалить клиента. Клиент с оборудованием не удаляется
func (r *Repository) DeleteClient(id string) error {
	hasEquipment, err := r.ClientHasEquipment(id)
	if err != nil {
		return err
	}
	if hasEquipment {
		return ErrClientHasEquipment
	}

	result := r.db.Delete(&ds.Client{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("клиент не найден")
	}
	return nil
}
