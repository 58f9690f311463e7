package main

import (
	"fmt"
	"log"

	"maintenance-backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := "host=localhost user=postgres password=password dbname=maintenance_db port=5432 sslmode=disable TimeZone=Europe/Moscow"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var equipment []ds.Equipment
	err = db.Preload("Client").Find(&equipment).Error
	if err != nil {
		log.Fatal("Failed to get equipment:", err)
	}

	fmt.Println("Equipment in database:")
	for _, eq := range equipment {
		firstService := "NULL"
		if eq.FirstServiceDate != nil {
			firstService = eq.FirstServiceDate.Format("2006-01-02")
		}
		fmt.Printf("ID: %s, Model: %s, Serial: %s, Client: %s, First service: %s\n",
			eq.ID, eq.Model, eq.SerialNumber, eq.Client.Name, firstService)
	}
}
