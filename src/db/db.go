package db

import (
	"ibs/src/config"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

// GetDb returns the shared connection, opening it on first use.
func GetDb() *gorm.DB {
	if db != nil {
		return db
	}
	conn, err := gorm.Open(postgres.Open(config.GetDSN()))
	if err != nil {
		log.Printf("Error connecting to database: %s\n", err.Error())
		panic(err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		log.Fatalf("Error establishing connection to database: %s\n", err.Error())
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	db = conn
	return conn
}

// NewDB replaces the shared connection.
func NewDB(newdb *gorm.DB) {
	db = newdb
}
