package db

import (
	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewMockDB opens a gorm handle backed by sqlmock so query paths can run
// without a live postgres instance.
func NewMockDB() (*gorm.DB, sqlmock.Sqlmock, error) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		return nil, nil, err
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: conn,
	}))
	if err != nil {
		return nil, nil, err
	}
	return gormDB, mock, nil
}

// GetMockDB installs a fresh mock as the shared connection and returns the
// expectation handle.
func GetMockDB() (*gorm.DB, sqlmock.Sqlmock, error) {
	gormDB, mock, err := NewMockDB()
	if err != nil {
		return nil, nil, err
	}
	db = gormDB
	return gormDB, mock, nil
}
