package db

import (
	"testing"

	"ibs/src/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestMockDBUsesPostgresDialector(t *testing.T) {
	gormDB, _, err := GetMockDB()

	assert.Nil(t, err)
	assert.Equal(t, "postgres", gormDB.Name())
	assert.Same(t, gormDB, GetDb())
}

func TestMockDBServesQueries(t *testing.T) {
	gormDB, mock, err := GetMockDB()
	assert.Nil(t, err)

	mock.ExpectQuery(`SELECT (.+) FROM "statuses"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "RESERVED").
			AddRow(2, "CANCELLED"))

	var statuses []models.Status
	assert.Nil(t, gormDB.Find(&statuses).Error)
	assert.Len(t, statuses, 2)
	assert.Equal(t, "RESERVED", statuses[0].Name)
	assert.Nil(t, mock.ExpectationsWereMet())
}
