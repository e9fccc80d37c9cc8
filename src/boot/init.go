package boot

import (
	"log"
	"time"

	"ibs/src/db"
	"ibs/src/lib"
	"ibs/src/models"
	"ibs/src/types"
	"ibs/src/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Item{},
		&models.Status{},
		&models.Booking{},
		&models.BookingItem{},
		&models.Notification{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	SeedStatuses(db)

	return db
}

// SeedStatuses fills the status reference table once. Safe to rerun.
func SeedStatuses(db *gorm.DB) {
	rows := make([]models.Status, 0, len(types.BookingStatuses))
	for _, status := range types.BookingStatuses {
		rows = append(rows, models.Status{Name: string(status)})
	}
	err := db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).
		Error
	if err != nil {
		log.Printf("Error seeding statuses: %s\n", err.Error())
	}
}

func InitScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return
	}
	id, err := lib.CreateCronJob(utils.CloseOverdueBookings, 1*time.Hour)
	if err != nil {
		log.Printf("Error scheduling overdue sweep: %s\n", err.Error())
		return
	}
	log.Printf("Scheduled overdue booking sweep: %s\n", *id)
	sched.Start()
}

func StopScheduler() {
	sched, err := lib.GetScheduler()
	if err != nil {
		log.Println("Error retrieving Scheduler. Check logs for info")
		return
	}
	err = sched.Shutdown()
	if err != nil {
		log.Println("An error has occurred while stopping Scheduler. Check logs for info")
		return
	}
}
