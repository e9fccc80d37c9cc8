package models

// Status is the reference table backing the booking status enum.
// Seeded once at boot, immutable at runtime.
type Status struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`
}
