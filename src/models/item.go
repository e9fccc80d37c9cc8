package models

import (
	"ibs/src/types"
)

type Item struct {
	ID          uint    `gorm:"primarykey" json:"id"`
	Name        string  `json:"name,omitempty"`
	Slug        string  `gorm:"index" json:"slug,omitempty"`
	Description string  `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	Price       float64 `gorm:"type:decimal(10,2)" json:"price,omitempty"`
	Quantity    uint    `json:"quantity,omitempty"`
	CategoryID  *uint   `json:"category_id,omitempty"`
	Size        *string `json:"size,omitempty"`
	Color       *string `json:"color,omitempty"`
	Location    *string `json:"location,omitempty"`
	Available   bool    `gorm:"default:true" json:"available"`

	Category *Category `gorm:"foreignKey:category_id" json:"category,omitempty"`

	types.Timestamps
}

type Category struct {
	ID          uint   `gorm:"primarykey" json:"id"`
	Name        string `gorm:"uniqueIndex" json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	Items []Item `gorm:"foreignKey:category_id" json:"items,omitempty"`

	types.Timestamps
}
