package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"ibs/src/db"
	"ibs/src/lib"
	"ibs/src/models"
	"ibs/src/models/scopes"
	"ibs/src/types"
)

const availabilityCacheTTL = 30 * time.Second

// ComputeAvailability folds confirmed overlapping bookings into a per-item
// remaining quantity. Pending bookings must already be filtered out by the
// caller; this is a pure function so it stays testable without a database.
func ComputeAvailability(items []models.Item, bookings []models.Booking, start, end time.Time) []types.ItemAvailability {
	booked := make(map[uint]uint)
	for _, booking := range bookings {
		if !booking.Overlaps(start, end) {
			continue
		}
		for _, line := range booking.Items {
			booked[line.ItemID] += line.Quantity
		}
	}

	result := make([]types.ItemAvailability, 0, len(items))
	for _, item := range items {
		available := uint(0)
		if item.Quantity > booked[item.ID] {
			available = item.Quantity - booked[item.ID]
		}
		result = append(result, types.ItemAvailability{
			ID:                item.ID,
			Name:              item.Name,
			Description:       item.Description,
			ImageURL:          item.ImageURL,
			Price:             item.Price,
			Quantity:          item.Quantity,
			CategoryID:        item.CategoryID,
			Size:              item.Size,
			Color:             item.Color,
			Location:          item.Location,
			AvailableQuantity: available,
			IsAvailable:       available > 0,
		})
	}
	return result
}

// GetItemsAvailability returns the full catalog annotated with remaining
// quantities for the requested range. This is a point-in-time read, not a
// reservation; callers needing a guarantee must re-check at commit time.
func GetItemsAvailability(ctx context.Context, start, end time.Time) ([]types.ItemAvailability, error) {
	cacheKey := fmt.Sprintf("availability:%s:%s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	if rd := lib.GetRedisClient(); rd != nil {
		cached, err := rd.Get(ctx, cacheKey).Result()
		if err == nil {
			var result []types.ItemAvailability
			if err := json.Unmarshal([]byte(cached), &result); err == nil {
				return result, nil
			}
		}
	}

	db := db.GetDb()
	var items []models.Item
	if err := db.
		Model(&models.Item{}).
		Order("id asc").
		Find(&items).
		Error; err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := db.
		Model(&models.Booking{}).
		Scopes(scopes.HoldingStock, scopes.OverlappingRange(start, end)).
		Preload("Items").
		Find(&bookings).
		Error; err != nil {
		return nil, err
	}

	result := ComputeAvailability(items, bookings, start, end)

	if rd := lib.GetRedisClient(); rd != nil {
		if payload, err := json.Marshal(result); err == nil {
			if err := rd.Set(ctx, cacheKey, payload, availabilityCacheTTL).Err(); err != nil {
				log.Printf("[redis] Failed to cache availability: %s\n", err.Error())
			}
		}
	}
	return result, nil
}
