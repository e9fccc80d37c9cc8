package utils

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"ibs/src/db"
	"ibs/src/lib"
	"ibs/src/models"
)

const statusCacheKey = "statuses"
const statusCacheTTL = 5 * time.Minute

// GetStatuses returns the seeded status catalog, cached since it only
// changes on migration.
func GetStatuses(ctx context.Context) ([]models.Status, error) {
	rd := lib.GetRedisClient()
	if rd != nil {
		cached, err := rd.Get(ctx, statusCacheKey).Result()
		if err == nil {
			var statuses []models.Status
			if err := json.Unmarshal([]byte(cached), &statuses); err == nil {
				return statuses, nil
			}
		}
	}

	db := db.GetDb()
	var statuses []models.Status
	if err := db.
		Model(&models.Status{}).
		Order("id asc").
		Find(&statuses).
		Error; err != nil {
		return nil, err
	}

	if rd != nil {
		if payload, err := json.Marshal(statuses); err == nil {
			if err := rd.Set(ctx, statusCacheKey, payload, statusCacheTTL).Err(); err != nil {
				log.Printf("[redis] Failed to cache statuses: %s\n", err.Error())
			}
		}
	}
	return statuses, nil
}
