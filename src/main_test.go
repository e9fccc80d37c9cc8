package main

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"ibs/src/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"github.com/tidwall/gjson"
)

type TestSuite struct {
	suite.Suite
}

func (s *TestSuite) SetupSuite() {
	registerValidators()
}

func (s *TestSuite) TestPingRoute() {
	router := setupRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 200, w.Code)
}

func (s *TestSuite) TestMaintenanceMode() {
	os.Setenv("MAINTENANCE_MODE", "true")
	defer os.Setenv("MAINTENANCE_MODE", "false")

	router := setupRouter()
	router = maintenanceModeMiddleware(router)
	apiv1Group(router)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/v1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(s.T(), 503, w.Code)
}

func (s *TestSuite) TestCreateBookingValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	bookingHandlers(apiv1)

	s.Run("Should reject a booking without items", func() {
		w := httptest.NewRecorder()
		body := map[string]any{
			"start_date": "2025-06-01",
			"end_date":   "2025-06-10",
			"items":      []any{},
		}
		sbody, _ := json.Marshal(&body)
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		assert.NotEmpty(s.T(), gjson.Get(string(rbytes), "error").String())
	})

	s.Run("Should reject a booking with missing dates", func() {
		w := httptest.NewRecorder()
		body := map[string]any{
			"items": []map[string]any{{"item_id": 1, "quantity": 2}},
		}
		sbody, _ := json.Marshal(&body)
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject an end date before the start date", func() {
		w := httptest.NewRecorder()
		body := map[string]any{
			"start_date": "2025-06-10",
			"end_date":   "2025-06-01",
			"items":      []map[string]any{{"item_id": 1, "quantity": 2}},
		}
		sbody, _ := json.Marshal(&body)
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject a line with zero quantity", func() {
		w := httptest.NewRecorder()
		body := map[string]any{
			"start_date": "2025-06-01",
			"end_date":   "2025-06-10",
			"items":      []map[string]any{{"item_id": 1, "quantity": 0}},
		}
		sbody, _ := json.Marshal(&body)
		req, _ := http.NewRequest("POST", "/api/v1/bookings", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestUpdateBookingValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	adminBookingHandlers(apiv1)

	s.Run("Should reject an update with no fields", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PUT", "/api/v1/bookings/id/1", strings.NewReader("{}"))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
		rbytes, err := io.ReadAll(w.Body)
		assert.Nil(s.T(), err)
		assert.Contains(s.T(), gjson.Get(string(rbytes), "error").String(), "no updatable fields")
	})

	s.Run("Should reject a status outside the catalog", func() {
		w := httptest.NewRecorder()
		body := types.UpdateBookingStatusRequestBody{Status: "APPROVED"}
		sbody, _ := json.Marshal(&body)
		req, _ := http.NewRequest("PATCH", "/api/v1/bookings/id/1/status", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject a status update without a status", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/v1/bookings/id/1/status", strings.NewReader("{}"))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestAvailabilityValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	itemHandlers(apiv1)

	s.Run("Should reject a query without dates", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/items/availability", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject malformed dates", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/items/availability?startDate=junk&endDate=2025-06-10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})
}

func (s *TestSuite) TestBookingItemValidation() {
	router := setupRouter()
	apiv1 := apiv1Group(router)
	adminBookingItemHandlers(apiv1)

	s.Run("Should reject a quantity update without a quantity", func() {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/v1/booking-items/1/quantity", strings.NewReader("{}"))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})

	s.Run("Should reject a bulk create without items", func() {
		w := httptest.NewRecorder()
		body := map[string]any{"booking_id": 1, "items": []any{}}
		sbody, _ := json.Marshal(&body)
		req, _ := http.NewRequest("POST", "/api/v1/booking-items/bulk", strings.NewReader(string(sbody)))
		router.ServeHTTP(w, req)

		assert.Equal(s.T(), 400, w.Code)
	})
}

func TestRunner(t *testing.T) {
	suite.Run(t, new(TestSuite))
}
