package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/auth"
)

var referenceTime = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

// asUser stands in for the JWT middleware.
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(auth.WithUser(c.Request.Context(), userID, "Test User"))
		c.Next()
	}
}

func doRequest(router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))

	return v
}

func medicationFor(t *testing.T, userID, name, start, end string, reminders bool) *domain.Medication {
	t.Helper()

	owner, err := domain.UserIDFromString(userID)
	require.NoError(t, err)

	startDate, err := domain.ParseOptionalCalendarDate(start)
	require.NoError(t, err)

	endDate, err := domain.ParseOptionalCalendarDate(end)
	require.NoError(t, err)

	return domain.ReconstituteMedication(
		domain.NewMedicationID(),
		owner,
		domain.MedicationDetails{
			Name:             name,
			Dosage:           "10mg",
			Frequency:        "once daily",
			StartDate:        startDate,
			EndDate:          endDate,
			RemindersEnabled: reminders,
		},
		referenceTime,
		referenceTime,
	)
}
