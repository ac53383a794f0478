package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/handler"
)

func setupMedicationRouter(t *testing.T, userID string) (*gin.Engine, *domain.MockMedicationRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := domain.NewMockMedicationRepository(ctrl)

	h := handler.NewMedicationHandler(app.NewMedicationUseCase(repo, app.FixedClock(referenceTime)))

	router := gin.New()
	api := router.Group("/api/v1", asUser(userID))
	h.RegisterRoutes(api)

	return router, repo
}

func TestCreateMedicationHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		router, repo := setupMedicationRouter(t, "alice")

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		rec := doRequest(router, http.MethodPost, "/api/v1/medications", map[string]any{
			"name":              "Lisinopril",
			"dosage":            "10mg",
			"frequency":         "once daily",
			"start_date":        "2024-03-01",
			"reminders_enabled": true,
		})

		assert.Equal(t, http.StatusCreated, rec.Code)

		resp := decode[handler.MedicationResponse](t, rec)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "alice", resp.UserID)
		assert.Equal(t, "2024-03-01", resp.StartDate)
		assert.Empty(t, resp.EndDate)
		assert.True(t, resp.RemindersEnabled)
	})

	tests := []struct {
		name          string
		body          map[string]any
		expectedField string
	}{
		{
			name:          "missing required field",
			body:          map[string]any{"name": "Lisinopril", "dosage": "10mg"},
			expectedField: "",
		},
		{
			name: "malformed start date",
			body: map[string]any{
				"name": "Lisinopril", "dosage": "10mg", "frequency": "daily", "start_date": "March 1",
			},
			expectedField: "start_date",
		},
		{
			name: "end before start",
			body: map[string]any{
				"name": "Lisinopril", "dosage": "10mg", "frequency": "daily",
				"start_date": "2024-03-10", "end_date": "2024-03-01",
			},
			expectedField: "end_date",
		},
		{
			name:          "short name",
			body:          map[string]any{"name": "L", "dosage": "10mg", "frequency": "daily"},
			expectedField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupMedicationRouter(t, "alice")

			rec := doRequest(router, http.MethodPost, "/api/v1/medications", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			resp := decode[handler.ErrorResponse](t, rec)
			assert.Equal(t, "validation_error", resp.Error)
			assert.Equal(t, tt.expectedField, resp.Field)
		})
	}
}

func TestGetMedicationHandler(t *testing.T) {
	med := medicationFor(t, "alice", "Lisinopril", "", "", true)

	tests := []struct {
		name           string
		userID         string
		path           string
		setup          func(repo *domain.MockMedicationRepository)
		expectedStatus int
	}{
		{
			name:   "owner",
			userID: "alice",
			path:   "/api/v1/medications/" + med.ID().String(),
			setup: func(repo *domain.MockMedicationRepository) {
				repo.EXPECT().FindByID(gomock.Any(), med.ID()).Return(med, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "other user",
			userID: "bob",
			path:   "/api/v1/medications/" + med.ID().String(),
			setup: func(repo *domain.MockMedicationRepository) {
				repo.EXPECT().FindByID(gomock.Any(), med.ID()).Return(med, nil)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed id",
			userID:         "alice",
			path:           "/api/v1/medications/abc",
			setup:          func(*domain.MockMedicationRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "store failure",
			userID: "alice",
			path:   "/api/v1/medications/" + med.ID().String(),
			setup: func(repo *domain.MockMedicationRepository) {
				repo.EXPECT().FindByID(gomock.Any(), med.ID()).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, repo := setupMedicationRouter(t, tt.userID)
			tt.setup(repo)

			rec := doRequest(router, http.MethodGet, tt.path, nil)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestListMedicationsHandler(t *testing.T) {
	router, repo := setupMedicationRouter(t, "alice")

	repo.EXPECT().FindByOwnerID(gomock.Any(), gomock.Any()).Return([]*domain.Medication{
		medicationFor(t, "alice", "Lisinopril", "", "", true),
		medicationFor(t, "alice", "Metformin", "", "", false),
	}, nil)

	rec := doRequest(router, http.MethodGet, "/api/v1/medications", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decode[handler.MedicationsResponse](t, rec)
	assert.Equal(t, int32(2), resp.Count)
	assert.Len(t, resp.Medications, 2)
}

func TestUpdateMedicationHandler(t *testing.T) {
	router, repo := setupMedicationRouter(t, "alice")
	med := medicationFor(t, "alice", "Lisinopril", "", "", false)

	repo.EXPECT().FindByID(gomock.Any(), med.ID()).Return(med, nil)
	repo.EXPECT().Update(gomock.Any(), med).Return(nil)

	rec := doRequest(router, http.MethodPut, "/api/v1/medications/"+med.ID().String(), map[string]any{
		"name":              "Lisinopril",
		"dosage":            "20mg",
		"frequency":         "twice daily",
		"reminders_enabled": true,
	})

	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decode[handler.MedicationResponse](t, rec)
	assert.Equal(t, "20mg", resp.Dosage)
	assert.True(t, resp.RemindersEnabled)
}

func TestDeleteMedicationHandler(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router, repo := setupMedicationRouter(t, "alice")
		med := medicationFor(t, "alice", "Lisinopril", "", "", false)

		repo.EXPECT().FindByID(gomock.Any(), med.ID()).Return(med, nil)
		repo.EXPECT().Delete(gomock.Any(), med.ID()).Return(nil)

		rec := doRequest(router, http.MethodDelete, "/api/v1/medications/"+med.ID().String(), nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("already gone", func(t *testing.T) {
		router, repo := setupMedicationRouter(t, "alice")
		id := domain.NewMedicationID()

		repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, domain.ErrMedicationNotFound)

		rec := doRequest(router, http.MethodDelete, "/api/v1/medications/"+id.String(), nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestListActiveRemindersHandler(t *testing.T) {
	t.Run("defaults to today", func(t *testing.T) {
		router, repo := setupMedicationRouter(t, "alice")

		repo.EXPECT().FindReminderEnabledByOwnerID(gomock.Any(), gomock.Any()).Return([]*domain.Medication{
			medicationFor(t, "alice", "Lisinopril", "2024-03-01", "", true),
			medicationFor(t, "alice", "Vitamin D", "", "", true),
		}, nil)

		rec := doRequest(router, http.MethodGet, "/api/v1/medications/active", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		resp := decode[handler.ActiveRemindersResponse](t, rec)
		assert.Equal(t, "2024-03-15", resp.Date)
		assert.Equal(t, int32(1), resp.Count)
		assert.Equal(t, "Lisinopril", resp.Medications[0].Name)
	})

	t.Run("malformed date", func(t *testing.T) {
		router, _ := setupMedicationRouter(t, "alice")

		rec := doRequest(router, http.MethodGet, "/api/v1/medications/active?date=15-03-2024", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "date", decode[handler.ErrorResponse](t, rec).Field)
	})

	t.Run("store failure", func(t *testing.T) {
		router, repo := setupMedicationRouter(t, "alice")

		repo.EXPECT().FindReminderEnabledByOwnerID(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		rec := doRequest(router, http.MethodGet, "/api/v1/medications/active", nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "medications")
	})
}
