package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/auth"
)

type MedicationHandler struct {
	useCase app.MedicationUseCase
}

func NewMedicationHandler(useCase app.MedicationUseCase) *MedicationHandler {
	return &MedicationHandler{
		useCase: useCase,
	}
}

func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	var req MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.useCase.CreateMedication(c.Request.Context(), app.CreateMedicationInput{
		UserID:     auth.UserIDFromContext(c.Request.Context()),
		Medication: req.toInput(),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, FromMedicationDTO(output))
}

func (h *MedicationHandler) ListMedications(c *gin.Context) {
	output, err := h.useCase.ListMedications(c.Request.Context(), app.ListMedicationsInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromMedicationsDTO(output))
}

func (h *MedicationHandler) GetMedication(c *gin.Context) {
	output, err := h.useCase.GetMedication(c.Request.Context(), app.GetMedicationInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
		ID:     c.Param("id"),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromMedicationDTO(output))
}

func (h *MedicationHandler) UpdateMedication(c *gin.Context) {
	id := c.Param("id")

	var req MedicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.useCase.UpdateMedication(c.Request.Context(), app.UpdateMedicationInput{
		UserID:     auth.UserIDFromContext(c.Request.Context()),
		ID:         id,
		Medication: req.toInput(),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	slog.Info("medication updated successfully",
		"medication_id", output.ID,
		"reminders_enabled", output.RemindersEnabled,
	)
	c.JSON(http.StatusOK, FromMedicationDTO(output))
}

func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
	id := c.Param("id")

	err := h.useCase.DeleteMedication(c.Request.Context(), app.DeleteMedicationInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
		ID:     id,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

// ListActiveReminders serves the dashboard list of today's reminders.
func (h *MedicationHandler) ListActiveReminders(c *gin.Context) {
	var req ActiveRemindersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.useCase.ListActiveReminders(c.Request.Context(), app.ListActiveRemindersInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
		Date:   req.Date,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromActiveRemindersDTO(output))
}

func (h *MedicationHandler) RegisterRoutes(router *gin.RouterGroup) {
	medications := router.Group("/medications")
	{
		medications.POST("", h.CreateMedication)
		medications.GET("", h.ListMedications)
		medications.GET("/active", h.ListActiveReminders)
		medications.GET("/:id", h.GetMedication)
		medications.PUT("/:id", h.UpdateMedication)
		medications.DELETE("/:id", h.DeleteMedication)
	}
}
