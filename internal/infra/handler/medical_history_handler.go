package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/auth"
)

type MedicalHistoryHandler struct {
	useCase app.MedicalHistoryUseCase
}

func NewMedicalHistoryHandler(useCase app.MedicalHistoryUseCase) *MedicalHistoryHandler {
	return &MedicalHistoryHandler{
		useCase: useCase,
	}
}

func (h *MedicalHistoryHandler) CreateEntry(c *gin.Context) {
	var req MedicalHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.useCase.CreateEntry(c.Request.Context(), app.CreateMedicalHistoryInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
		Entry:  req.toInput(),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, FromMedicalHistoryDTO(output))
}

func (h *MedicalHistoryHandler) ListEntries(c *gin.Context) {
	output, err := h.useCase.ListEntries(c.Request.Context(), app.ListMedicalHistoryInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromMedicalHistoryListDTO(output))
}

func (h *MedicalHistoryHandler) GetEntry(c *gin.Context) {
	output, err := h.useCase.GetEntry(c.Request.Context(), app.GetMedicalHistoryInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
		ID:     c.Param("id"),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromMedicalHistoryDTO(output))
}

func (h *MedicalHistoryHandler) UpdateEntry(c *gin.Context) {
	var req MedicalHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.useCase.UpdateEntry(c.Request.Context(), app.UpdateMedicalHistoryInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
		ID:     c.Param("id"),
		Entry:  req.toInput(),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromMedicalHistoryDTO(output))
}

func (h *MedicalHistoryHandler) DeleteEntry(c *gin.Context) {
	err := h.useCase.DeleteEntry(c.Request.Context(), app.DeleteMedicalHistoryInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
		ID:     c.Param("id"),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MedicalHistoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	history := router.Group("/medical-history")
	{
		history.POST("", h.CreateEntry)
		history.GET("", h.ListEntries)
		history.GET("/:id", h.GetEntry)
		history.PUT("/:id", h.UpdateEntry)
		history.DELETE("/:id", h.DeleteEntry)
	}
}
