package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/auth"
)

type VisitHandler struct {
	useCase app.VisitUseCase
}

func NewVisitHandler(useCase app.VisitUseCase) *VisitHandler {
	return &VisitHandler{
		useCase: useCase,
	}
}

func (h *VisitHandler) CreateVisit(c *gin.Context) {
	var req VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.useCase.CreateVisit(c.Request.Context(), app.CreateVisitInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
		Visit:  req.toInput(),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusCreated, FromVisitDTO(output))
}

func (h *VisitHandler) ListVisits(c *gin.Context) {
	output, err := h.useCase.ListVisits(c.Request.Context(), app.ListVisitsInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromVisitsDTO(output))
}

func (h *VisitHandler) GetVisit(c *gin.Context) {
	output, err := h.useCase.GetVisit(c.Request.Context(), app.GetVisitInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
		ID:     c.Param("id"),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromVisitDTO(output))
}

func (h *VisitHandler) UpdateVisit(c *gin.Context) {
	var req VisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.useCase.UpdateVisit(c.Request.Context(), app.UpdateVisitInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
		ID:     c.Param("id"),
		Visit:  req.toInput(),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromVisitDTO(output))
}

func (h *VisitHandler) DeleteVisit(c *gin.Context) {
	err := h.useCase.DeleteVisit(c.Request.Context(), app.DeleteVisitInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
		ID:     c.Param("id"),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *VisitHandler) RegisterRoutes(router *gin.RouterGroup) {
	visits := router.Group("/visits")
	{
		visits.POST("", h.CreateVisit)
		visits.GET("", h.ListVisits)
		visits.GET("/:id", h.GetVisit)
		visits.PUT("/:id", h.UpdateVisit)
		visits.DELETE("/:id", h.DeleteVisit)
	}
}
