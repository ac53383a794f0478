package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/auth"
)

type RegisterPushTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
}

type ProfileResponse struct {
	UserID       string    `json:"user_id"`
	DisplayName  string    `json:"display_name"`
	HasPushToken bool      `json:"has_push_token"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func fromProfileDTO(output app.ProfileOutput) ProfileResponse {
	return ProfileResponse{
		UserID:       output.UserID,
		DisplayName:  output.DisplayName,
		HasPushToken: output.HasPushToken,
		UpdatedAt:    output.UpdatedAt,
	}
}

type ProfileHandler struct {
	useCase app.ProfileUseCase
}

func NewProfileHandler(useCase app.ProfileUseCase) *ProfileHandler {
	return &ProfileHandler{useCase: useCase}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.useCase.GetProfile(c.Request.Context(), app.GetProfileInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, fromProfileDTO(output))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	output, err := h.useCase.UpdateProfile(c.Request.Context(), app.UpdateProfileInput{
		UserID:      auth.UserIDFromContext(c.Request.Context()),
		DisplayName: req.DisplayName,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, fromProfileDTO(output))
}

func (h *ProfileHandler) RegisterPushToken(c *gin.Context) {
	var req RegisterPushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)

		return
	}

	ctx := c.Request.Context()

	output, err := h.useCase.RegisterPushToken(ctx, app.RegisterPushTokenInput{
		UserID:      auth.UserIDFromContext(ctx),
		DisplayName: auth.DisplayNameFromContext(ctx),
		Token:       req.Token,
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.JSON(http.StatusOK, fromProfileDTO(output))
}

func (h *ProfileHandler) ClearPushToken(c *gin.Context) {
	err := h.useCase.ClearPushToken(c.Request.Context(), app.ClearPushTokenInput{
		UserID: auth.UserIDFromContext(c.Request.Context()),
	})
	if err != nil {
		respondError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.PUT("/push-token", h.RegisterPushToken)
		profile.DELETE("/push-token", h.ClearPushToken)
	}
}
