package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/auth"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/handler"
	"github.com/KasumiMercury/primind-medication-remind/internal/infra/repository"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability/logging"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability/metrics"
	"github.com/KasumiMercury/primind-medication-remind/internal/observability/middleware"
)

const cronSendRemindersPath = "/api/cron/send-reminders"

func setupRouter(rt *services, dispatcher handler.ReminderDispatcher) (*gin.Engine, error) {
	httpMetrics, err := metrics.NewHTTPMetrics(rt.obs.Metrics.Meter())
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		middleware.PanicRecoveryGin(),
		middleware.Gin(middleware.GinConfig{
			SkipPaths:      []string{"/ping"},
			Module:         logging.ModuleMedication,
			ModuleResolver: resolveModule,
			JobPaths:       map[string]string{cronSendRemindersPath: "send-reminders"},
			TracerName:     serviceTracerName,
			HTTPMetrics:    httpMetrics,
		}),
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	medicationUseCase := app.NewMedicationUseCase(
		repository.NewMedicationRepository(rt.db),
		app.SystemClock{Location: rt.cfg.Reminder.Location},
	)
	profileUseCase := app.NewProfileUseCase(repository.NewProfileRepository(rt.db))
	historyUseCase := app.NewMedicalHistoryUseCase(repository.NewMedicalHistoryRepository(rt.db))
	visitUseCase := app.NewVisitUseCase(repository.NewVisitRepository(rt.db))

	v1 := router.Group("/api/v1", auth.JWTMiddleware(auth.JWTConfig{
		SigningKey: []byte(rt.cfg.Auth.JWTSecret),
		Issuer:     rt.cfg.Auth.Issuer,
		Audience:   rt.cfg.Auth.Audience,
	}))
	handler.NewMedicationHandler(medicationUseCase).RegisterRoutes(v1)
	handler.NewProfileHandler(profileUseCase).RegisterRoutes(v1)
	handler.NewMedicalHistoryHandler(historyUseCase).RegisterRoutes(v1)
	handler.NewVisitHandler(visitUseCase).RegisterRoutes(v1)

	handler.NewReminderHandler(dispatcher).RegisterRoutes(router.Group("/api"), auth.CronSecretMiddleware(rt.cfg.Auth.CronSecret))

	return router, nil
}

const serviceTracerName = "github.com/KasumiMercury/primind-medication-remind"

func resolveModule(c *gin.Context) logging.Module {
	switch c.FullPath() {
	case cronSendRemindersPath:
		return logging.ModuleReminder
	case "/api/v1/profile", "/api/v1/profile/push-token":
		return logging.ModuleProfile
	case "/api/v1/medical-history", "/api/v1/medical-history/:id", "/api/v1/visits", "/api/v1/visits/:id":
		return logging.ModuleHealthRecords
	default:
		return ""
	}
}
