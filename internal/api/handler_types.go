package api

import (
	"time"

	"github.com/StephanBK/sloth/internal/db"
	"github.com/StephanBK/sloth/internal/i18n"
	"github.com/StephanBK/sloth/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool
	i18n         *i18n.Manager

	repositories    *db.Repositories
	authService     *services.AuthService
	weightService   *services.WeightService
	progressService *services.ProgressService
	intakeService   *services.IntakeService
	mealPlanService *services.MealPlanService
}

type HandlerConfig struct {
	DB           *gorm.DB
	SecretKey    []byte
	Location     *time.Location
	CookieSecure bool
	I18n         *i18n.Manager
}

func NewHandler(config HandlerConfig) *Handler {
	handler := &Handler{
		db:           config.DB,
		secretKey:    config.SecretKey,
		location:     config.Location,
		cookieSecure: config.CookieSecure,
		i18n:         config.I18n,
	}
	return handler.withDependencies(config.DB)
}

const defaultAuthTokenTTL = 7 * 24 * time.Hour
