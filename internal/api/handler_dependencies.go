package api

import (
	"github.com/StephanBK/sloth/internal/db"
	"github.com/StephanBK/sloth/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.weightService = services.NewWeightService(handler.repositories.WeightEntries, handler.repositories.Users)
	handler.progressService = services.NewProgressService(handler.repositories.WeightEntries, handler.repositories.Users, handler.location)
	handler.intakeService = services.NewIntakeService(handler.repositories.Users, handler.repositories.WeightEntries)
	handler.mealPlanService = services.NewMealPlanService(handler.repositories.MealPlans)
	return handler
}
