package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Use(handler.DetectLanguage)

	app.Get("/healthz", handler.Health)
	app.Post("/lang/:lang", handler.SetLanguage)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("/me", handler.GetProfile)
	users.Patch("/me", handler.PatchProfile)
	users.Post("/me/intake", handler.CompleteIntake)
	users.Post("/me/level", handler.ChangeLevel)

	weight := api.Group("/weight", handler.AuthRequired)
	weight.Get("", handler.GetWeightOverview)
	weight.Post("", handler.CreateWeightEntry)
	weight.Get("/:id", handler.GetWeightEntry)
	weight.Patch("/:id", handler.UpdateWeightEntry)
	weight.Delete("/:id", handler.DeleteWeightEntry)

	progress := api.Group("/progress", handler.AuthRequired)
	progress.Get("/level-recommendation", handler.GetLevelRecommendation)

	mealPlans := api.Group("/meal-plans", handler.AuthRequired)
	mealPlans.Get("", handler.IntakeRequired, handler.ListMealPlans)
	mealPlans.Get("/:id", handler.IntakeRequired, handler.GetMealPlan)
	mealPlans.Post("", handler.CreateMealPlan)

	api.Post("/grocery-list", handler.AuthRequired, handler.IntakeRequired, handler.BuildGroceryList)
}
