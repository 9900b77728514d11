package routes

import (
	"github.com/bigBrother1996/devConnector/internal/config"
	"github.com/bigBrother1996/devConnector/internal/handlers"
	"github.com/bigBrother1996/devConnector/internal/middleware"
	"github.com/bigBrother1996/devConnector/internal/validation"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	profileHandler *handlers.ProfileHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("okay")
	})

	api := app.Group("/api")

	api.Get("/health", healthHandler.Check)

	// Registration — public
	api.Post("/users",
		validation.Body(
			validation.NotEmpty("name", "Name is required"),
			validation.IsEmail("email", "Please include valid email"),
			validation.MinLength("password", "please enter a password with 6 or more character", 6),
		),
		authHandler.Register,
	)

	// Auth
	api.Post("/auth",
		validation.Body(
			validation.IsEmail("email", "Please include valid email"),
			validation.NotEmpty("password", "Password is required"),
		),
		authHandler.Login,
	)
	api.Get("/auth", middleware.Protected(cfg), authHandler.CurrentUser)

	// Profiles
	profile := api.Group("/profile")
	profile.Get("/me", middleware.Protected(cfg), profileHandler.Me)
	profile.Post("/",
		middleware.Protected(cfg),
		validation.Body(
			validation.NotEmpty("status", "Status is required"),
			validation.NotEmpty("skills", "Skills is required"),
		),
		profileHandler.Upsert,
	)
	profile.Get("/", profileHandler.All)
	profile.Get("/user/:userId", profileHandler.ByUser)
	profile.Delete("/", middleware.Protected(cfg), profileHandler.Delete)

	profile.Put("/experience",
		middleware.Protected(cfg),
		validation.Body(
			validation.NotEmpty("title", "title is required"),
			validation.NotEmpty("company", "company is required"),
			validation.NotEmpty("from", "from date is required"),
		),
		profileHandler.AddExperience,
	)
	profile.Delete("/experience/:expId", middleware.Protected(cfg), profileHandler.RemoveExperience)

	profile.Put("/education",
		middleware.Protected(cfg),
		validation.Body(
			validation.NotEmpty("school", "School is required"),
			validation.NotEmpty("degree", "Degree is required"),
			validation.NotEmpty("fieldofstudy", "fieldofstudy is required"),
			validation.NotEmpty("from", "from date is required"),
		),
		profileHandler.AddEducation,
	)
	profile.Delete("/education/:eduId", middleware.Protected(cfg), profileHandler.RemoveEducation)
}
