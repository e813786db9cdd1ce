package routes

import (
	"daily-diet-api/internal/api/handlers"
	"daily-diet-api/internal/middleware"
	"daily-diet-api/pkg/user"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App         *fiber.App
	UserHandler handlers.UserHandler
	MealHandler handlers.MealHandler
	Middleware  middleware.Middleware
	UserService user.UserService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.User()
	c.Meals()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("", c.UserHandler.Register)
		user.Get("", c.UserHandler.GetUsers)
		user.Get("/me", c.Middleware.AuthMiddleware(c.UserService), c.UserHandler.Me)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Meals() {
	meals := c.App.Group("/api/v1/meals", c.Middleware.AuthMiddleware(c.UserService))

	// analytics before the :mealId routes
	meals.Get("/summary", c.MealHandler.GetSummary)
	meals.Get("/bestdaysequence/:date", c.MealHandler.GetBestDaySequence)

	meals.Post("", c.MealHandler.CreateMeal)
	meals.Get("", c.MealHandler.GetMeals)
	meals.Get("/:mealId", c.MealHandler.GetMealDetails)
	meals.Patch("/:mealId", c.MealHandler.UpdateMeal)
	meals.Delete("/:mealId", c.MealHandler.DeleteMeal)
}
