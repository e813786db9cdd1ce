package config

import (
	"daily-diet-api/internal/api/handlers"
	"daily-diet-api/internal/api/presenters"
	"daily-diet-api/internal/api/routes"
	"daily-diet-api/internal/middleware"
	"daily-diet-api/internal/utils"
	"daily-diet-api/pkg/analytics"
	"daily-diet-api/pkg/jwt"
	"daily-diet-api/pkg/meal"
	"daily-diet-api/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
		ErrorHandler:      presenters.ErrorHandler,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	location, err := time.LoadLocation(utils.GetConfig("TIME_ZONE"))
	if err != nil {
		log.Warnf("unknown TIME_ZONE %q, using UTC", utils.GetConfig("TIME_ZONE"))
		location = time.UTC
	}

	// setting up logging and limiter
	err = os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   location.String(),
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetConfigInt("RATE_LIMIT_PER_SECOND", 10),
		Expiration: 1 * time.Second,
	}))

	sessionTTL := time.Duration(utils.GetConfigInt("SESSION_TTL_HOURS", 168)) * time.Hour
	cookieSecure := utils.GetConfig("COOKIE_SECURE") == "true"

	// Repository
	userRepository := user.NewUserRepository(db)
	mealRepository := meal.NewMealRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"), sessionTTL)
	userService := user.NewUserService(userRepository, jwtService)
	mealService := meal.NewMealService(mealRepository, analytics.MatcherFor(utils.GetConfig("DAY_MATCH")))

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator, sessionTTL, cookieSecure)
	mealHandler := handlers.NewMealHandler(mealService, validator, location)

	// routes
	routesConfig := routes.Config{
		App:         app,
		UserHandler: userHandler,
		MealHandler: mealHandler,
		Middleware:  middlewares,
		UserService: userService,
	}
	routesConfig.Setup()

	log.Infow("app configured",
		"day_match", utils.GetConfig("DAY_MATCH"),
		"time_zone", location.String(),
	)
	return app, nil
}
