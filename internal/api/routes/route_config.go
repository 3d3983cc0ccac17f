package routes

import (
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	FoodHandler         handlers.FoodHandler
	NotificationHandler handlers.NotificationHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.User()
	c.Food()
	c.Notifications()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/api/v1/auth")
	{
		auth.Post("/signup", c.UserHandler.Register)
		auth.Post("/login", c.UserHandler.Login)
		auth.Get("/user", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/user", c.Middleware.AuthMiddleware(c.JWTService))
	{
		user.Get("/profile", c.UserHandler.GetProfile)
		user.Post("/profile", c.UserHandler.UpdateProfile)
	}
}

func (c *Config) Food() {
	food := c.App.Group("/api/v1/food")

	// Public browse/search
	food.Get("", c.FoodHandler.GetFoodItems)
	food.Get("/myfoods", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.GetMyFoodItems)
	food.Get("/:id", c.FoodHandler.GetFoodItemDetails)

	// Donor-gated mutations
	food.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.AddFoodItem)
	food.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.UpdateFoodItem)
	food.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.DeleteFoodItem)
	food.Post("/image", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.UploadFoodImage)

	// Request workflow
	food.Post("/:id/request", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.RequestFood)
	food.Patch("/requests/:id/status", c.Middleware.AuthMiddleware(c.JWTService), c.FoodHandler.UpdateRequestStatus)
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	{
		notifications.Get("", c.NotificationHandler.GetNotifications)
		notifications.Get("/unread-count", c.NotificationHandler.GetUnreadCount)
		notifications.Put("/read-all", c.NotificationHandler.MarkAllAsRead)
		notifications.Put("/:id/read", c.NotificationHandler.MarkAsRead)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
