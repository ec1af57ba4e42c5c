package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notificationController "github.com/lgwakano/workflow-api/internals/features/notifications/controller"
)

func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := notificationController.NewNotificationController(db)

	notifications := api.Group("/notifications")
	notifications.Get("/", ctrl.GetAll)
	notifications.Post("/", ctrl.Create)
	notifications.Put("/:id/dismiss", ctrl.Dismiss)
}
