package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	customerController "github.com/lgwakano/workflow-api/internals/features/customers/controller"
)

func CustomerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := customerController.NewCustomerController(db)

	customers := api.Group("/customers")
	customers.Get("/", ctrl.GetAll)
	customers.Get("/:id", ctrl.GetByID)
	customers.Post("/", ctrl.Create)
	customers.Put("/:id", ctrl.Update)
	customers.Delete("/:id", ctrl.Delete)
}
