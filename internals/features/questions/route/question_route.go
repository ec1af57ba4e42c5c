package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	questionController "github.com/lgwakano/workflow-api/internals/features/questions/controller"
)

func QuestionRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := questionController.NewQuestionController(db)

	questions := api.Group("/questions")
	questions.Get("/", ctrl.GetAll)
	questions.Get("/:id", ctrl.GetByID)
	questions.Post("/", ctrl.Create)
	questions.Put("/:id", ctrl.Update)
	questions.Delete("/:id", ctrl.Delete)
}
