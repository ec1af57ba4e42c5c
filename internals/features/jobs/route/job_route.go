package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	jobController "github.com/lgwakano/workflow-api/internals/features/jobs/controller"
)

// JobRoutes centralizes all job-scoped routes under /jobs, including the
// nested answers and questions resources.
func JobRoutes(api fiber.Router, db *gorm.DB) {
	jobCtrl := jobController.NewJobController(db)
	answerCtrl := jobController.NewJobAnswerController(db)
	questionCtrl := jobController.NewJobQuestionController(db)

	jobs := api.Group("/jobs")
	jobs.Get("/", jobCtrl.GetAll)
	jobs.Post("/", jobCtrl.Create)

	jobs.Get("/:jobId/answers", answerCtrl.GetForJob)
	jobs.Post("/:jobId/answers", answerCtrl.Create)
	jobs.Put("/:jobId/answers/:questionId", answerCtrl.Update)
	jobs.Delete("/:jobId/answers/:questionId", answerCtrl.Delete)

	jobs.Get("/:jobId/questions", questionCtrl.GetForJob)

	// Keep the plain :id routes last so the nested paths match first.
	jobs.Get("/:id", jobCtrl.GetByID)
	jobs.Put("/:id", jobCtrl.Update)
	jobs.Delete("/:id", jobCtrl.Delete)
}
