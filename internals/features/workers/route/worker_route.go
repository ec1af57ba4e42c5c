package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	workerController "github.com/lgwakano/workflow-api/internals/features/workers/controller"
)

func WorkerRoutes(api fiber.Router, db *gorm.DB) {
	assignmentCtrl := workerController.NewWorkerAssignmentController(db)
	workerCtrl := workerController.NewWorkerController(db)

	assignments := api.Group("/worker-assignments")
	assignments.Get("/jobs/:jobId", assignmentCtrl.GetForJob)
	assignments.Get("/:id", assignmentCtrl.GetByID)
	assignments.Post("/", assignmentCtrl.Create)
	assignments.Put("/:id", assignmentCtrl.Update)
	assignments.Delete("/:id", assignmentCtrl.Delete)

	workers := api.Group("/workers")
	workers.Get("/", workerCtrl.GetAll)
	workers.Get("/:id", workerCtrl.GetByID)
	workers.Post("/", workerCtrl.Create)
	workers.Put("/:id", workerCtrl.Update)
	workers.Delete("/:id", workerCtrl.Delete)
}
