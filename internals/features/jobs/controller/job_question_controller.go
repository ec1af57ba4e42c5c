package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lgwakano/workflow-api/internals/features/jobs/service"
	helper "github.com/lgwakano/workflow-api/internals/helpers"
	"github.com/lgwakano/workflow-api/internals/helpers/dberr"
)

type JobQuestionController struct {
	DB *gorm.DB
}

func NewJobQuestionController(db *gorm.DB) *JobQuestionController {
	return &JobQuestionController{DB: db}
}

// GetForJob returns the question templates bound to a job as a flat
// projection, ordered by display order. The reference may be the surrogate
// id or the uuid.
func (ctrl *JobQuestionController) GetForJob(c *fiber.Ctx) error {
	jobID, err := service.ResolveJobID(ctrl.DB, c.Params("jobId"))
	if errors.Is(err, service.ErrInvalidJobReference) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid job ID")
	}
	if service.IsNotFound(err) {
		return helper.Error(c, fiber.StatusNotFound, "Job not found")
	}
	if err != nil {
		return dberr.Respond(c, err, "job", "Failed to fetch questions. Please try again.")
	}

	questions, err := service.QuestionsForJob(ctrl.DB, jobID)
	if err != nil {
		return dberr.Respond(c, err, "job", "Failed to fetch questions. Please try again.")
	}
	return c.JSON(toQuestionResponses(questions))
}
