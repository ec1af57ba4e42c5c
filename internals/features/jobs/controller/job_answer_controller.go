package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lgwakano/workflow-api/internals/features/jobs/dto"
	"github.com/lgwakano/workflow-api/internals/features/jobs/model"
	"github.com/lgwakano/workflow-api/internals/features/jobs/service"
	questionModel "github.com/lgwakano/workflow-api/internals/features/questions/model"
	helper "github.com/lgwakano/workflow-api/internals/helpers"
	"github.com/lgwakano/workflow-api/internals/helpers/dberr"
)

type JobAnswerController struct {
	DB *gorm.DB
}

func NewJobAnswerController(db *gorm.DB) *JobAnswerController {
	return &JobAnswerController{DB: db}
}

// resolveJob translates the :jobId path segment (id or uuid). On failure it
// writes the error response and reports ok=false; the error return carries
// the response writer's result, which is nil after a successful write, so
// callers must branch on ok rather than err.
func (ctrl *JobAnswerController) resolveJob(c *fiber.Ctx) (int, bool, error) {
	jobID, err := service.ResolveJobID(ctrl.DB, c.Params("jobId"))
	if errors.Is(err, service.ErrInvalidJobReference) {
		return 0, false, helper.Error(c, fiber.StatusBadRequest, "Invalid job ID")
	}
	if service.IsNotFound(err) {
		return 0, false, helper.Error(c, fiber.StatusNotFound, "Job not found")
	}
	if err != nil {
		return 0, false, dberr.Respond(c, err, "job", "Failed to resolve job.")
	}
	return jobID, true, nil
}

// GetForJob lists every answer row of a job, historical rows included.
func (ctrl *JobAnswerController) GetForJob(c *fiber.Ctx) error {
	jobID, ok, err := ctrl.resolveJob(c)
	if !ok {
		return err
	}

	var answers []model.JobAnswerModel
	if err := ctrl.DB.Where("job_id = ?", jobID).Order("id ASC").Find(&answers).Error; err != nil {
		return dberr.Respond(c, err, "job answer", "Failed to retrieve answers.")
	}
	return c.JSON(answers)
}

// Create inserts a new answer row. No check for a prior answer: rows for the
// same pair may coexist and reads resolve to the most recent one.
func (ctrl *JobAnswerController) Create(c *fiber.Ctx) error {
	jobID, ok, err := ctrl.resolveJob(c)
	if !ok {
		return err
	}

	var req dto.AnswerCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// The question must exist; the store's FK alone would surface a
	// delete-phrased conflict message here.
	var questionCount int64
	if err := ctrl.DB.Model(&questionModel.QuestionModel{}).
		Where("id = ?", req.QuestionID).
		Count(&questionCount).Error; err != nil {
		return dberr.Respond(c, err, "job answer", "Failed to create answer. Please verify the input data.")
	}
	if questionCount == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Question not found")
	}

	answer := model.JobAnswerModel{
		JobID:      jobID,
		QuestionID: req.QuestionID,
		Answer:     datatypes.JSONSlice[string](req.Answer),
	}
	if err := ctrl.DB.Create(&answer).Error; err != nil {
		return dberr.Respond(c, err, "job answer", "Failed to create answer. Please verify the input data.")
	}
	return c.Status(fiber.StatusCreated).JSON(answer)
}

// Update mutates the current answer row for the (job, question) pair in
// place. Older rows for the pair are left alone.
func (ctrl *JobAnswerController) Update(c *fiber.Ctx) error {
	jobID, ok, err := ctrl.resolveJob(c)
	if !ok {
		return err
	}
	questionID, err := strconv.Atoi(c.Params("questionId"))
	if err != nil || questionID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var req dto.AnswerUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	answer, err := service.CurrentAnswer(ctrl.DB, jobID, questionID)
	if service.IsNotFound(err) {
		return helper.Error(c, fiber.StatusNotFound, "No answer found for this job and question")
	}
	if err != nil {
		return dberr.Respond(c, err, "job answer", "Failed to update answer.")
	}

	answer.Answer = datatypes.JSONSlice[string](req.Answer)
	if err := ctrl.DB.Save(answer).Error; err != nil {
		return dberr.Respond(c, err, "job answer", "Failed to update answer.")
	}
	return c.JSON(answer)
}

// Delete removes only the current row for the pair; history stays.
func (ctrl *JobAnswerController) Delete(c *fiber.Ctx) error {
	jobID, ok, err := ctrl.resolveJob(c)
	if !ok {
		return err
	}
	questionID, err := strconv.Atoi(c.Params("questionId"))
	if err != nil || questionID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	answer, err := service.CurrentAnswer(ctrl.DB, jobID, questionID)
	if service.IsNotFound(err) {
		status, message := dberr.Normalize(dberr.KindNotFoundOnDelete, "job answer", "")
		return helper.Error(c, status, message)
	}
	if err != nil {
		return dberr.Respond(c, err, "job answer", "Failed to delete answer.")
	}

	if err := ctrl.DB.Delete(answer).Error; err != nil {
		return dberr.Respond(c, err, "job answer", "Failed to delete answer.")
	}
	return helper.Message(c, "Answer deleted successfully")
}
