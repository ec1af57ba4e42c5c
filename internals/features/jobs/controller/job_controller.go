package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	customerDTO "github.com/lgwakano/workflow-api/internals/features/customers/dto"
	"github.com/lgwakano/workflow-api/internals/features/jobs/dto"
	"github.com/lgwakano/workflow-api/internals/features/jobs/model"
	"github.com/lgwakano/workflow-api/internals/features/jobs/service"
	questionDTO "github.com/lgwakano/workflow-api/internals/features/questions/dto"
	questionModel "github.com/lgwakano/workflow-api/internals/features/questions/model"
	helper "github.com/lgwakano/workflow-api/internals/helpers"
	"github.com/lgwakano/workflow-api/internals/helpers/dberr"
)

var validate = validator.New()

type JobController struct {
	DB *gorm.DB
}

func NewJobController(db *gorm.DB) *JobController {
	return &JobController{DB: db}
}

// GetAll lists jobs newest first with a pagination envelope.
func (ctrl *JobController) GetAll(c *fiber.Ctx) error {
	params := helper.ParsePageParams(c)

	var jobs []model.JobModel
	err := ctrl.DB.Preload("Customer").
		Order("created_at DESC").
		Offset(params.Offset()).
		Limit(params.PageSize).
		Find(&jobs).Error
	if err != nil {
		return dberr.Respond(c, err, "job", "Failed to retrieve jobs. Please try again later.")
	}

	var total int64
	if err := ctrl.DB.Model(&model.JobModel{}).Count(&total).Error; err != nil {
		return dberr.Respond(c, err, "job", "Failed to retrieve jobs. Please try again later.")
	}

	responses := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, toJobResponse(job))
	}
	return c.JSON(fiber.Map{
		"data": responses,
		"meta": helper.NewPageMeta(params, total),
	})
}

// GetByID accepts either the surrogate id or the job UUID. With
// ?includeQuestions=true the bound templates come along.
func (ctrl *JobController) GetByID(c *fiber.Ctx) error {
	jobID, err := service.ResolveJobID(ctrl.DB, c.Params("id"))
	if errors.Is(err, service.ErrInvalidJobReference) {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid job ID")
	}
	if service.IsNotFound(err) {
		return helper.Error(c, fiber.StatusNotFound, "Job not found")
	}
	if err != nil {
		return dberr.Respond(c, err, "job", "Failed to retrieve job.")
	}

	var job model.JobModel
	if err := ctrl.DB.Preload("Customer").First(&job, "id = ?", jobID).Error; err != nil {
		return dberr.Respond(c, err, "job", "Failed to retrieve job.")
	}

	resp := toJobResponse(job)
	if c.Query("includeQuestions") == "true" {
		questions, err := service.QuestionsForJob(ctrl.DB, jobID)
		if err != nil {
			return dberr.Respond(c, err, "job", "Failed to retrieve job questions.")
		}
		resp.Questions = toQuestionResponses(questions)
	}
	return c.JSON(resp)
}

// Create persists the job together with its question-binding snapshot;
// the two go through one transaction so a binding failure rolls the job
// back as well.
func (ctrl *JobController) Create(c *fiber.Ctx) error {
	var req dto.JobCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	job := model.JobModel{
		Name:        req.Name,
		Description: req.Description,
		Deadline:    req.Deadline,
		CustomerID:  req.CustomerID,
	}
	if err := service.CreateJobWithQuestionSnapshot(ctrl.DB, &job); err != nil {
		return dberr.Respond(c, err, "job", "Failed to create job. Please verify the input data.")
	}

	if err := ctrl.DB.Preload("Customer").First(&job, "id = ?", job.ID).Error; err != nil {
		return dberr.Respond(c, err, "job", "Failed to create job. Please verify the input data.")
	}
	return c.Status(fiber.StatusCreated).JSON(toJobResponse(job))
}

// Update edits the job's own fields. The uuid and bindings are untouched.
func (ctrl *JobController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid job ID")
	}

	var req dto.JobUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var job model.JobModel
	if err := ctrl.DB.First(&job, "id = ?", id).Error; err != nil {
		if service.IsNotFound(err) {
			return helper.Error(c, fiber.StatusNotFound, "Job not found")
		}
		return dberr.Respond(c, err, "job", "Failed to update job. Please verify the input data.")
	}

	job.Name = req.Name
	job.Description = req.Description
	job.Deadline = req.Deadline
	job.CustomerID = req.CustomerID
	if err := ctrl.DB.Save(&job).Error; err != nil {
		return dberr.Respond(c, err, "job", "Failed to update job. Please verify the input data.")
	}

	return c.JSON(toJobResponse(job))
}

func (ctrl *JobController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid job ID")
	}

	if err := service.DeleteJobCascade(ctrl.DB, id); err != nil {
		return dberr.Respond(c, err, "job", "Failed to delete job. Please try again later.")
	}
	return helper.Message(c, "Job deleted successfully")
}

func toJobResponse(job model.JobModel) dto.JobResponse {
	resp := dto.JobResponse{
		ID:          job.ID,
		UUID:        job.UUID,
		Name:        job.Name,
		Description: job.Description,
		Deadline:    job.Deadline,
		CreatedAt:   job.CreatedAt,
	}
	if job.Customer != nil {
		resp.Customer = &customerDTO.CustomerSummary{
			ID:   job.Customer.ID,
			Name: job.Customer.Name,
		}
	}
	return resp
}

func toQuestionResponses(questions []questionModel.QuestionModel) []questionDTO.QuestionResponse {
	responses := make([]questionDTO.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		resp := questionDTO.QuestionResponse{
			ID:         q.ID,
			Type:       q.Type,
			Text:       q.Text,
			OrderIndex: q.OrderIndex,
			Options:    make([]questionDTO.OptionResponse, 0, len(q.Options)),
		}
		for _, opt := range q.Options {
			resp.Options = append(resp.Options, questionDTO.OptionResponse{ID: opt.ID, Text: opt.Text})
		}
		responses = append(responses, resp)
	}
	return responses
}
