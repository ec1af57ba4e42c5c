package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "github.com/lgwakano/workflow-api/internals/helpers"
	"github.com/lgwakano/workflow-api/internals/helpers/dberr"

	"github.com/lgwakano/workflow-api/internals/features/workers/dto"
	"github.com/lgwakano/workflow-api/internals/features/workers/model"
)

var validate = validator.New()

type WorkerAssignmentController struct {
	DB *gorm.DB
}

func NewWorkerAssignmentController(db *gorm.DB) *WorkerAssignmentController {
	return &WorkerAssignmentController{DB: db}
}

// GetForJob lists a job's assignments with their workers, paginated.
func (ctrl *WorkerAssignmentController) GetForJob(c *fiber.Ctx) error {
	jobID, err := strconv.Atoi(c.Params("jobId"))
	if err != nil || jobID <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid jobId provided.")
	}

	params := helper.ParsePageParams(c)
	var assignments []model.WorkerAssignmentModel
	err = ctrl.DB.Preload("Workers").
		Where("job_id = ?", jobID).
		Offset(params.Offset()).
		Limit(params.PageSize).
		Find(&assignments).Error
	if err != nil {
		return dberr.Respond(c, err, "worker assignment", "Failed to fetch worker assignments.")
	}
	return c.JSON(assignments)
}

func (ctrl *WorkerAssignmentController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid worker assignment ID")
	}

	var assignment model.WorkerAssignmentModel
	if err := ctrl.DB.Preload("Workers").First(&assignment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Worker assignment not found.")
		}
		return dberr.Respond(c, err, "worker assignment", "Failed to fetch worker assignment.")
	}
	return c.JSON(assignment)
}

func (ctrl *WorkerAssignmentController) Create(c *fiber.Ctx) error {
	var req dto.WorkerAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	assignment := model.WorkerAssignmentModel{
		JobID:           req.JobID,
		Position:        req.Position,
		NumberOfWorkers: req.NumberOfWorkers,
	}
	if err := ctrl.DB.Create(&assignment).Error; err != nil {
		return dberr.Respond(c, err, "worker assignment", "Failed to create worker assignment.")
	}
	return c.Status(fiber.StatusCreated).JSON(assignment)
}

// Update edits the assignment and, when supplied, its existing workers in
// the same transaction.
func (ctrl *WorkerAssignmentController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid worker assignment ID")
	}

	var req dto.WorkerAssignmentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var assignment model.WorkerAssignmentModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&assignment, "id = ?", id).Error; err != nil {
			return err
		}

		assignment.Position = req.Position
		assignment.NumberOfWorkers = req.NumberOfWorkers
		if err := tx.Save(&assignment).Error; err != nil {
			return err
		}

		for _, w := range req.Workers {
			err := tx.Model(&model.WorkerModel{}).
				Where("id = ? AND worker_assignment_id = ?", w.ID, id).
				Updates(map[string]interface{}{
					"name":  w.Name,
					"email": w.Email,
					"phone": w.Phone,
					"dbd":   w.DBD,
				}).Error
			if err != nil {
				return err
			}
		}
		return tx.Preload("Workers").First(&assignment, "id = ?", id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Worker assignment not found.")
	}
	if err != nil {
		return dberr.Respond(c, err, "worker assignment", "Failed to update worker assignment.")
	}
	return c.JSON(assignment)
}

func (ctrl *WorkerAssignmentController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid worker assignment ID")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var assignment model.WorkerAssignmentModel
		if err := tx.First(&assignment, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("worker_assignment_id = ?", id).Delete(&model.WorkerModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&assignment).Error
	})
	if err != nil {
		return dberr.Respond(c, err, "worker assignment", "Failed to delete worker assignment.")
	}
	return helper.Message(c, "Worker assignment deleted successfully.")
}
