package controller

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "github.com/lgwakano/workflow-api/internals/helpers"
	"github.com/lgwakano/workflow-api/internals/helpers/dberr"

	"github.com/lgwakano/workflow-api/internals/features/workers/dto"
	"github.com/lgwakano/workflow-api/internals/features/workers/model"
)

type WorkerController struct {
	DB *gorm.DB
}

func NewWorkerController(db *gorm.DB) *WorkerController {
	return &WorkerController{DB: db}
}

// GetAll lists workers, optionally filtered by ?workerAssignmentId.
func (ctrl *WorkerController) GetAll(c *fiber.Ctx) error {
	query := ctrl.DB
	if raw := c.Query("workerAssignmentId"); raw != "" {
		assignmentID, err := strconv.Atoi(raw)
		if err != nil || assignmentID <= 0 {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid workerAssignmentId")
		}
		query = query.Where("worker_assignment_id = ?", assignmentID)
	}

	var workers []model.WorkerModel
	if err := query.Find(&workers).Error; err != nil {
		return dberr.Respond(c, err, "worker", "Failed to fetch workers.")
	}
	return c.JSON(workers)
}

func (ctrl *WorkerController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid worker ID")
	}

	var worker model.WorkerModel
	if err := ctrl.DB.First(&worker, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Worker not found.")
		}
		return dberr.Respond(c, err, "worker", "Failed to fetch worker.")
	}
	return c.JSON(worker)
}

func (ctrl *WorkerController) Create(c *fiber.Ctx) error {
	var req dto.WorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	worker := model.WorkerModel{
		WorkerAssignmentID: req.WorkerAssignmentID,
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		DBD:                req.DBD,
	}
	if err := ctrl.DB.Create(&worker).Error; err != nil {
		return dberr.Respond(c, err, "worker", "Failed to create worker.")
	}
	return c.Status(fiber.StatusCreated).JSON(worker)
}

func (ctrl *WorkerController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid worker ID")
	}

	var req dto.WorkerUpdate
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.ID = id
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var worker model.WorkerModel
	if err := ctrl.DB.First(&worker, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Worker not found.")
		}
		return dberr.Respond(c, err, "worker", "Failed to update worker.")
	}

	worker.Name = req.Name
	worker.Email = req.Email
	worker.Phone = req.Phone
	worker.DBD = req.DBD
	if err := ctrl.DB.Save(&worker).Error; err != nil {
		return dberr.Respond(c, err, "worker", "Failed to update worker.")
	}
	return c.JSON(worker)
}

func (ctrl *WorkerController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid worker ID")
	}

	var worker model.WorkerModel
	if err := ctrl.DB.First(&worker, "id = ?", id).Error; err != nil {
		return dberr.Respond(c, err, "worker", "Failed to delete worker.")
	}
	if err := ctrl.DB.Delete(&worker).Error; err != nil {
		return dberr.Respond(c, err, "worker", "Failed to delete worker.")
	}
	return helper.Message(c, "Worker deleted successfully.")
}
