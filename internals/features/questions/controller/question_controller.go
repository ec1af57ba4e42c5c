package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	jobModel "github.com/lgwakano/workflow-api/internals/features/jobs/model"
	"github.com/lgwakano/workflow-api/internals/features/questions/dto"
	"github.com/lgwakano/workflow-api/internals/features/questions/model"
	helper "github.com/lgwakano/workflow-api/internals/helpers"
	"github.com/lgwakano/workflow-api/internals/helpers/dberr"
)

var validate = validator.New()

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// GetAll returns every question template ordered by display order, options
// in creation order.
func (ctrl *QuestionController) GetAll(c *fiber.Ctx) error {
	var questions []model.QuestionModel
	err := ctrl.DB.Preload("Options", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	}).Order("order_index ASC").Find(&questions).Error
	if err != nil {
		return dberr.Respond(c, err, "question", "Failed to fetch all questions.")
	}

	responses := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		responses = append(responses, toQuestionResponse(q))
	}
	return c.JSON(responses)
}

func (ctrl *QuestionController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var question model.QuestionModel
	err = ctrl.DB.Preload("Options", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	}).First(&question, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Question not found")
	}
	if err != nil {
		return dberr.Respond(c, err, "question", "Failed to fetch question.")
	}

	if c.Query("includeAnswers") == "true" {
		var answers []jobModel.JobAnswerModel
		if err := ctrl.DB.Where("question_id = ?", id).Find(&answers).Error; err != nil {
			return dberr.Respond(c, err, "question", "Failed to fetch question answers.")
		}
		return c.JSON(fiber.Map{
			"question": toQuestionResponse(question),
			"answers":  answers,
		})
	}

	return c.JSON(toQuestionResponse(question))
}

// Create inserts a template with the next display order. Order assignment
// and option creation share one transaction.
func (ctrl *QuestionController) Create(c *fiber.Ctx) error {
	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	question := model.QuestionModel{
		Type: req.Type,
		Text: req.Text,
	}
	for _, opt := range req.Options {
		question.Options = append(question.Options, model.QuestionOptionModel{Text: opt})
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&model.QuestionModel{}).
			Select("COALESCE(MAX(order_index), 0)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		question.OrderIndex = maxOrder + 1
		return tx.Create(&question).Error
	})
	if err != nil {
		return dberr.Respond(c, err, "question", "Failed to create question.")
	}

	return c.Status(fiber.StatusCreated).JSON(toQuestionResponse(question))
}

// Update replaces text, type and the entire option set. Options are dropped
// and recreated rather than diffed, so option ids change on every edit.
func (ctrl *QuestionController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var req dto.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var question model.QuestionModel
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&question, "id = ?", id).Error; err != nil {
			return err
		}

		question.Type = req.Type
		question.Text = req.Text
		question.Options = nil
		if err := tx.Model(&question).Select("type", "text").Updates(&question).Error; err != nil {
			return err
		}

		if err := tx.Where("question_id = ?", id).Delete(&model.QuestionOptionModel{}).Error; err != nil {
			return err
		}
		for _, opt := range req.Options {
			question.Options = append(question.Options, model.QuestionOptionModel{
				QuestionID: id,
				Text:       opt,
			})
		}
		if len(question.Options) == 0 {
			return nil
		}
		return tx.Create(&question.Options).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.Error(c, fiber.StatusNotFound, "Question not found")
	}
	if err != nil {
		return dberr.Respond(c, err, "question", "Failed to update question.")
	}

	return c.JSON(toQuestionResponse(question))
}

// Delete removes a template that nothing references. While any binding or
// answer still points at the question the delete conflicts, matching what a
// raw foreign-key violation would normalize to.
func (ctrl *QuestionController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid question ID")
	}

	var refs int64
	if err := ctrl.DB.Model(&jobModel.JobQuestionModel{}).
		Where("question_id = ?", id).
		Count(&refs).Error; err != nil {
		return dberr.Respond(c, err, "question", "Failed to delete question.")
	}
	if refs == 0 {
		if err := ctrl.DB.Model(&jobModel.JobAnswerModel{}).
			Where("question_id = ?", id).
			Count(&refs).Error; err != nil {
			return dberr.Respond(c, err, "question", "Failed to delete question.")
		}
	}
	if refs > 0 {
		status, message := dberr.Normalize(dberr.KindForeignKey, "question", "")
		return helper.Error(c, status, message)
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var question model.QuestionModel
		if err := tx.First(&question, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", id).Delete(&model.QuestionOptionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&question).Error
	})
	if err != nil {
		return dberr.Respond(c, err, "question", "Failed to delete question.")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func toQuestionResponse(q model.QuestionModel) dto.QuestionResponse {
	resp := dto.QuestionResponse{
		ID:         q.ID,
		Type:       q.Type,
		Text:       q.Text,
		OrderIndex: q.OrderIndex,
		Options:    make([]dto.OptionResponse, 0, len(q.Options)),
	}
	for _, opt := range q.Options {
		resp.Options = append(resp.Options, dto.OptionResponse{ID: opt.ID, Text: opt.Text})
	}
	return resp
}
