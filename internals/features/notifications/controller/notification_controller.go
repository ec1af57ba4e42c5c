package controller

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lgwakano/workflow-api/internals/features/notifications/model"
	helper "github.com/lgwakano/workflow-api/internals/helpers"
	"github.com/lgwakano/workflow-api/internals/helpers/dberr"
)

var validate = validator.New()

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GetAll returns only active notifications; dismissed ones stay in the
// table but never surface again.
func (ctrl *NotificationController) GetAll(c *fiber.Ctx) error {
	var notifications []model.NotificationModel
	if err := ctrl.DB.Where("active = ?", true).Order("id DESC").Find(&notifications).Error; err != nil {
		return dberr.Respond(c, err, "notification", "Failed to fetch notifications.")
	}
	return c.JSON(notifications)
}

func (ctrl *NotificationController) Create(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text" validate:"required"`
		Link string `json:"link"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	notification := model.NotificationModel{
		Text:   req.Text,
		Link:   req.Link,
		Active: true,
	}
	if err := ctrl.DB.Create(&notification).Error; err != nil {
		return dberr.Respond(c, err, "notification", "Failed to create notification.")
	}
	return c.Status(fiber.StatusCreated).JSON(notification)
}

// Dismiss soft-deletes by flipping the active flag.
func (ctrl *NotificationController) Dismiss(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid notification ID")
	}

	var notification model.NotificationModel
	if err := ctrl.DB.First(&notification, "id = ?", id).Error; err != nil {
		return dberr.Respond(c, err, "notification", "Failed to dismiss notification.")
	}

	notification.Active = false
	if err := ctrl.DB.Save(&notification).Error; err != nil {
		return dberr.Respond(c, err, "notification", "Failed to dismiss notification.")
	}
	return c.JSON(notification)
}
