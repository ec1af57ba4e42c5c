package controller

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/lgwakano/workflow-api/internals/features/customers/dto"
	"github.com/lgwakano/workflow-api/internals/features/customers/model"
	helper "github.com/lgwakano/workflow-api/internals/helpers"
	"github.com/lgwakano/workflow-api/internals/helpers/dberr"
)

var validate = validator.New()

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

func (ctrl *CustomerController) GetAll(c *fiber.Ctx) error {
	var customers []model.CustomerModel
	if err := ctrl.DB.Order("name ASC").Find(&customers).Error; err != nil {
		return dberr.Respond(c, err, "customer", "Failed to fetch all customers.")
	}
	return c.JSON(customers)
}

func (ctrl *CustomerController) GetByID(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid customer ID")
	}

	var customer model.CustomerModel
	if err := ctrl.DB.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, fmt.Sprintf("Customer with id %d not found.", id))
		}
		return dberr.Respond(c, err, "customer", "Failed to fetch customer.")
	}
	return c.JSON(customer)
}

func (ctrl *CustomerController) Create(c *fiber.Ctx) error {
	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	customer := model.CustomerModel{
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		ContactName: req.ContactName,
	}
	if err := ctrl.DB.Create(&customer).Error; err != nil {
		return dberr.Respond(c, err, "customer", "Failed to create customer.")
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

func (ctrl *CustomerController) Update(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid customer ID")
	}

	var req dto.CustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var customer model.CustomerModel
	if err := ctrl.DB.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Customer not found")
		}
		return dberr.Respond(c, err, "customer", "Failed to update customer.")
	}

	customer.Name = req.Name
	customer.Phone = req.Phone
	customer.Email = req.Email
	customer.Address = req.Address
	customer.ContactName = req.ContactName
	if err := ctrl.DB.Save(&customer).Error; err != nil {
		return dberr.Respond(c, err, "customer", "Failed to update customer.")
	}
	return c.JSON(customer)
}

func (ctrl *CustomerController) Delete(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id <= 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid customer ID")
	}

	var customer model.CustomerModel
	if err := ctrl.DB.First(&customer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Customer not found")
		}
		return dberr.Respond(c, err, "customer", "Failed to delete customer.")
	}

	if err := ctrl.DB.Delete(&customer).Error; err != nil {
		return dberr.Respond(c, err, "customer", "Failed to delete customer.")
	}
	return helper.Message(c, "Customer deleted successfully")
}
