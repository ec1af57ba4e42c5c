package seeds

import (
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/lgwakano/workflow-api/internals/constants"
	customerModel "github.com/lgwakano/workflow-api/internals/features/customers/model"
	jobModel "github.com/lgwakano/workflow-api/internals/features/jobs/model"
	jobService "github.com/lgwakano/workflow-api/internals/features/jobs/service"
	questionModel "github.com/lgwakano/workflow-api/internals/features/questions/model"
	userModel "github.com/lgwakano/workflow-api/internals/features/users/model"
	userService "github.com/lgwakano/workflow-api/internals/features/users/service"
	workerModel "github.com/lgwakano/workflow-api/internals/features/workers/model"
)

// Run populates a development database with one account per role, a
// customer with two jobs, the starter question set, and a sample answer.
// Skips itself when users already exist.
func Run(db *gorm.DB) {
	var count int64
	if err := db.Model(&userModel.UserModel{}).Count(&count).Error; err != nil {
		log.Printf("[ERROR] seed precheck failed: %v", err)
		return
	}
	if count > 0 {
		log.Println("[INFO] Seed skipped, users already present.")
		return
	}

	if err := db.Transaction(seed); err != nil {
		log.Printf("[ERROR] seed failed: %v", err)
		return
	}
	log.Println("[INFO] Database seeded.")
}

func seed(tx *gorm.DB) error {
	users := []struct {
		username, password, role string
	}{
		{"john_doe", "hashedpassword123", constants.RoleUser},
		{"admin_user", "adminpassword123", constants.RoleAdmin},
		{"mod_user", "modpassword123", constants.RoleModerator},
	}
	for _, u := range users {
		hashed, err := userService.HashPassword(u.password)
		if err != nil {
			return err
		}
		user := userModel.UserModel{Username: u.username, Password: hashed, Role: u.role}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
	}

	customer := customerModel.CustomerModel{
		Name:        "Customer One",
		Phone:       "123-456-7890",
		Email:       "customer1@example.com",
		Address:     "123 Street Name, City, Country",
		ContactName: "John Doe",
	}
	if err := tx.Create(&customer).Error; err != nil {
		return err
	}

	questions := []questionModel.QuestionModel{
		{
			Type: questionModel.QuestionTypeText,
			Text: "What materials would you like?",
		},
		{
			Type: questionModel.QuestionTypeRadio,
			Text: "Would you prefer a premium option?",
			Options: []questionModel.QuestionOptionModel{
				{Text: "Yes"},
				{Text: "No"},
			},
		},
		{
			Type: questionModel.QuestionTypeCheckbox,
			Text: "Which days suit a site visit?",
			Options: []questionModel.QuestionOptionModel{
				{Text: "Monday"},
				{Text: "Wednesday"},
				{Text: "Friday"},
			},
		},
	}
	for i := range questions {
		questions[i].OrderIndex = i + 1
		if err := tx.Create(&questions[i]).Error; err != nil {
			return err
		}
	}

	jobs := []jobModel.JobModel{
		{Name: "Project Patio XYZ", Description: "Build a new patio in the backyard.", CustomerID: customer.ID},
		{Name: "Job Door 51", Description: "Install new doors for office.", CustomerID: customer.ID},
	}
	for i := range jobs {
		if err := jobService.CreateJobWithQuestionSnapshot(tx, &jobs[i]); err != nil {
			return err
		}
	}

	answer := jobModel.JobAnswerModel{
		JobID:      jobs[1].ID,
		QuestionID: questions[1].ID,
		Answer:     datatypes.JSONSlice[string]{"Yes"},
	}
	if err := tx.Create(&answer).Error; err != nil {
		return err
	}

	assignment := workerModel.WorkerAssignmentModel{
		JobID:           jobs[0].ID,
		Position:        "Carpenter",
		NumberOfWorkers: 2,
	}
	return tx.Create(&assignment).Error
}
