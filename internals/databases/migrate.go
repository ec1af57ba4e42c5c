package database

import (
	"log"

	"gorm.io/gorm"

	customerModel "github.com/lgwakano/workflow-api/internals/features/customers/model"
	jobModel "github.com/lgwakano/workflow-api/internals/features/jobs/model"
	notificationModel "github.com/lgwakano/workflow-api/internals/features/notifications/model"
	questionModel "github.com/lgwakano/workflow-api/internals/features/questions/model"
	userModel "github.com/lgwakano/workflow-api/internals/features/users/model"
	workerModel "github.com/lgwakano/workflow-api/internals/features/workers/model"
)

// Migrate keeps the schema in sync with the models. Order matters for the
// foreign keys: parents before dependents.
func Migrate(db *gorm.DB) {
	if err := db.AutoMigrate(
		&userModel.UserModel{},
		&customerModel.CustomerModel{},
		&questionModel.QuestionModel{},
		&questionModel.QuestionOptionModel{},
		&jobModel.JobModel{},
		&jobModel.JobQuestionModel{},
		&jobModel.JobAnswerModel{},
		&workerModel.WorkerAssignmentModel{},
		&workerModel.WorkerModel{},
		&notificationModel.NotificationModel{},
	); err != nil {
		log.Fatalf("[ERROR] migration failed: %v", err)
	}
	log.Println("[INFO] Migration complete.")
}
