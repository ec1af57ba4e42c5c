package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/lgwakano/workflow-api/internals/features/jobs/model"
	questionModel "github.com/lgwakano/workflow-api/internals/features/questions/model"
	workerModel "github.com/lgwakano/workflow-api/internals/features/workers/model"
)

// CreateJobWithQuestionSnapshot inserts the job and binds every question
// template that exists right now, inside one transaction. Either the job and
// its full binding snapshot land together or nothing does.
func CreateJobWithQuestionSnapshot(db *gorm.DB, job *model.JobModel) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(job).Error; err != nil {
			return err
		}

		var questions []questionModel.QuestionModel
		if err := tx.Order("order_index ASC").Find(&questions).Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}

		bindings := make([]model.JobQuestionModel, 0, len(questions))
		for _, q := range questions {
			bindings = append(bindings, model.JobQuestionModel{
				JobID:      job.ID,
				QuestionID: q.ID,
			})
		}
		return tx.Create(&bindings).Error
	})
}

// QuestionsForJob returns the question templates bound to a job, each with
// its options, ordered by display order.
func QuestionsForJob(db *gorm.DB, jobID int) ([]questionModel.QuestionModel, error) {
	var bindings []model.JobQuestionModel
	if err := db.Where("job_id = ?", jobID).Find(&bindings).Error; err != nil {
		return nil, err
	}
	if len(bindings) == 0 {
		return []questionModel.QuestionModel{}, nil
	}

	ids := make([]int, 0, len(bindings))
	for _, b := range bindings {
		ids = append(ids, b.QuestionID)
	}

	var questions []questionModel.QuestionModel
	err := db.Preload("Options", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	}).Where("id IN ?", ids).
		Order("order_index ASC").
		Find(&questions).Error
	return questions, err
}

// CurrentAnswer resolves the most recent answer row for a (job, question)
// pair: the row with the highest surrogate key. gorm.ErrRecordNotFound when
// the pair has never been answered.
func CurrentAnswer(db *gorm.DB, jobID, questionID int) (*model.JobAnswerModel, error) {
	var answer model.JobAnswerModel
	err := db.Where("job_id = ? AND question_id = ?", jobID, questionID).
		Order("id DESC").
		First(&answer).Error
	if err != nil {
		return nil, err
	}
	return &answer, nil
}

// DeleteJobCascade removes a job and all of its dependent rows (bindings,
// answers, assignments and their workers) in one transaction.
func DeleteJobCascade(db *gorm.DB, jobID int) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var job model.JobModel
		if err := tx.First(&job, "id = ?", jobID).Error; err != nil {
			return err
		}

		var assignmentIDs []int
		if err := tx.Model(&workerModel.WorkerAssignmentModel{}).
			Where("job_id = ?", jobID).
			Pluck("id", &assignmentIDs).Error; err != nil {
			return err
		}
		if len(assignmentIDs) > 0 {
			if err := tx.Where("worker_assignment_id IN ?", assignmentIDs).
				Delete(&workerModel.WorkerModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", assignmentIDs).
				Delete(&workerModel.WorkerAssignmentModel{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("job_id = ?", jobID).Delete(&model.JobAnswerModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("job_id = ?", jobID).Delete(&model.JobQuestionModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&job).Error
	})
}

// IsNotFound reports whether err is the store's missing-record sentinel.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
