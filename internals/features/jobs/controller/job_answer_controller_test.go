package controller_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	jobModel "github.com/lgwakano/workflow-api/internals/features/jobs/model"
)

type answerBody struct {
	ID         int      `json:"id"`
	JobID      int      `json:"jobId"`
	QuestionID int      `json:"questionId"`
	Answer     []string `json:"answer"`
	Error      string   `json:"error"`
}

func seedJob(t *testing.T, db *gorm.DB) jobModel.JobModel {
	t.Helper()
	customer := seedCustomer(t, db)
	job := jobModel.JobModel{Name: "Deck build", CustomerID: customer.ID}
	require.NoError(t, db.Create(&job).Error)
	return job
}

func TestAnswerScalarNormalization(t *testing.T) {
	app, db := setupApp(t)
	job := seedJob(t, db)
	question := seedQuestion(t, db, 1, "Premium option?", "Yes", "No")

	// A bare string answer is stored as a one-element list.
	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/jobs/%d/answers", job.ID), fiber.Map{
		"questionId": question.ID,
		"answer":     "Yes",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created answerBody
	decode(t, resp, &created)
	require.Equal(t, []string{"Yes"}, created.Answer)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/jobs/%d/answers", job.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var answers []answerBody
	decode(t, resp, &answers)
	require.Len(t, answers, 1)
	require.Equal(t, []string{"Yes"}, answers[0].Answer)
}

func TestAnswerUpdateInPlace(t *testing.T) {
	app, db := setupApp(t)
	job := seedJob(t, db)
	question := seedQuestion(t, db, 1, "Premium option?", "Yes", "No")

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/jobs/%d/answers", job.ID), fiber.Map{
		"questionId": question.ID,
		"answer":     "Yes",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/jobs/%d/answers/%d", job.ID, question.ID), fiber.Map{
		"answer": "No",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated answerBody
	decode(t, resp, &updated)
	require.Equal(t, []string{"No"}, updated.Answer)

	// The update mutated the row rather than appending a new one.
	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/jobs/%d/answers", job.ID), nil)
	var answers []answerBody
	decode(t, resp, &answers)
	require.Len(t, answers, 1)
	require.Equal(t, []string{"No"}, answers[0].Answer)
}

func TestAnswerUpdateWithoutPriorAnswer(t *testing.T) {
	app, db := setupApp(t)
	job := seedJob(t, db)
	question := seedQuestion(t, db, 1, "Anything else?")

	resp := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/jobs/%d/answers/%d", job.ID, question.ID), fiber.Map{
		"answer": "Late answer",
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var got answerBody
	decode(t, resp, &got)
	require.Equal(t, "No answer found for this job and question", got.Error)
}

func TestAnswerCurrentWinsOnDuplicates(t *testing.T) {
	app, db := setupApp(t)
	job := seedJob(t, db)
	question := seedQuestion(t, db, 1, "Work days", "Mon", "Tue", "Wed")

	for _, value := range [][]string{{"Mon"}, {"Mon", "Tue"}} {
		resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/jobs/%d/answers", job.ID), fiber.Map{
			"questionId": question.ID,
			"answer":     value,
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	// Updating touches only the newest row.
	resp := doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/jobs/%d/answers/%d", job.ID, question.ID), fiber.Map{
		"answer": []string{"Tue", "Wed"},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var answers []answerBody
	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/jobs/%d/answers", job.ID), nil)
	decode(t, resp, &answers)
	require.Len(t, answers, 2)
	require.Equal(t, []string{"Mon"}, answers[0].Answer)
	require.Equal(t, []string{"Tue", "Wed"}, answers[1].Answer)
}

func TestAnswerDeleteCurrentRowOnly(t *testing.T) {
	app, db := setupApp(t)
	job := seedJob(t, db)
	question := seedQuestion(t, db, 1, "Premium option?", "Yes", "No")

	for _, value := range []string{"Yes", "No"} {
		resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/jobs/%d/answers", job.ID), fiber.Map{
			"questionId": question.ID,
			"answer":     value,
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/jobs/%d/answers/%d", job.ID, question.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The older row becomes current again.
	var answers []answerBody
	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/jobs/%d/answers", job.ID), nil)
	decode(t, resp, &answers)
	require.Len(t, answers, 1)
	require.Equal(t, []string{"Yes"}, answers[0].Answer)

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/jobs/%d/answers/%d", job.ID, question.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/jobs/%d/answers/%d", job.ID, question.ID), nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var got answerBody
	decode(t, resp, &got)
	require.Equal(t, "The job answer you are trying to delete does not exist.", got.Error)
}

func TestAnswerRoutesResolveJobByUUID(t *testing.T) {
	app, db := setupApp(t)
	job := seedJob(t, db)
	question := seedQuestion(t, db, 1, "Premium option?", "Yes", "No")

	resp := doJSON(t, app, fiber.MethodPost, "/jobs/"+job.UUID+"/answers", fiber.Map{
		"questionId": question.ID,
		"answer":     "Yes",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created answerBody
	decode(t, resp, &created)
	require.Equal(t, job.ID, created.JobID)

	resp = doJSON(t, app, fiber.MethodPost, "/jobs/abc-not-a-uuid-or-int/answers", fiber.Map{
		"questionId": question.ID,
		"answer":     "Yes",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAnswerRoutesRejectUnresolvableJob(t *testing.T) {
	app, db := setupApp(t)
	question := seedQuestion(t, db, 1, "Premium option?", "Yes", "No")

	body := fiber.Map{
		"questionId": question.ID,
		"answer":     "Yes",
	}

	// Neither a malformed reference nor a missing job may reach the store.
	resp := doJSON(t, app, fiber.MethodPost, "/jobs/abc-not-a-uuid-or-int/answers", body)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	var got answerBody
	decode(t, resp, &got)
	require.Equal(t, "Invalid job ID", got.Error)

	resp = doJSON(t, app, fiber.MethodPost, "/jobs/99999/answers", body)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	decode(t, resp, &got)
	require.Equal(t, "Job not found", got.Error)

	var count int64
	require.NoError(t, db.Model(&jobModel.JobAnswerModel{}).Count(&count).Error)
	require.Zero(t, count)

	resp = doJSON(t, app, fiber.MethodGet, "/jobs/99999/answers", nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/jobs/99999/answers/%d", question.ID), fiber.Map{
		"answer": "No",
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	decode(t, resp, &got)
	require.Equal(t, "Job not found", got.Error)

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/jobs/99999/answers/%d", question.ID), nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAnswerCreateRejectsUnknownQuestion(t *testing.T) {
	app, db := setupApp(t)
	job := seedJob(t, db)

	resp := doJSON(t, app, fiber.MethodPost, fmt.Sprintf("/jobs/%d/answers", job.ID), fiber.Map{
		"questionId": 424242,
		"answer":     "Yes",
	})
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	var got answerBody
	decode(t, resp, &got)
	require.Equal(t, "Question not found", got.Error)

	var count int64
	require.NoError(t, db.Model(&jobModel.JobAnswerModel{}).Count(&count).Error)
	require.Zero(t, count)
}
