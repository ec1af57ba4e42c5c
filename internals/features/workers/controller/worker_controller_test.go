package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	customerModel "github.com/lgwakano/workflow-api/internals/features/customers/model"
	jobModel "github.com/lgwakano/workflow-api/internals/features/jobs/model"
	workerModel "github.com/lgwakano/workflow-api/internals/features/workers/model"
	workerRoute "github.com/lgwakano/workflow-api/internals/features/workers/route"
)

type assignmentBody struct {
	ID              int    `json:"id"`
	JobID           int    `json:"jobId"`
	Position        string `json:"position"`
	NumberOfWorkers int    `json:"numberOfWorkers"`
	Workers         []struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"workers"`
	Error string `json:"error"`
}

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&customerModel.CustomerModel{},
		&jobModel.JobModel{},
		&workerModel.WorkerAssignmentModel{},
		&workerModel.WorkerModel{},
	))

	app := fiber.New()
	workerRoute.WorkerRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
}

func seedJob(t *testing.T, db *gorm.DB) jobModel.JobModel {
	t.Helper()
	customer := customerModel.CustomerModel{Name: "Acme", Email: "acme@example.com"}
	require.NoError(t, db.Create(&customer).Error)
	job := jobModel.JobModel{Name: "Deck build", CustomerID: customer.ID}
	require.NoError(t, db.Create(&job).Error)
	return job
}

func TestAssignmentLifecycle(t *testing.T) {
	app, db := setupApp(t)
	job := seedJob(t, db)

	resp := doJSON(t, app, fiber.MethodPost, "/worker-assignments", fiber.Map{
		"jobId":           job.ID,
		"position":        "Carpenter",
		"numberOfWorkers": 2,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created assignmentBody
	decode(t, resp, &created)
	require.Equal(t, "Carpenter", created.Position)

	worker := workerModel.WorkerModel{
		WorkerAssignmentID: created.ID,
		Name:               "Sam",
		Email:              "sam@example.com",
	}
	require.NoError(t, db.Create(&worker).Error)

	// Update renames the position and the worker in one call.
	resp = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/worker-assignments/%d", created.ID), fiber.Map{
		"position":        "Lead Carpenter",
		"numberOfWorkers": 3,
		"workers": []fiber.Map{
			{"id": worker.ID, "name": "Sam L", "email": "sam@example.com"},
		},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated assignmentBody
	decode(t, resp, &updated)
	require.Equal(t, "Lead Carpenter", updated.Position)
	require.Equal(t, 3, updated.NumberOfWorkers)
	require.Len(t, updated.Workers, 1)
	require.Equal(t, "Sam L", updated.Workers[0].Name)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/worker-assignments/jobs/%d", job.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var assignments []assignmentBody
	decode(t, resp, &assignments)
	require.Len(t, assignments, 1)
	require.Len(t, assignments[0].Workers, 1)

	// Deleting the assignment takes its workers with it.
	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/worker-assignments/%d", created.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&workerModel.WorkerModel{}).Count(&count).Error)
	require.Zero(t, count)

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/worker-assignments/%d", created.ID), nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAssignmentValidation(t *testing.T) {
	app, _ := setupApp(t)

	resp := doJSON(t, app, fiber.MethodPost, "/worker-assignments", fiber.Map{
		"position": "Carpenter",
	})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/worker-assignments/jobs/zero", nil)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestWorkerCRUDAndFilter(t *testing.T) {
	app, db := setupApp(t)
	job := seedJob(t, db)

	first := workerModel.WorkerAssignmentModel{JobID: job.ID, Position: "Carpenter", NumberOfWorkers: 1}
	second := workerModel.WorkerAssignmentModel{JobID: job.ID, Position: "Painter", NumberOfWorkers: 1}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	resp := doJSON(t, app, fiber.MethodPost, "/workers", fiber.Map{
		"workerAssignmentId": first.ID,
		"name":               "Sam",
		"email":              "sam@example.com",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var sam struct {
		ID int `json:"id"`
	}
	decode(t, resp, &sam)

	resp = doJSON(t, app, fiber.MethodPost, "/workers", fiber.Map{
		"workerAssignmentId": second.ID,
		"name":               "Alex",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// The assignment filter narrows the list to one.
	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/workers?workerAssignmentId=%d", first.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var workers []struct {
		Name string `json:"name"`
	}
	decode(t, resp, &workers)
	require.Len(t, workers, 1)
	require.Equal(t, "Sam", workers[0].Name)

	resp = doJSON(t, app, fiber.MethodGet, "/workers", nil)
	decode(t, resp, &workers)
	require.Len(t, workers, 2)

	resp = doJSON(t, app, fiber.MethodPut, fmt.Sprintf("/workers/%d", sam.ID), fiber.Map{
		"name": "Sam L",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/workers/%d", sam.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/workers/%d", sam.ID), nil)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
