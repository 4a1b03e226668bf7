package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procsim/config"
	"procsim/internal/responses"
)

func newTestApp() *fiber.App {
	app := fiber.New()
	handler := NewSchedulerHandlerImpl(&config.SchedulerConfig{
		Port:                  9095,
		RoundRobinTimeQuantum: 2,
	})
	RegisterRoutes(app, handler)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestFirstComeFirstServeEndpoint(t *testing.T) {
	app := newTestApp()
	resp := postJSON(t, app, "/api/v1/fcfs",
		`{"jobs":[{"pid":"P1","arrival":0,"burst":5},{"pid":"P2","arrival":1,"burst":3},{"pid":"P3","arrival":2,"burst":8}]}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response responses.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, "FCFS", response.Algorithm)
	assert.Equal(t, 16, response.TotalTime)
	require.Len(t, response.Timeline, 3)
	assert.Equal(t, "P1", response.Timeline[0].Occupant)
	require.Len(t, response.Details, 3)
	assert.Equal(t, 4, response.Details[1].WaitingTime)
}

func TestRoundRobinEndpointUsesConfiguredQuantum(t *testing.T) {
	app := newTestApp()
	resp := postJSON(t, app, "/api/v1/rr",
		`{"jobs":[{"pid":"P1","arrival":0,"burst":5},{"pid":"P2","arrival":1,"burst":3}]}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response responses.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&response))
	assert.Equal(t, "Round Robin (q=2)", response.Algorithm)
	require.Len(t, response.Timeline, 5)
	assert.Equal(t, 8, response.TotalTime)
}

func TestRoundRobinEndpointRejectsBadQuantum(t *testing.T) {
	app := newTestApp()
	resp := postJSON(t, app, "/api/v1/rr",
		`{"quantum":-1,"jobs":[{"pid":"P1","arrival":0,"burst":5}]}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEndpointsRejectEmptyJobs(t *testing.T) {
	app := newTestApp()
	for _, path := range []string{"/api/v1/fcfs", "/api/v1/sjf", "/api/v1/rr", "/api/v1/all"} {
		resp := postJSON(t, app, path, `{"jobs":[]}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestAllAlgorithmsEndpoint(t *testing.T) {
	app := newTestApp()
	resp := postJSON(t, app, "/api/v1/all",
		`{"quantum":2,"jobs":[{"pid":"P1","arrival":0,"burst":5},{"pid":"P2","arrival":1,"burst":3}]}`)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var combined map[string]responses.ScheduleResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&combined))
	require.Len(t, combined, 3)
	assert.Equal(t, "FCFS", combined["fcfs"].Algorithm)
	assert.Equal(t, "SJF (Non-Preemptive)", combined["sjf"].Algorithm)
	assert.Equal(t, "Round Robin (q=2)", combined["rr"].Algorithm)
	// same input, same makespan for non-idle workloads
	assert.Equal(t, 8, combined["fcfs"].TotalTime)
	assert.Equal(t, 8, combined["rr"].TotalTime)
}
