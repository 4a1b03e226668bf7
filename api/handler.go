package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"procsim/config"
	"procsim/internal/core"
	"procsim/internal/requests"
	"procsim/internal/responses"
	"procsim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// RegisterRoutes mounts the simulation endpoints under /api/v1.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/fcfs", handler.FirstComeFirstServe)
	v1.Post("/sjf", handler.ShortestJobFirst)
	v1.Post("/rr", handler.RoundRobin)
	v1.Post("/all", handler.AllAlgorithms)
}

func errorResponse(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.Is(err, core.ErrInvalidInput) || errors.Is(err, core.ErrInvalidConfig) {
		status = fiber.StatusBadRequest
	} else if errors.As(err, &fiberErr) {
		status = fiberErr.Code
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}

func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, []core.Process, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return nil, nil, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	processes, err := request.Processes()
	if err != nil {
		return nil, nil, err
	}
	return &request, processes, nil
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	_, processes, err := parseRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	run, err := schedulers.ScheduleFirstComeFirstServe(processes)
	if err != nil {
		return errorResponse(ctx, err)
	}
	response, err := schedulers.GenerateAnalytics("FCFS", run)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	_, processes, err := parseRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	run, err := schedulers.ScheduleShortestJobFirst(processes)
	if err != nil {
		return errorResponse(ctx, err)
	}
	response, err := schedulers.GenerateAnalytics("SJF (Non-Preemptive)", run)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, processes, err := parseRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	quantum, overhead := s.roundRobinParams(request)
	response, err := roundRobinResponse(processes, quantum, overhead)
	if err != nil {
		return errorResponse(ctx, err)
	}
	return ctx.JSON(response)
}

// AllAlgorithms runs every policy on the same process set. The
// schedulers never mutate their input, so the set is shared across the
// group.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, processes, err := parseRequest(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}
	quantum, overhead := s.roundRobinParams(request)

	var fcfs, sjf, rr responses.ScheduleResponse
	var g errgroup.Group
	g.Go(func() error {
		run, err := schedulers.ScheduleFirstComeFirstServe(processes)
		if err != nil {
			return err
		}
		fcfs, err = schedulers.GenerateAnalytics("FCFS", run)
		return err
	})
	g.Go(func() error {
		run, err := schedulers.ScheduleShortestJobFirst(processes)
		if err != nil {
			return err
		}
		sjf, err = schedulers.GenerateAnalytics("SJF (Non-Preemptive)", run)
		return err
	})
	g.Go(func() error {
		var err error
		rr, err = roundRobinResponse(processes, quantum, overhead)
		return err
	})
	if err := g.Wait(); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(fiber.Map{"fcfs": fcfs, "sjf": sjf, "rr": rr})
}

func (s *SchedulerHandlerImpl) roundRobinParams(request *requests.ScheduleRequest) (quantum, overhead int) {
	quantum = request.Quantum
	if quantum == 0 {
		quantum = s.config.RoundRobinTimeQuantum
	}
	overhead = request.ContextSwitchOverhead
	if overhead == 0 {
		overhead = s.config.RoundRobinContextSwitchOverhead
	}
	return quantum, overhead
}

func roundRobinResponse(processes []core.Process, quantum, overhead int) (responses.ScheduleResponse, error) {
	run, err := schedulers.ScheduleRoundRobin(processes, quantum, overhead)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return schedulers.GenerateAnalytics(schedulers.RoundRobinName(quantum), run)
}
