package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/requests"
	"cpu-scheduler-sim/internal/responses"
	"cpu-scheduler-sim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority)
}

// AllAlgorithms runs every policy over the same process list and returns the
// results keyed by policy name.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}
	engine := s.newEngine(request)
	params := s.params(request)

	results := make(map[string]responses.ScheduleResponse, len(schedulers.Policies))
	for _, policy := range schedulers.Policies {
		response, err := engine.Run(policy, params)
		if err != nil {
			return runError(err)
		}
		results[policy.String()] = response
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy schedulers.Policy) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		return err
	}
	response, err := s.newEngine(request).Run(policy, s.params(request))
	if err != nil {
		return runError(err)
	}
	return ctx.JSON(response)
}

// parseRequest decodes and validates the body.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequests, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Debug("invalid request body", "path", ctx.Path(), "error", err)
		return request, fiber.NewError(fiber.StatusBadRequest, "invalid request format")
	}
	if err := request.Validate(); err != nil {
		s.logger.Debug("invalid jobs", "path", ctx.Path(), "error", err)
		return request, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) newEngine(request requests.ScheduleRequests) *schedulers.Engine {
	engine := schedulers.NewEngine(s.logger)
	for _, job := range request.Jobs {
		engine.Register(job)
	}
	return engine
}

// params fills in configured defaults for knobs the request left out.
func (s *SchedulerHandlerImpl) params(request requests.ScheduleRequests) schedulers.Params {
	params := schedulers.Params{
		Quantum:    s.config.RoundRobinTimeQuantum,
		Preemptive: s.config.Preemptive,
	}
	if request.Quantum > 0 {
		params.Quantum = request.Quantum
	}
	if request.Preemptive != nil {
		params.Preemptive = *request.Preemptive
	}
	return params
}

func runError(err error) error {
	if errors.Is(err, schedulers.ErrInvalidQuantum) || errors.Is(err, schedulers.ErrUnknownPolicy) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return err
}
