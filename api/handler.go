package api

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"cpusched/config"
	"cpusched/internal/requests"
	"cpusched/internal/responses"
	"cpusched/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// parseRequest decodes and validates the request body. A nil request with a
// nil error never occurs; callers bail out when err != nil after the error
// response has been written.
func parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
		return nil, err
	}
	if err := request.Validate(); err != nil {
		ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
		return nil, err
	}
	return &request, nil
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, request *requests.ScheduleRequest, scheduler schedulers.Scheduler) error {
	result := scheduler.Schedule(request.Processes())
	log.Println("scheduled", len(request.Jobs), "jobs with", scheduler.Name())
	return ctx.JSON(responses.NewScheduleResponse(scheduler.Name(), result))
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return nil
	}
	return s.run(ctx, request, schedulers.FirstComeFirstServe{})
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return nil
	}
	return s.run(ctx, request, schedulers.ShortestJobFirst{})
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return nil
	}
	return s.run(ctx, request, schedulers.ShortestRemainingTimeFirst{})
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return nil
	}
	return s.run(ctx, request, schedulers.RoundRobin{TimeQuantum: s.timeQuantum(request)})
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return nil
	}
	return s.run(ctx, request, schedulers.Priority{})
}

// AllAlgorithms runs every policy on the same input and returns the results
// keyed by algorithm name, for side-by-side comparison.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return nil
	}

	all := []schedulers.Scheduler{
		schedulers.FirstComeFirstServe{},
		schedulers.ShortestJobFirst{},
		schedulers.ShortestRemainingTimeFirst{},
		schedulers.RoundRobin{TimeQuantum: s.timeQuantum(request)},
		schedulers.Priority{},
	}

	comparison := make(map[string]responses.ScheduleResponse, len(all))
	for _, scheduler := range all {
		result := scheduler.Schedule(request.Processes())
		comparison[scheduler.Name()] = responses.NewScheduleResponse(scheduler.Name(), result)
	}
	log.Println("scheduled", len(request.Jobs), "jobs with all algorithms")
	return ctx.JSON(comparison)
}

func (s *SchedulerHandlerImpl) timeQuantum(request *requests.ScheduleRequest) int {
	if request.TimeQuantum > 0 {
		return request.TimeQuantum
	}
	return s.config.RoundRobinTimeQuantum
}
