package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/hiresync/scheduler/internal/scheduling"
	"github.com/hiresync/scheduler/pkg/errors"
	"github.com/hiresync/scheduler/pkg/logger"
)

func NewServer(cfg Config, log logger.Logger, coord coordinator) Server {
	serveLog := log.With("api_http_server")

	fiberCfg := fiber.Config{
		ReadTimeout:             cfg.HTTP.ReadTimeout,
		WriteTimeout:            cfg.HTTP.WriteTimeout,
		IdleTimeout:             cfg.HTTP.IdleTimeout,
		DisableStartupMessage:   true,
		EnableTrustedProxyCheck: true,
		ProxyHeader:             cfg.Proxy.Header,
		TrustedProxies:          cfg.Proxy.Trusted,
	}

	fiberCfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		serveLog.Warn(errors.WrapFail(err, "handle http request"))
		return c.Status(statusFor(err)).JSON(fiber.Map{"status": "ERROR", "message": err.Error()})
	}

	s := &server{
		coord: coord,
		http:  fiber.New(fiberCfg),
		addr:  cfg.HTTP.Addr,
		log:   serveLog,
	}

	s.setupRoutes()

	return s
}

type server struct {
	coord coordinator
	http  *fiber.App
	addr  string
	log   logger.Logger
}

func (s *server) Serve(ctx context.Context) error {
	errCh := make(chan error)
	go func() { errCh <- s.http.Listen(s.addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		return errors.Error("serve context done")
	}
}

func (s *server) Shutdown(ctx context.Context) error {
	return errors.WrapFail(s.http.ShutdownWithContext(ctx), "shutdown http server")
}

func (s *server) setupRoutes() {
	s.http.Post("/interviews", s.handleSchedule)
	s.http.Get("/interviews", s.handleList)
	s.http.Get("/interviews/:id", s.handleGet)
	s.http.Post("/interviews/:id/approve-slots", s.handleApproveSlots)
	s.http.Post("/interviews/:id/confirm", s.handleConfirm)
	s.http.Post("/interviews/:id/reschedule", s.handleReschedule)
	s.http.Post("/interviews/:id/cancel", s.handleCancel)
	s.http.Post("/interviews/:id/complete", s.handleComplete)
}

type scheduleRequest struct {
	CandidateID     string      `json:"candidate_id"`
	InterviewerID   string      `json:"interviewer_id"`
	JobID           string      `json:"job_id"`
	InterviewType   string      `json:"interview_type"`
	RoundNumber     int         `json:"round_number"`
	DurationMinutes int         `json:"duration_minutes"`
	Timezone        string      `json:"timezone"`
	MeetingPlatform string      `json:"meeting_platform"`
	PreferredTimes  []time.Time `json:"preferred_times"`
}

func (s *server) handleSchedule(c *fiber.Ctx) error {
	var req scheduleRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "parse schedule request"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	i, err := s.coord.Propose(c.Context(), scheduling.ProposeRequest{
		CandidateID:     req.CandidateID,
		InterviewerID:   req.InterviewerID,
		JobID:           req.JobID,
		Type:            req.InterviewType,
		Round:           req.RoundNumber,
		DurationMinutes: req.DurationMinutes,
		Timezone:        req.Timezone,
		Platform:        req.MeetingPlatform,
		PreferredTimes:  req.PreferredTimes,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(i)
}

func (s *server) handleList(c *fiber.Ctx) error {
	f := scheduling.ListFilter{
		Status:        scheduling.Status(c.Query("status", "")),
		InterviewerID: c.Query("interviewer_id", ""),
		Offset:        c.QueryInt("offset", 0),
		Limit:         c.QueryInt("limit", 10),
	}

	list, err := s.coord.List(c.Context(), f)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"interviews": list, "count": len(list)})
}

func (s *server) handleGet(c *fiber.Ctx) error {
	i, err := s.coord.Find(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(i)
}

type approveSlotsRequest struct {
	ActorID       string      `json:"actor_id"`
	ApprovedSlots []time.Time `json:"approved_slots"`
}

func (s *server) handleApproveSlots(c *fiber.Ctx) error {
	var req approveSlotsRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "parse approve request"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	i, err := s.coord.ApproveSlots(c.Context(), c.Params("id"), req.ActorID, req.ApprovedSlots)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(i)
}

type confirmRequest struct {
	ActorID      string    `json:"actor_id"`
	SelectedTime time.Time `json:"selected_time"`
}

func (s *server) handleConfirm(c *fiber.Ctx) error {
	var req confirmRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "parse confirm request"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	i, err := s.coord.ConfirmTime(c.Context(), c.Params("id"), req.ActorID, req.SelectedTime)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(i)
}

type rescheduleRequest struct {
	NewTime time.Time `json:"new_time"`
	Reason  string    `json:"reason"`
}

func (s *server) handleReschedule(c *fiber.Ctx) error {
	var req rescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "parse reschedule request"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	i, err := s.coord.Reschedule(c.Context(), c.Params("id"), req.NewTime, req.Reason)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(i)
}

type cancelRequest struct {
	Side string `json:"side"`
}

func (s *server) handleCancel(c *fiber.Ctx) error {
	var req cancelRequest
	if err := c.BodyParser(&req); err != nil {
		s.log.Warn(errors.WrapFail(err, "parse cancel request"))
		return s.sendError(c, http.StatusBadRequest, "bad json")
	}

	side := scheduling.RoleInterviewer
	if req.Side == "candidate" {
		side = scheduling.RoleCandidate
	}

	err := s.coord.Cancel(c.Context(), c.Params("id"), side)
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "OK"})
}

func (s *server) handleComplete(c *fiber.Ctx) error {
	err := s.coord.Complete(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"status": "OK"})
}

func (s *server) sendError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"status": "ERROR", "message": msg})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, scheduling.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, scheduling.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, scheduling.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, scheduling.ErrInvalidSelection):
		return http.StatusBadRequest
	case errors.Is(err, scheduling.ErrProvisioningFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
