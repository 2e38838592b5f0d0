package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wallsco/firmbooks-api/internal/application/dto"
	"github.com/wallsco/firmbooks-api/internal/application/payroll"
	"github.com/wallsco/firmbooks-api/internal/domain/entity"
)

// WorkerHandler maneja las peticiones HTTP de trabajadores y jornales.
type WorkerHandler struct {
	uc *payroll.WorkerUseCase
}

// NewWorkerHandler construye el handler.
func NewWorkerHandler(uc *payroll.WorkerUseCase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

// Create POST /api/workers
func (h *WorkerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateWorkerRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	worker, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(worker)
}

// List GET /api/workers?active=true
func (h *WorkerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.QueryBool("active", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(list)
}

// Get GET /api/workers/:id
func (h *WorkerHandler) Get(c *fiber.Ctx) error {
	worker, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(worker)
}

// Deactivate DELETE /api/workers/:id
func (h *WorkerHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RecordAttendance POST /api/workers/attendance
func (h *WorkerHandler) RecordAttendance(c *fiber.Ctx) error {
	var in dto.RecordAttendanceRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	entry, err := h.uc.RecordAttendance(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toWageEntryResponse(entry))
}

// Pay POST /api/workers/payments
func (h *WorkerHandler) Pay(c *fiber.Ctx) error {
	var in dto.PayWorkerRequest
	if err := parseBody(c, &in); err != nil {
		return err
	}
	entry, err := h.uc.PayWorker(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toWageEntryResponse(entry))
}

// Statement GET /api/workers/:id/statement?from=&to=
func (h *WorkerHandler) Statement(c *fiber.Ctx) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return badDateRange(c)
	}
	lines, err := h.uc.Statement(c.Params("id"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(lines)
}

// Summary GET /api/workers/summary
func (h *WorkerHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

func toWageEntryResponse(e *entity.WageEntry) *dto.WageEntryResponse {
	return &dto.WageEntryResponse{
		ID:             e.ID,
		Date:           dto.FormatDate(e.Date),
		WorkerID:       e.WorkerID,
		AttendanceType: e.AttendanceType,
		WageEarned:     e.WageEarned,
		PaidToday:      e.PaidToday,
		PaymentMode:    e.PaymentMode,
		Notes:          e.Notes,
	}
}
