package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"acenteapi/internal/model"
	"acenteapi/internal/service"
)

// CaseHandler exposes the value-loss case lifecycle over HTTP. Handlers
// stay free of business logic: parse, delegate, map errors.
type CaseHandler struct {
	svc service.CaseService
}

func NewCaseHandler(svc service.CaseService) *CaseHandler {
	return &CaseHandler{svc: svc}
}

// createCaseRequest is the new-case form body.
type createCaseRequest struct {
	Vehicle       model.Vehicle  `json:"vehicle"`
	Driver        model.Driver   `json:"driver"`
	Accident      model.Accident `json:"accident"`
	Client        model.Client   `json:"client"`
	FeePercentage *float64       `json:"fee_percentage,omitempty"`
	LawyerID      *string        `json:"lawyer_id,omitempty"`
}

type assignLawyerRequest struct {
	LawyerID string `json:"lawyer_id"`
}

type advanceStageRequest struct {
	Stage string `json:"stage"`
	Note  string `json:"note,omitempty"`
}

type addExpenseRequest struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Create godoc
// @Summary Open a new value-loss case
// @Tags cases
// @Accept json
// @Produce json
// @Param case body createCaseRequest true "case form"
// @Success 201 {object} model.Case
// @Router /cases [post]
func (h *CaseHandler) Create(c *fiber.Ctx) error {
	var req createCaseRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}

	created, err := h.svc.Create(c.UserContext(), service.CreateCaseInput{
		Vehicle:       req.Vehicle,
		Driver:        req.Driver,
		Accident:      req.Accident,
		Client:        req.Client,
		FeePercentage: req.FeePercentage,
		LawyerID:      req.LawyerID,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// List godoc
// @Summary List cases with limit/offset
// @Tags cases
// @Produce json
// @Param limit query int false "page size" default(10)
// @Param offset query int false "page offset" default(0)
// @Success 200 {object} service.CaseListResult
// @Router /cases [get]
func (h *CaseHandler) List(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_LIMIT", "invalid limit")
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_OFFSET", "invalid offset")
	}

	res, err := h.svc.List(c.UserContext(), limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(res)
}

// Get godoc
// @Summary Get one case
// @Tags cases
// @Produce json
// @Param id path string true "case ID"
// @Success 200 {object} model.Case
// @Router /cases/{id} [get]
func (h *CaseHandler) Get(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	found, err := h.svc.Get(c.UserContext(), id)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(found)
}

// Delete godoc
// @Summary Delete a case
// @Tags cases
// @Param id path string true "case ID"
// @Success 204
// @Router /cases/{id} [delete]
func (h *CaseHandler) Delete(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	if err := h.svc.Remove(c.UserContext(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AssignLawyer godoc
// @Summary Attach a lawyer to a case
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "case ID"
// @Param body body assignLawyerRequest true "lawyer reference"
// @Success 200 {object} model.Case
// @Router /cases/{id}/lawyer [put]
func (h *CaseHandler) AssignLawyer(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	var req assignLawyerRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	updated, err := h.svc.AssignLawyer(c.UserContext(), id, req.LawyerID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(updated)
}

// AdvanceStage godoc
// @Summary Advance a case to its next stage
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "case ID"
// @Param body body advanceStageRequest true "target stage"
// @Success 200 {object} model.Case
// @Router /cases/{id}/stage [post]
func (h *CaseHandler) AdvanceStage(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	var req advanceStageRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	updated, err := h.svc.AdvanceStage(c.UserContext(), id, model.Stage(req.Stage), req.Note)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(updated)
}

// AddExpense godoc
// @Summary Add an expense ledger entry
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "case ID"
// @Param body body addExpenseRequest true "expense"
// @Success 200 {object} model.Case
// @Router /cases/{id}/expenses [post]
func (h *CaseHandler) AddExpense(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	var req addExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	updated, err := h.svc.AddExpense(c.UserContext(), id, req.Label, req.Amount)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(updated)
}

// RemoveExpense godoc
// @Summary Remove an expense ledger entry
// @Tags cases
// @Produce json
// @Param id path string true "case ID"
// @Param expenseId path string true "expense ID"
// @Success 200 {object} model.Case
// @Router /cases/{id}/expenses/{expenseId} [delete]
func (h *CaseHandler) RemoveExpense(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	expenseID, ok := idParam(c, "expenseId")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid expense id format")
	}
	updated, err := h.svc.RemoveExpense(c.UserContext(), id, expenseID)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(updated)
}

// Settle godoc
// @Summary Compute the settlement and close the case
// @Tags cases
// @Accept json
// @Produce json
// @Param id path string true "case ID"
// @Param body body service.SettlementInput true "settlement amounts"
// @Success 200 {object} model.Case
// @Router /cases/{id}/settlement [post]
func (h *CaseHandler) Settle(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	var req service.SettlementInput
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	settled, err := h.svc.Settle(c.UserContext(), id, req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(settled)
}

// idParam validates that the named route parameter is a UUID.
func idParam(c *fiber.Ctx, name string) (string, bool) {
	id := c.Params(name)
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}
