package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"acenteapi/internal/model"
	"acenteapi/internal/service"
)

// AgencyHandler exposes the production-tracking module over HTTP:
// branches, production records, targets, settings and the summary.
type AgencyHandler struct {
	svc service.AgencyService
}

func NewAgencyHandler(svc service.AgencyService) *AgencyHandler {
	return &AgencyHandler{svc: svc}
}

type branchRequest struct {
	Name string `json:"name"`
}

// CreateBranch godoc
// @Summary Create an agency branch
// @Tags agency
// @Accept json
// @Produce json
// @Param branch body branchRequest true "branch"
// @Success 201 {object} model.Branch
// @Router /branches [post]
func (h *AgencyHandler) CreateBranch(c *fiber.Ctx) error {
	var req branchRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	created, err := h.svc.CreateBranch(c.UserContext(), req.Name)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// ListBranches godoc
// @Summary List branches
// @Tags agency
// @Produce json
// @Success 200 {array} model.Branch
// @Router /branches [get]
func (h *AgencyHandler) ListBranches(c *fiber.Ctx) error {
	branches, err := h.svc.ListBranches(c.UserContext())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(branches)
}

// UpdateBranch godoc
// @Summary Rename a branch
// @Tags agency
// @Accept json
// @Produce json
// @Param id path string true "branch ID"
// @Param branch body branchRequest true "branch"
// @Success 200 {object} model.Branch
// @Router /branches/{id} [put]
func (h *AgencyHandler) UpdateBranch(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	var req branchRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	updated, err := h.svc.UpdateBranch(c.UserContext(), id, req.Name)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(updated)
}

// DeleteBranch godoc
// @Summary Remove a branch and its productions
// @Tags agency
// @Param id path string true "branch ID"
// @Success 204
// @Router /branches/{id} [delete]
func (h *AgencyHandler) DeleteBranch(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	if err := h.svc.RemoveBranch(c.UserContext(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateProduction godoc
// @Summary Record a premium production
// @Tags agency
// @Accept json
// @Produce json
// @Param production body service.ProductionInput true "production"
// @Success 201 {object} model.Production
// @Router /productions [post]
func (h *AgencyHandler) CreateProduction(c *fiber.Ctx) error {
	var req service.ProductionInput
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	created, err := h.svc.CreateProduction(c.UserContext(), req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// ListProductions godoc
// @Summary List productions
// @Tags agency
// @Produce json
// @Param period query string false "daily, monthly or yearly"
// @Success 200 {array} model.Production
// @Router /productions [get]
func (h *AgencyHandler) ListProductions(c *fiber.Ctx) error {
	productions, err := h.svc.ListProductions(c.UserContext(), c.Query("period"))
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(productions)
}

// UpdateProduction godoc
// @Summary Update a production record
// @Tags agency
// @Accept json
// @Produce json
// @Param id path string true "production ID"
// @Param production body service.ProductionInput true "production"
// @Success 200 {object} model.Production
// @Router /productions/{id} [put]
func (h *AgencyHandler) UpdateProduction(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	var req service.ProductionInput
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	updated, err := h.svc.UpdateProduction(c.UserContext(), id, req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(updated)
}

// DeleteProduction godoc
// @Summary Remove a production record
// @Tags agency
// @Param id path string true "production ID"
// @Success 204
// @Router /productions/{id} [delete]
func (h *AgencyHandler) DeleteProduction(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	if err := h.svc.RemoveProduction(c.UserContext(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary Production scoreboard for a branch
// @Tags agency
// @Produce json
// @Param branch query string false "branch ID or all" default(all)
// @Param step query int false "target step level" default(1)
// @Success 200 {object} service.ProductionSummary
// @Router /productions/summary [get]
func (h *AgencyHandler) Summary(c *fiber.Ctx) error {
	step, err := strconv.Atoi(c.Query("step", "1"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_STEP", "invalid step")
	}
	summary, err := h.svc.Summary(c.UserContext(), c.Query("branch", "all"), step)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(summary)
}

// Targets godoc
// @Summary Get yearly production targets
// @Tags agency
// @Produce json
// @Success 200 {object} model.Targets
// @Router /targets [get]
func (h *AgencyHandler) Targets(c *fiber.Ctx) error {
	targets, err := h.svc.Targets(c.UserContext())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(targets)
}

// UpdateTargets godoc
// @Summary Replace the yearly production targets
// @Tags agency
// @Accept json
// @Produce json
// @Param targets body model.Targets true "targets"
// @Success 200 {object} model.Targets
// @Router /targets [put]
func (h *AgencyHandler) UpdateTargets(c *fiber.Ctx) error {
	var req model.Targets
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	if err := h.svc.UpdateTargets(c.UserContext(), req); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(req)
}

// AgencySettings godoc
// @Summary Get agency settings
// @Tags agency
// @Produce json
// @Success 200 {object} model.AgencySettings
// @Router /settings/agency [get]
func (h *AgencyHandler) AgencySettings(c *fiber.Ctx) error {
	settings, err := h.svc.AgencySettings(c.UserContext())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(settings)
}

// UpdateAgencySettings godoc
// @Summary Replace agency settings
// @Tags agency
// @Accept json
// @Produce json
// @Param settings body model.AgencySettings true "settings"
// @Success 200 {object} model.AgencySettings
// @Router /settings/agency [put]
func (h *AgencyHandler) UpdateAgencySettings(c *fiber.Ctx) error {
	var req model.AgencySettings
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	if err := h.svc.UpdateAgencySettings(c.UserContext(), req); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(req)
}

// ValueLossSettings godoc
// @Summary Get value-loss module settings
// @Tags agency
// @Produce json
// @Success 200 {object} model.ValueLossSettings
// @Router /settings/value-loss [get]
func (h *AgencyHandler) ValueLossSettings(c *fiber.Ctx) error {
	settings, err := h.svc.ValueLossSettings(c.UserContext())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(settings)
}

// UpdateValueLossSettings godoc
// @Summary Replace value-loss module settings
// @Tags agency
// @Accept json
// @Produce json
// @Param settings body model.ValueLossSettings true "settings"
// @Success 200 {object} model.ValueLossSettings
// @Router /settings/value-loss [put]
func (h *AgencyHandler) UpdateValueLossSettings(c *fiber.Ctx) error {
	var req model.ValueLossSettings
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	if err := h.svc.UpdateValueLossSettings(c.UserContext(), req); err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(req)
}
