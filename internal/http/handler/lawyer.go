package handler

import (
	"github.com/gofiber/fiber/v2"

	"acenteapi/internal/service"
)

// LawyerHandler exposes the lawyer directory over HTTP.
type LawyerHandler struct {
	svc service.LawyerService
}

func NewLawyerHandler(svc service.LawyerService) *LawyerHandler {
	return &LawyerHandler{svc: svc}
}

// Create godoc
// @Summary Register a lawyer
// @Tags lawyers
// @Accept json
// @Produce json
// @Param lawyer body service.LawyerInput true "lawyer"
// @Success 201 {object} model.Lawyer
// @Router /lawyers [post]
func (h *LawyerHandler) Create(c *fiber.Ctx) error {
	var req service.LawyerInput
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	created, err := h.svc.Create(c.UserContext(), req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// List godoc
// @Summary List lawyers
// @Tags lawyers
// @Produce json
// @Success 200 {array} model.Lawyer
// @Router /lawyers [get]
func (h *LawyerHandler) List(c *fiber.Ctx) error {
	lawyers, err := h.svc.List(c.UserContext())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(lawyers)
}

// Get godoc
// @Summary Get one lawyer
// @Tags lawyers
// @Produce json
// @Param id path string true "lawyer ID"
// @Success 200 {object} model.Lawyer
// @Router /lawyers/{id} [get]
func (h *LawyerHandler) Get(c *fiber.Ctx) error {
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

// Update godoc
// @Summary Update a lawyer's details
// @Tags lawyers
// @Accept json
// @Produce json
// @Param id path string true "lawyer ID"
// @Param lawyer body service.LawyerInput true "lawyer"
// @Success 200 {object} model.Lawyer
// @Router /lawyers/{id} [put]
func (h *LawyerHandler) Update(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	var req service.LawyerInput
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	updated, err := h.svc.Update(c.UserContext(), id, req)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(updated)
}

// Delete godoc
// @Summary Remove a lawyer
// @Description Fails with 409 when cases still reference the lawyer in a non-closed status.
// @Tags lawyers
// @Param id path string true "lawyer ID"
// @Success 204
// @Router /lawyers/{id} [delete]
func (h *LawyerHandler) Delete(c *fiber.Ctx) error {
	id, ok := idParam(c, "id")
	if !ok {
		return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
	}
	if err := h.svc.Remove(c.UserContext(), id); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
