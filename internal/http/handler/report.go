package handler

import (
	"github.com/gofiber/fiber/v2"

	"acenteapi/internal/service"
)

// ReportHandler exposes value-loss snapshots and exports.
type ReportHandler struct {
	svc service.ReportService
}

func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

// Snapshot godoc
// @Summary Value-loss module snapshot
// @Tags reports
// @Produce json
// @Success 200 {object} service.ReportSnapshot
// @Router /reports/value-loss [get]
func (h *ReportHandler) Snapshot(c *fiber.Ctx) error {
	snap, err := h.svc.Snapshot(c.UserContext())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(snap)
}

// Export godoc
// @Summary Export a snapshot to object storage
// @Tags reports
// @Produce json
// @Success 201 {object} service.ExportResult
// @Router /reports/value-loss/export [post]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	res, err := h.svc.Export(c.UserContext())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}
