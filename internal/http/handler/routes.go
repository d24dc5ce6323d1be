package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"acenteapi/internal/service"
)

// RegisterRoutes attaches all HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, cases service.CaseService, lawyers service.LawyerService, agency service.AgencyService, reports service.ReportService) {
	// Health endpoint: checks DB connectivity only
	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	})

	// Simple liveness probe
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	caseHandler := NewCaseHandler(cases)
	app.Post("/cases", caseHandler.Create)
	app.Get("/cases", caseHandler.List)
	app.Get("/cases/:id", caseHandler.Get)
	app.Delete("/cases/:id", caseHandler.Delete)
	app.Put("/cases/:id/lawyer", caseHandler.AssignLawyer)
	app.Post("/cases/:id/stage", caseHandler.AdvanceStage)
	app.Post("/cases/:id/expenses", caseHandler.AddExpense)
	app.Delete("/cases/:id/expenses/:expenseId", caseHandler.RemoveExpense)
	app.Post("/cases/:id/settlement", caseHandler.Settle)

	lawyerHandler := NewLawyerHandler(lawyers)
	app.Post("/lawyers", lawyerHandler.Create)
	app.Get("/lawyers", lawyerHandler.List)
	app.Get("/lawyers/:id", lawyerHandler.Get)
	app.Put("/lawyers/:id", lawyerHandler.Update)
	app.Delete("/lawyers/:id", lawyerHandler.Delete)

	agencyHandler := NewAgencyHandler(agency)
	app.Post("/branches", agencyHandler.CreateBranch)
	app.Get("/branches", agencyHandler.ListBranches)
	app.Put("/branches/:id", agencyHandler.UpdateBranch)
	app.Delete("/branches/:id", agencyHandler.DeleteBranch)
	app.Post("/productions", agencyHandler.CreateProduction)
	app.Get("/productions", agencyHandler.ListProductions)
	app.Get("/productions/summary", agencyHandler.Summary)
	app.Put("/productions/:id", agencyHandler.UpdateProduction)
	app.Delete("/productions/:id", agencyHandler.DeleteProduction)
	app.Get("/targets", agencyHandler.Targets)
	app.Put("/targets", agencyHandler.UpdateTargets)
	app.Get("/settings/agency", agencyHandler.AgencySettings)
	app.Put("/settings/agency", agencyHandler.UpdateAgencySettings)
	app.Get("/settings/value-loss", agencyHandler.ValueLossSettings)
	app.Put("/settings/value-loss", agencyHandler.UpdateValueLossSettings)

	reportHandler := NewReportHandler(reports)
	app.Get("/reports/value-loss", reportHandler.Snapshot)
	app.Post("/reports/value-loss/export", reportHandler.Export)
}
