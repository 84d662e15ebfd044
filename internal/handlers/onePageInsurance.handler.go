package handlers

import (
	"errors"
	"server/internal/app"
	insuranceController "server/internal/controllers/insurance"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

type OnePageInsuranceHandler struct {
	Handler
	controller insuranceController.InsuranceController
}

func NewOnePageInsuranceHandler(app app.App, router fiber.Router) *OnePageInsuranceHandler {
	log := logger.New("handlers").File("onePageInsurance_handler")
	return &OnePageInsuranceHandler{
		controller: *app.InsuranceController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *OnePageInsuranceHandler) Register() {
	records := h.router.Group("/one-page-insurance")
	records.Post("/", h.upsertOnePageInsurance)
	records.Get("/", h.listOnePageInsurance)
	records.Get("/:id<int>", h.getOnePageInsurance)
	records.Delete("/:id<int>", h.deleteOnePageInsurance)
}

func (h *OnePageInsuranceHandler) upsertOnePageInsurance(c *fiber.Ctx) error {
	log := h.log.Function("upsertOnePageInsurance")

	var request UpsertOnePageInsuranceRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse one page insurance request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"detail": "failed to parse one page insurance request"})
	}

	if request.UserEmail == "" || request.ClientName == "" {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"detail": "user_email and client_name are required"})
	}

	record, err := h.controller.UpsertOnePageInsurance(c.Context(), &request)
	if err != nil {
		log.Er("failed to upsert one page insurance", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Database error: failed to upsert one page insurance"})
	}

	return c.JSON(record)
}

func (h *OnePageInsuranceHandler) listOnePageInsurance(c *fiber.Ctx) error {
	log := h.log.Function("listOnePageInsurance")

	params := repositories.ListParams{
		Skip:      c.QueryInt("skip", 0),
		Limit:     c.QueryInt("limit", repositories.DefaultListLimit),
		UserEmail: c.Query("user_email"),
		Search:    c.Query("search"),
	}

	records, err := h.controller.ListOnePageInsurance(c.Context(), params)
	if err != nil {
		log.Er("failed to list one page insurance records", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Database error: failed to list one page insurance records"})
	}

	if records == nil {
		records = []OnePageInsurance{}
	}

	return c.JSON(records)
}

func (h *OnePageInsuranceHandler) getOnePageInsurance(c *fiber.Ctx) error {
	log := h.log.Function("getOnePageInsurance")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"detail": "One page insurance not found"})
	}

	record, err := h.controller.GetOnePageInsuranceByID(c.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"detail": "One page insurance not found"})
	}
	if err != nil {
		log.Er("failed to get one page insurance", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Database error: failed to get one page insurance"})
	}

	return c.JSON(record)
}

func (h *OnePageInsuranceHandler) deleteOnePageInsurance(c *fiber.Ctx) error {
	log := h.log.Function("deleteOnePageInsurance")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"detail": "One page insurance not found"})
	}

	err = h.controller.DeleteOnePageInsurance(c.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"detail": "One page insurance not found"})
	}
	if err != nil {
		log.Er("failed to delete one page insurance", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Database error: failed to delete one page insurance"})
	}

	return c.JSON(fiber.Map{"message": "deleted", "id": id})
}
