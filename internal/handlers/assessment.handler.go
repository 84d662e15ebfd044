package handlers

import (
	"errors"
	"server/internal/app"
	assessmentController "server/internal/controllers/assessment"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

type AssessmentHandler struct {
	Handler
	controller assessmentController.AssessmentController
}

func NewAssessmentHandler(app app.App, router fiber.Router) *AssessmentHandler {
	log := logger.New("handlers").File("assessment_handler")
	return &AssessmentHandler{
		controller: *app.AssessmentController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AssessmentHandler) Register() {
	assessments := h.router.Group("/assessments")
	assessments.Post("/", h.createAssessment)
	assessments.Get("/", h.listAssessments)
	assessments.Get("/:id<int>", h.getAssessment)
}

func (h *AssessmentHandler) createAssessment(c *fiber.Ctx) error {
	log := h.log.Function("createAssessment")

	var request CreateAssessmentRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse assessment request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"detail": "failed to parse assessment request"})
	}

	if request.UserEmail == "" || request.PrimaryName == "" || request.SubmissionData == nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"detail": "user_email, primary_name and submission_data are required"})
	}

	assessment, err := h.controller.CreateAssessment(c.Context(), &request)
	if err != nil {
		log.Er("failed to create assessment", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Database error: failed to create assessment"})
	}

	return c.JSON(assessment)
}

func (h *AssessmentHandler) listAssessments(c *fiber.Ctx) error {
	log := h.log.Function("listAssessments")

	params := repositories.ListParams{
		Skip:      c.QueryInt("skip", 0),
		Limit:     c.QueryInt("limit", repositories.DefaultListLimit),
		UserEmail: c.Query("user_email"),
		Search:    c.Query("search"),
	}

	assessments, err := h.controller.ListAssessments(c.Context(), params)
	if err != nil {
		log.Er("failed to list assessments", err)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Database error: failed to list assessments"})
	}

	if assessments == nil {
		assessments = []Assessment{}
	}

	return c.JSON(assessments)
}

func (h *AssessmentHandler) getAssessment(c *fiber.Ctx) error {
	log := h.log.Function("getAssessment")

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"detail": "Assessment not found"})
	}

	assessment, err := h.controller.GetAssessmentByID(c.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).
			JSON(fiber.Map{"detail": "Assessment not found"})
	}
	if err != nil {
		log.Er("failed to get assessment", err, "id", id)
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"detail": "Database error: failed to get assessment"})
	}

	return c.JSON(assessment)
}
