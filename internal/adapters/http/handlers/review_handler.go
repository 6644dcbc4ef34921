package handlers

import (
	"strconv"

	"healthclaim-portal/internal/adapters/http/middleware"
	"healthclaim-portal/internal/core/domain"
	"healthclaim-portal/internal/core/services"
	"healthclaim-portal/internal/pkg/pagination"
	"healthclaim-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DefaultPendingQueueSize is the number of pending claims shown on the dashboard
const DefaultPendingQueueSize = 5

// ReviewHandler handles reviewer endpoints
type ReviewHandler struct {
	portal *services.ReviewerPortal
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(portal *services.ReviewerPortal) *ReviewHandler {
	return &ReviewHandler{
		portal: portal,
	}
}

// List lists all claims
// @Summary List claims
// @Description List every claim with filters, search, sorting and pagination (Reviewer only)
// @Tags Review
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Pending, Approved, Rejected or All"
// @Param date query string false "Last7Days, Last30Days, Last90Days or All"
// @Param amount query string false "Under500, 500to1000, Over1000 or All"
// @Param q query string false "Search text"
// @Param sort_by query string false "submissionDate, claimedAmount or claimantName"
// @Param sort_dir query string false "asc or desc"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /reviewer/claims [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	state, err := parseFilterState(c)
	if err != nil {
		return respondError(c, err, "Failed to list claims")
	}

	claims, err := h.portal.ListAll(c.UserContext(), middleware.GetActor(c), state)
	if err != nil {
		return respondError(c, err, "Failed to list claims")
	}

	params := pagination.GetParams(c)
	page := pagination.Slice(claims, params)

	return response.Success(c, "Claims retrieved", pagination.NewResponse(page, params, int64(len(claims))))
}

// Get gets a claim
// @Summary Get claim
// @Description Get a claim by ID (Reviewer only)
// @Tags Review
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Claim ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reviewer/claims/{id} [get]
func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	claim, err := h.portal.Get(c.UserContext(), middleware.GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to get claim")
	}

	return response.Success(c, "Claim retrieved", fiber.Map{
		"claim": claim,
	})
}

// Review applies a decision to a claim
// @Summary Review claim
// @Description Set the status of a claim. An unusable approved amount is recorded as 0 and reported as a warning.
// @Tags Review
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Claim ID"
// @Param body body ReviewClaimRequest true "Decision"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reviewer/claims/{id}/review [put]
func (h *ReviewHandler) Review(c *fiber.Ctx) error {
	var req ReviewClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	decision := services.ReviewDecision{
		Status:           domain.ClaimStatus(req.Status),
		ApprovedAmount:   string(req.ApprovedAmount),
		ReviewerComments: req.ReviewerComments,
	}

	result, err := h.portal.Decide(c.UserContext(), middleware.GetActor(c), c.Params("id"), decision)
	if err != nil {
		return respondError(c, err, "Failed to review claim")
	}

	data := fiber.Map{
		"claim":           result.Claim,
		"previous_status": result.PreviousStatus,
	}
	if result.Warning != nil {
		return response.SuccessWithWarning(c, "Claim reviewed", data, result.Warning.Error())
	}
	return response.Success(c, "Claim reviewed", data)
}

// History lists the review events of a claim
// @Summary Claim history
// @Description List recorded review decisions of a claim, newest first (Reviewer only)
// @Tags Review
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Claim ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reviewer/claims/{id}/history [get]
func (h *ReviewHandler) History(c *fiber.Ctx) error {
	events, err := h.portal.History(c.UserContext(), middleware.GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to get claim history")
	}

	return response.Success(c, "History retrieved", fiber.Map{
		"events": events,
	})
}

// Stats summarizes all claims
// @Summary Claim statistics
// @Description Counts and totals over all claims (Reviewer only)
// @Tags Review
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /reviewer/stats [get]
func (h *ReviewHandler) Stats(c *fiber.Ctx) error {
	summary, err := h.portal.Stats(c.UserContext(), middleware.GetActor(c))
	if err != nil {
		return respondError(c, err, "Failed to compute statistics")
	}

	return response.Success(c, "Statistics retrieved", fiber.Map{
		"summary":             summary,
		"approved_percentage": services.ApprovedPercentage(summary),
	})
}

// Dashboard returns the reviewer dashboard
// @Summary Reviewer dashboard
// @Description Statistics plus the newest pending claims (Reviewer only)
// @Tags Review
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Pending queue size" default(5)
// @Success 200 {object} response.Response
// @Router /reviewer/dashboard [get]
func (h *ReviewHandler) Dashboard(c *fiber.Ctx) error {
	limit, err := strconv.Atoi(c.Query("limit", strconv.Itoa(DefaultPendingQueueSize)))
	if err != nil || limit < 1 {
		limit = DefaultPendingQueueSize
	}

	dashboard, err := h.portal.GetDashboard(c.UserContext(), middleware.GetActor(c), limit)
	if err != nil {
		return respondError(c, err, "Failed to load dashboard")
	}

	return response.Success(c, "Dashboard retrieved", dashboard)
}
