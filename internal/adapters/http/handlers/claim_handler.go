package handlers

import (
	"strings"

	"healthclaim-portal/internal/adapters/http/middleware"
	"healthclaim-portal/internal/core/services"
	"healthclaim-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClaimHandler handles claimant endpoints
type ClaimHandler struct {
	portal *services.ClaimantPortal
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(portal *services.ClaimantPortal) *ClaimHandler {
	return &ClaimHandler{
		portal: portal,
	}
}

// Submit submits a new claim
// @Summary Submit claim
// @Description Submit a reimbursement claim as JSON or multipart form. A multipart "document" file contributes only its file name.
// @Tags Claims
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param body body SubmitClaimRequest true "Claim data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /claims [post]
func (h *ClaimHandler) Submit(c *fiber.Ctx) error {
	input, err := parseSubmitInput(c)
	if err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	claim, err := h.portal.Submit(c.UserContext(), middleware.GetActor(c), input)
	if err != nil {
		return respondError(c, err, "Failed to submit claim")
	}

	return response.Created(c, "Claim submitted successfully", fiber.Map{
		"claim": claim,
	})
}

func parseSubmitInput(c *fiber.Ctx) (services.CreateClaimInput, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		input := services.CreateClaimInput{
			ClaimantName:  c.FormValue("claimant_name"),
			ClaimantEmail: c.FormValue("claimant_email"),
			ClaimedAmount: c.FormValue("claimed_amount"),
			Description:   c.FormValue("description"),
			PolicyNumber:  c.FormValue("policy_number"),
		}
		// file contents are not stored, only the name is kept as a reference
		if file, err := c.FormFile("document"); err == nil {
			input.DocumentRef = file.Filename
		}
		return input, nil
	}

	var req SubmitClaimRequest
	if err := c.BodyParser(&req); err != nil {
		return services.CreateClaimInput{}, err
	}
	return services.CreateClaimInput{
		ClaimantName:  req.ClaimantName,
		ClaimantEmail: req.ClaimantEmail,
		ClaimedAmount: string(req.ClaimedAmount),
		Description:   req.Description,
		DocumentRef:   req.DocumentRef,
		PolicyNumber:  req.PolicyNumber,
	}, nil
}

// ListMine lists the caller's claims
// @Summary List my claims
// @Description List the authenticated claimant's claims with filters and sorting
// @Tags Claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param status query string false "Pending, Approved, Rejected or All"
// @Param date query string false "Last7Days, Last30Days, Last90Days or All"
// @Param amount query string false "Under500, 500to1000, Over1000 or All"
// @Param q query string false "Search text"
// @Param sort_by query string false "submissionDate, claimedAmount or claimantName"
// @Param sort_dir query string false "asc or desc"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /claims [get]
func (h *ClaimHandler) ListMine(c *fiber.Ctx) error {
	state, err := parseFilterState(c)
	if err != nil {
		return respondError(c, err, "Failed to list claims")
	}

	claims, err := h.portal.ListOwn(c.UserContext(), middleware.GetActor(c), state)
	if err != nil {
		return respondError(c, err, "Failed to list claims")
	}

	return response.Success(c, "Claims retrieved", fiber.Map{
		"claims": claims,
		"total":  len(claims),
	})
}

// GetMine gets one of the caller's claims
// @Summary Get my claim
// @Description Get a claim owned by the authenticated claimant
// @Tags Claims
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Claim ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /claims/{id} [get]
func (h *ClaimHandler) GetMine(c *fiber.Ctx) error {
	claim, err := h.portal.GetOwn(c.UserContext(), middleware.GetActor(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to get claim")
	}

	return response.Success(c, "Claim retrieved", fiber.Map{
		"claim": claim,
	})
}
