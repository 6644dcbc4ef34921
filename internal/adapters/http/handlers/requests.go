package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"

	"healthclaim-portal/internal/core/domain"
	"healthclaim-portal/internal/core/services"
	"healthclaim-portal/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AmountInput accepts any JSON value and keeps the raw text. Strings are unquoted, null is empty.
// Amounts are parsed by the services, which decide how to treat bad input.
type AmountInput string

// UnmarshalJSON implements json.Unmarshaler
func (a *AmountInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountInput(s)
	default:
		// numbers keep their literal, other values (bools, objects) fail later parsing
		*a = AmountInput(data)
	}
	return nil
}

// SubmitClaimRequest represents submit claim request
type SubmitClaimRequest struct {
	ClaimantName  string      `json:"claimant_name"`
	ClaimantEmail string      `json:"claimant_email"`
	ClaimedAmount AmountInput `json:"claimed_amount" swaggertype:"string" example:"100.50"`
	Description   string      `json:"description"`
	DocumentRef   string      `json:"document_ref,omitempty"`
	PolicyNumber  string      `json:"policy_number,omitempty"`
}

// ReviewClaimRequest represents review claim request
type ReviewClaimRequest struct {
	Status           string      `json:"status" example:"Approved"`
	ApprovedAmount   AmountInput `json:"approved_amount" swaggertype:"string" example:"250"`
	ReviewerComments string      `json:"reviewer_comments"`
}

// parseFilterState reads the query-string filters shared by the list endpoints
func parseFilterState(c *fiber.Ctx) (services.FilterState, error) {
	state := services.DefaultFilterState()

	var err error
	if state.Status, err = services.ParseStatusFilter(c.Query("status")); err != nil {
		return state, err
	}
	if state.Date, err = services.ParseDateWindow(c.Query("date")); err != nil {
		return state, err
	}
	if state.Amount, err = services.ParseAmountBracket(c.Query("amount")); err != nil {
		return state, err
	}
	if state.SortBy, err = services.ParseSortKey(c.Query("sort_by")); err != nil {
		return state, err
	}
	if state.SortDirection, err = services.ParseSortDirection(c.Query("sort_dir")); err != nil {
		return state, err
	}
	state.Search = c.Query("q")

	return state, nil
}

// respondError maps service errors onto HTTP responses
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return response.BadRequest(c, vErr.Error())
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, "Claim not found")
	case errors.Is(err, domain.ErrUnauthorized):
		return response.Unauthorized(c, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		return response.Forbidden(c, "You don't have permission to access this resource")
	default:
		log.Printf("❌ %s: %v", fallback, err)
		return response.InternalServerError(c, fallback)
	}
}
