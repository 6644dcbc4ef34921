package services

import (
	"sort"
	"strings"
	"time"

	"healthclaim-portal/internal/core/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FilterAll disables a filter stage
const FilterAll = "All"

// StatusFilter selects claims by status. Empty or "All" keeps every claim.
type StatusFilter string

// DateWindow selects claims submitted within N days of now
type DateWindow string

const (
	DateAll        DateWindow = FilterAll
	DateLast7Days  DateWindow = "Last7Days"
	DateLast30Days DateWindow = "Last30Days"
	DateLast90Days DateWindow = "Last90Days"
)

// Days returns the window size, or 0 when the window is disabled
func (w DateWindow) Days() int64 {
	switch w {
	case DateLast7Days:
		return 7
	case DateLast30Days:
		return 30
	case DateLast90Days:
		return 90
	}
	return 0
}

// AmountBracket selects claims by claimed amount
type AmountBracket string

const (
	AmountAll       AmountBracket = FilterAll
	AmountUnder500  AmountBracket = "Under500"
	Amount500To1000 AmountBracket = "500to1000"
	AmountOver1000  AmountBracket = "Over1000"
)

// SortKey is the column a result is ordered by
type SortKey string

const (
	SortBySubmissionDate SortKey = "submissionDate"
	SortByClaimedAmount  SortKey = "claimedAmount"
	SortByClaimantName   SortKey = "claimantName"
)

// SortDirection is ascending or descending
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// FilterState is the full query configuration. The zero value filters and sorts nothing.
type FilterState struct {
	Status        StatusFilter
	Date          DateWindow
	Amount        AmountBracket
	Search        string
	SortBy        SortKey
	SortDirection SortDirection
}

// DefaultFilterState shows everything, newest first
func DefaultFilterState() FilterState {
	return FilterState{
		Status:        FilterAll,
		Date:          DateAll,
		Amount:        AmountAll,
		SortBy:        SortBySubmissionDate,
		SortDirection: SortDesc,
	}
}

// ToggleSort flips the direction when key is already active, otherwise sorts ascending by key
func ToggleSort(state FilterState, key SortKey) FilterState {
	if state.SortBy == key {
		if state.SortDirection == SortAsc {
			state.SortDirection = SortDesc
		} else {
			state.SortDirection = SortAsc
		}
		return state
	}
	state.SortBy = key
	state.SortDirection = SortAsc
	return state
}

// Query filters, searches and sorts claims. The input slice is never modified.
func Query(claims []*domain.ClaimRecord, state FilterState, now time.Time) []*domain.ClaimRecord {
	out := make([]*domain.ClaimRecord, 0, len(claims))
	search := strings.ToLower(state.Search)
	for _, c := range claims {
		if !matchStatus(c, state.Status) ||
			!matchDate(c, state.Date, now) ||
			!matchAmount(c, state.Amount) ||
			!matchSearch(c, search) {
			continue
		}
		out = append(out, c)
	}
	sortClaims(out, state.SortBy, state.SortDirection)
	return out
}

func matchStatus(c *domain.ClaimRecord, f StatusFilter) bool {
	if f == "" || f == FilterAll {
		return true
	}
	return string(c.Status) == string(f)
}

// matchDate uses the absolute day difference, so future dates inside the window also pass
func matchDate(c *domain.ClaimRecord, w DateWindow, now time.Time) bool {
	limit := w.Days()
	if limit == 0 {
		return true
	}
	return daysApart(now, c.SubmissionDate) <= limit
}

func daysApart(a, b time.Time) int64 {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	const day = 24 * time.Hour
	days := int64(d / day)
	if d%day != 0 {
		days++
	}
	return days
}

func matchAmount(c *domain.ClaimRecord, b AmountBracket) bool {
	switch b {
	case AmountUnder500:
		return c.ClaimedAmount < 500
	case Amount500To1000:
		return c.ClaimedAmount >= 500 && c.ClaimedAmount <= 1000
	case AmountOver1000:
		return c.ClaimedAmount > 1000
	}
	return true
}

// matchSearch expects an already lower-cased query
func matchSearch(c *domain.ClaimRecord, query string) bool {
	if query == "" {
		return true
	}
	fields := []string{c.ClaimantName, c.ClaimantEmail, c.Description}
	if c.PolicyNumber != nil {
		fields = append(fields, *c.PolicyNumber)
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func sortClaims(claims []*domain.ClaimRecord, key SortKey, dir SortDirection) {
	var cmp func(a, b *domain.ClaimRecord) int
	switch key {
	case SortBySubmissionDate:
		cmp = func(a, b *domain.ClaimRecord) int { return a.SubmissionDate.Compare(b.SubmissionDate) }
	case SortByClaimedAmount:
		cmp = func(a, b *domain.ClaimRecord) int {
			switch {
			case a.ClaimedAmount < b.ClaimedAmount:
				return -1
			case a.ClaimedAmount > b.ClaimedAmount:
				return 1
			}
			return 0
		}
	case SortByClaimantName:
		// Collators keep internal buffers, so each sort gets its own.
		col := collate.New(language.English)
		cmp = func(a, b *domain.ClaimRecord) int { return col.CompareString(a.ClaimantName, b.ClaimantName) }
	default:
		return
	}

	sign := 1
	if dir == SortDesc {
		sign = -1
	}
	sort.SliceStable(claims, func(i, j int) bool {
		return sign*cmp(claims[i], claims[j]) < 0
	})
}

// ParseStatusFilter converts a wire value, empty meaning all
func ParseStatusFilter(raw string) (StatusFilter, error) {
	if raw == "" || raw == FilterAll {
		return FilterAll, nil
	}
	if !domain.ClaimStatus(raw).Valid() {
		return "", domain.NewValidationError("status", "unknown status filter "+raw)
	}
	return StatusFilter(raw), nil
}

// ParseDateWindow converts a wire value, empty meaning all
func ParseDateWindow(raw string) (DateWindow, error) {
	switch w := DateWindow(raw); w {
	case "", DateAll:
		return DateAll, nil
	case DateLast7Days, DateLast30Days, DateLast90Days:
		return w, nil
	}
	return "", domain.NewValidationError("date", "unknown date window "+raw)
}

// ParseAmountBracket converts a wire value, empty meaning all
func ParseAmountBracket(raw string) (AmountBracket, error) {
	switch b := AmountBracket(raw); b {
	case "", AmountAll:
		return AmountAll, nil
	case AmountUnder500, Amount500To1000, AmountOver1000:
		return b, nil
	}
	return "", domain.NewValidationError("amount", "unknown amount bracket "+raw)
}

// ParseSortKey converts a wire value, empty meaning the submission date
func ParseSortKey(raw string) (SortKey, error) {
	switch k := SortKey(raw); k {
	case "":
		return SortBySubmissionDate, nil
	case SortBySubmissionDate, SortByClaimedAmount, SortByClaimantName:
		return k, nil
	}
	return "", domain.NewValidationError("sort_by", "unknown sort key "+raw)
}

// ParseSortDirection converts a wire value, empty meaning descending
func ParseSortDirection(raw string) (SortDirection, error) {
	switch d := SortDirection(strings.ToLower(raw)); d {
	case "":
		return SortDesc, nil
	case SortAsc, SortDesc:
		return d, nil
	}
	return "", domain.NewValidationError("sort_dir", "must be asc or desc")
}
