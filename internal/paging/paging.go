package paging

import (
	"errors"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/catalog-api/internal/domain"
)

// Direction is the sort direction of a listing.
type Direction string

// Supported sort directions.
const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Defaults applied when the query string omits a parameter.
const (
	DefaultLimit        = 10
	DefaultMaxLimit     = 100
	DefaultOrderByField = "id"
	DefaultDirection    = Asc
)

// Query parameter names.
const (
	ParamCursor           = "cursor"
	ParamLimit            = "limit"
	ParamOrderByField     = "orderByField"
	ParamOrderByDirection = "orderByDirection"
)

// PageRequest is a normalized list request.
type PageRequest struct {
	// Cursor is the id of the record the page starts after. Nil means the
	// first page.
	Cursor           *int64
	Limit            int
	OrderByField     string
	OrderByDirection Direction
}

// pageQuery declares the accepted shape of the list query string. Limit and
// OrderByDirection are coerced rather than rejected, so they carry no tags.
type pageQuery struct {
	Cursor           string `validate:"omitempty,number,max=19"`
	Limit            string
	OrderByField     string `validate:"omitempty,max=63"`
	OrderByDirection string
}

// Resolver converts raw query parameters into PageRequests.
// It is safe for concurrent use.
type Resolver struct {
	defaultLimit int
	maxLimit     int
	validate     *validator.Validate
}

// NewResolver creates a Resolver. Non-positive arguments fall back to
// DefaultLimit and DefaultMaxLimit, and defaultLimit is capped at maxLimit.
func NewResolver(defaultLimit, maxLimit int) *Resolver {
	if maxLimit <= 0 {
		maxLimit = DefaultMaxLimit
	}
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}

	return &Resolver{
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		validate:     validator.New(),
	}
}

// Resolve validates q and returns the normalized PageRequest. sortable is the
// allow-list of columns the caller may order by; it must contain
// DefaultOrderByField.
//
// Missing parameters never fail. A cursor that is not a non-negative integer
// id, or an orderByField outside sortable, yields a *domain.ValidationError.
// Limits are clamped to [1, max]; unknown directions fall back to asc.
func (r *Resolver) Resolve(q url.Values, sortable []string) (PageRequest, error) {
	raw := pageQuery{
		Cursor:           strings.TrimSpace(q.Get(ParamCursor)),
		Limit:            strings.TrimSpace(q.Get(ParamLimit)),
		OrderByField:     strings.TrimSpace(q.Get(ParamOrderByField)),
		OrderByDirection: strings.TrimSpace(q.Get(ParamOrderByDirection)),
	}

	if err := r.validate.Struct(raw); err != nil {
		return PageRequest{}, toValidationError(err)
	}

	page := PageRequest{
		Limit:            r.coerceLimit(raw.Limit),
		OrderByField:     DefaultOrderByField,
		OrderByDirection: coerceDirection(raw.OrderByDirection),
	}

	if raw.Cursor != "" {
		id, err := strconv.ParseInt(raw.Cursor, 10, 64)
		if err != nil {
			return PageRequest{}, domain.NewValidationError(ParamCursor, "must be a record id", domain.ErrInvalidID)
		}
		page.Cursor = &id
	}

	if raw.OrderByField != "" {
		if err := r.validate.Var(raw.OrderByField, "oneof="+strings.Join(sortable, " ")); err != nil {
			return PageRequest{}, NewSortFieldError(sortable)
		}
		page.OrderByField = raw.OrderByField
	}

	return page, nil
}

// coerceLimit applies the clamp policy: absent means the default, anything
// numeric is truncated and clamped to [1, max], anything else becomes 1.
func (r *Resolver) coerceLimit(raw string) int {
	if raw == "" {
		return r.defaultLimit
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || math.IsNaN(f) {
			return 1
		}
		switch {
		case f >= float64(r.maxLimit):
			return r.maxLimit
		case f < 1:
			return 1
		}
		n = int(f)
	}

	return min(max(n, 1), r.maxLimit)
}

// coerceDirection matches raw exactly; "DESC" is not a known direction.
func coerceDirection(raw string) Direction {
	switch Direction(raw) {
	case Desc:
		return Desc
	default:
		return DefaultDirection
	}
}

// NewSortFieldError reports an orderByField outside sortable.
func NewSortFieldError(sortable []string) error {
	return domain.NewValidationError(
		ParamOrderByField,
		fmt.Sprintf("must be one of: %s", strings.Join(sortable, ", ")),
		nil,
	)
}

// IsSortable reports whether field is in sortable.
func IsSortable(field string, sortable []string) bool {
	return slices.Contains(sortable, field)
}

func toValidationError(err error) error {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) || len(vErrs) == 0 {
		return domain.NewValidationError("", "invalid pagination parameters", err)
	}

	switch vErrs[0].Field() {
	case "Cursor":
		return domain.NewValidationError(ParamCursor, "must be a record id", domain.ErrInvalidID)
	case "OrderByField":
		return domain.NewValidationError(ParamOrderByField, "is too long", nil)
	default:
		return domain.NewValidationError(vErrs[0].Field(), "is invalid", nil)
	}
}
