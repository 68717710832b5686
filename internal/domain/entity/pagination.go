package entity

import (
	"strconv"

	apperrors "github.com/workhoops/workhoops-api/pkg/errors"
)

// ListPolicy bounds the page size of a list endpoint.
type ListPolicy struct {
	DefaultLimit int
	MaxLimit     int
}

// List policies per resource.
var (
	OpportunityListPolicy = ListPolicy{DefaultLimit: 20, MaxLimit: 100}
	UserListPolicy        = ListPolicy{DefaultLimit: 20, MaxLimit: 100}
	ArticleListPolicy     = ListPolicy{DefaultLimit: 10, MaxLimit: 50}
)

// Page is a resolved skip/limit window.
type Page struct {
	Limit  int
	Offset int
}

// Resolve applies the policy to optional request values. Out-of-range values
// are rejected, not clamped.
func (p ListPolicy) Resolve(limit, offset *int) (Page, error) {
	page := Page{Limit: p.DefaultLimit}

	var fields []apperrors.FieldError
	if limit != nil {
		switch {
		case *limit < 1:
			fields = append(fields, apperrors.FieldError{Field: "limit", Rule: "min", Param: "1"})
		case *limit > p.MaxLimit:
			fields = append(fields, apperrors.FieldError{Field: "limit", Rule: "max", Param: strconv.Itoa(p.MaxLimit)})
		default:
			page.Limit = *limit
		}
	}
	if offset != nil {
		if *offset < 0 {
			fields = append(fields, apperrors.FieldError{Field: "offset", Rule: "min", Param: "0"})
		} else {
			page.Offset = *offset
		}
	}

	if len(fields) > 0 {
		return Page{}, apperrors.Validation(fields...)
	}
	return page, nil
}
