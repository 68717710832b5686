package http

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
	"github.com/workhoops/workhoops-api/internal/domain/entity"
	apperrors "github.com/workhoops/workhoops-api/pkg/errors"
)

var binder = &echo.DefaultBinder{}

// bindBody decodes the JSON body into req and validates it.
func bindBody(c echo.Context, req interface{}) error {
	if err := binder.BindBody(c, req); err != nil {
		return bindError(err)
	}
	return c.Validate(req)
}

// bindQuery decodes query parameters into q and validates it.
func bindQuery(c echo.Context, q interface{}) error {
	if err := binder.BindQueryParams(c, q); err != nil {
		return bindError(err)
	}
	return c.Validate(q)
}

func bindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if apperrors.As(err, &typeErr) && typeErr.Field != "" {
		return apperrors.Validation(apperrors.FieldError{Field: typeErr.Field, Rule: "type", Param: typeErr.Type.String()})
	}
	return apperrors.NewAppError(apperrors.ErrInvalidArgument, "invalid request", err)
}

// pageParams reads limit and offset and resolves them against policy.
func pageParams(c echo.Context, policy entity.ListPolicy) (entity.Page, error) {
	var limit, offset *int
	b := echo.QueryParamsBinder(c)

	if c.QueryParam("limit") != "" {
		limit = new(int)
		b.Int("limit", limit)
	}
	if c.QueryParam("offset") != "" {
		offset = new(int)
		b.Int("offset", offset)
	}

	if errs := b.BindErrors(); len(errs) > 0 {
		fields := make([]apperrors.FieldError, 0, len(errs))
		for _, err := range errs {
			var bindErr *echo.BindingError
			if apperrors.As(err, &bindErr) {
				fields = append(fields, apperrors.FieldError{Field: bindErr.Field, Rule: "int"})
			}
		}
		return entity.Page{}, apperrors.Validation(fields...)
	}

	return policy.Resolve(limit, offset)
}
