package api

import (
	"errors"
	"net/http"
	"strings"

	"sportbook/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field" example:"price_per_hour"`
	Tag     string `json:"tag" example:"gt"`
	Message string `json:"message" example:"price_per_hour must be greater than 0"`
}

// BindJSON binds and validates the request body. On failure it writes a
// BAD_REQUEST response with per-field details and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	details := FieldErrors(err)
	if len(details) == 0 {
		RespondError(c, apperr.BadRequest("Invalid request body"))
		return false
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error: ErrorBody{
			Kind:    string(apperr.KindBadRequest),
			Message: "validation failed",
			Details: details,
		},
	})
	return false
}

func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fieldName(fe),
			Tag:     fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

// fieldName strips the top-level struct name from the namespace, so nested
// fields read as "TimeSlots[1].EndTime".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	name := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "email":
		return name + " must be a valid email address"
	case "min":
		return name + " must be at least " + fe.Param()
	case "max":
		return name + " must be at most " + fe.Param()
	case "gt":
		return name + " must be greater than " + fe.Param()
	case "gte":
		return name + " must be greater than or equal to " + fe.Param()
	case "lte":
		return name + " must be less than or equal to " + fe.Param()
	case "oneof":
		return name + " must be one of " + fe.Param()
	default:
		return name + " is invalid"
	}
}
