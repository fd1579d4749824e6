package controller

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/gooodforeal/que-ans-api/internal/dto"
)

// Surface JSON field names instead of Go struct field names in violation
// output.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// respondBindingError translates a ShouldBindJSON failure into the 422
// envelope. Malformed JSON or a type mismatch gets a single body-level entry.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrs := make([]dto.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrs = append(fieldErrs, dto.FieldError{Field: fe.Field(), Message: violationMessage(fe)})
		}
		respondValidation(c, fieldErrs)
		return
	}
	respondValidation(c, []dto.FieldError{{Field: "body", Message: "invalid request body"}})
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
