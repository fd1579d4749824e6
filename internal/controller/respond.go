package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/gooodforeal/que-ans-api/internal/apperr"
	"github.com/gooodforeal/que-ans-api/internal/dto"
)

// respond writes a success envelope.
func respond[T any](c *gin.Context, status int, message string, data T) {
	c.JSON(status, dto.Response[T]{Message: message, Data: data})
}

// respondError is the single place where domain errors are mapped to HTTP
// status codes. Handlers never translate errors themselves.
func respondError(c *gin.Context, err error) {
	var nf *apperr.NotFoundError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, dto.Response[any]{Message: nf.Error()})
	case errors.Is(err, apperr.ErrIntegrity):
		c.JSON(http.StatusBadRequest, dto.Response[any]{Message: "Data integrity error"})
	case errors.Is(err, apperr.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.Response[any]{Message: "Database connection error"})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.Response[any]{Message: "Internal server error"})
	}
}

// respondValidation writes a 422 envelope with per-field detail. The message
// concatenates "field: reason" pairs with semicolons.
func respondValidation(c *gin.Context, fieldErrs []dto.FieldError) {
	pairs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		pairs = append(pairs, fe.Field+": "+fe.Message)
	}
	c.JSON(http.StatusUnprocessableEntity, dto.Response[dto.ValidationErrorData]{
		Message: "Validation error: " + strings.Join(pairs, "; "),
		Data:    dto.ValidationErrorData{Errors: fieldErrs},
	})
}

// parsePathID parses an integer path parameter. A non-integer id is a
// validation failure (422), distinct from semantic absence (404). On failure
// the response has already been written.
func parsePathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		respondValidation(c, []dto.FieldError{{Field: name, Message: "must be a positive integer"}})
		return 0, false
	}
	return uint(id), true
}
