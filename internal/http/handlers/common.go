package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"travel/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindJSONOrError ensures body is present and parsable. Validation failures
// report the offending fields under "details".
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		respondError(c, http.StatusBadRequest, "empty_body", "request body is required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			respondError(c, http.StatusBadRequest, "validation_error", "invalid request", fieldErrors(verrs))
		case errors.Is(err, io.EOF):
			respondError(c, http.StatusBadRequest, "empty_body", "request body is required", nil)
		default:
			respondError(c, http.StatusBadRequest, "invalid_payload", "malformed request body", err.Error())
		}
		return false
	}
	return true
}

func fieldErrors(verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[jsonFieldName(fe.Field())] = fe.Tag()
	}
	return out
}

var requestFieldNames = map[string]string{
	"Name":        "name",
	"Nights":      "nights",
	"HotelID":     "hotel_id",
	"ActivityIDs": "activity_ids",
	"TransferIDs": "transfer_ids",
}

func jsonFieldName(field string) string {
	if n, ok := requestFieldNames[field]; ok {
		return n
	}
	return field
}

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (domain.ID, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		respondError(c, http.StatusBadRequest, "invalid_"+name, name+" must be a positive integer", nil)
		return 0, false
	}
	return domain.ID(id), true
}

// pathInt parses any integer path parameter, negative values included.
func pathInt(c *gin.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_"+name, name+" must be an integer", nil)
		return 0, false
	}
	return n, true
}
