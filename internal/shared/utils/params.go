package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deskline-inc/deskline/internal/shared/errors"
)

// ParseIDParam parses a positive integer ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "ticketId").
// entityName is used in error messages (e.g., "ticket", "comment").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid %s ID", entityName),
			fmt.Sprintf("%s must be a positive integer", paramName),
		)
	}

	return uint(id), nil
}
