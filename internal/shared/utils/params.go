package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"upravdom/internal/shared/errors"
)

// ParseUintParam parses a numeric path parameter such as the request
// root identifier.
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " is required")
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, errors.NewValidationError("invalid " + entityName)
	}
	return uint(v), nil
}
