package handlers

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/orbital-nexus-backend/internal/platform/apierr"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/validate"
)

const (
	minAltitudeKm = 150
	maxAltitudeKm = 50000
)

// missionID reads :id as a positive integer.
func missionID(c *gin.Context) (int64, error) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apierr.Validation("Invalid mission ID", apierr.FieldError{Field: "id", Message: "Id must be a number"})
	}
	if id <= 0 {
		return 0, apierr.Validation("Invalid mission ID", apierr.FieldError{Field: "id", Message: "Id must be a positive number"})
	}
	return id, nil
}

func altitudeParam(c *gin.Context) (float64, error) {
	raw := strings.TrimSpace(c.Param("altitude"))
	v, err := strconv.ParseFloat(raw, 64)
	switch {
	case err != nil, math.IsNaN(v), math.IsInf(v, 0):
		return 0, apierr.Validation("Invalid altitude parameter", apierr.FieldError{Field: "altitude", Message: "Altitude must be a number"})
	case v < minAltitudeKm:
		return 0, apierr.Validation("Invalid altitude parameter", apierr.FieldError{Field: "altitude", Message: "Altitude must be at least 150"})
	case v > maxAltitudeKm:
		return 0, apierr.Validation("Invalid altitude parameter", apierr.FieldError{Field: "altitude", Message: "Altitude cannot exceed 50000"})
	}
	return v, nil
}

// bind decodes the JSON body into dst and runs its validate tags.
func bind(c *gin.Context, dst any) error {
	if err := c.ShouldBindJSON(dst); err != nil {
		msg := "Request body must be valid JSON"
		if errors.Is(err, io.EOF) {
			msg = "Request body is required"
		}
		return apierr.Validation("Validation error", apierr.FieldError{Field: "body", Message: msg})
	}
	return validate.Struct(dst)
}
