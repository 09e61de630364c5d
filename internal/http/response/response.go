package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/orbital-nexus-backend/internal/platform/apierr"
)

// ExposeDetails adds the wrapped cause of 5xx errors to the body. Enabled in development only.
var ExposeDetails = false

type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    any                 `json:"data,omitempty"`
	Errors  []apierr.FieldError `json:"errors,omitempty"`
	Details string              `json:"details,omitempty"`
}

func RespondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func RespondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// RespondError maps err onto the envelope using its kind.
func RespondError(c *gin.Context, err error) {
	ae := apierr.From(err)
	if ae == nil {
		ae = apierr.Internal(fmt.Errorf("unknown error"))
	}
	status := StatusFor(ae)
	body := Envelope{Success: false, Message: ae.Error(), Errors: ae.Fields}
	if status >= http.StatusInternalServerError {
		body.Message = "Internal Server Error"
		if ExposeDetails && ae.Err != nil {
			body.Details = ae.Err.Error()
		}
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, body)
}

func StatusFor(ae *apierr.Error) int {
	switch ae.Kind {
	case apierr.KindValidation:
		return http.StatusBadRequest
	case apierr.KindNotFound:
		return http.StatusNotFound
	case apierr.KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// NoRoute answers unmatched paths in the same envelope.
func NoRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, Envelope{
		Success: false,
		Message: fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path),
	})
}
