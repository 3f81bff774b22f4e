package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status     int    `json:"-"`
	Error      string `json:"error"`
	Violations any    `json:"violations,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, violations any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status, Error: msg, Violations: violations}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
