// Package response writes the flat JSON envelope every endpoint returns.
// Success bodies carry {"success": true} plus endpoint fields; failures
// carry {"success": false, "error": <status>, "message": <stable string>}.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes a 200 success body. Each field of extra is merged flat next to
// the success flag; a success body is never partially populated because
// handlers bail to Fail before reaching it.
func OK(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// Fail writes the failure envelope for the given status code.
func Fail(c *gin.Context, statusCode int) {
	c.JSON(statusCode, failureBody(statusCode))
}

// FailWithFields writes the failure envelope plus a field-to-message map
// describing what failed validation.
func FailWithFields(c *gin.Context, statusCode int, fields map[string]string) {
	body := failureBody(statusCode)
	body["fields"] = fields
	c.JSON(statusCode, body)
}

// AbortFail aborts the middleware chain and writes the failure envelope.
func AbortFail(c *gin.Context, statusCode int) {
	c.AbortWithStatusJSON(statusCode, failureBody(statusCode))
}

func failureBody(statusCode int) gin.H {
	return gin.H{
		"success": false,
		"error":   statusCode,
		"message": Message(statusCode),
	}
}
