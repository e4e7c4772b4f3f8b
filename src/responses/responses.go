package responses

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
//
//	{"code": <http status>, "status": "<STATUS TEXT>", "data": ...}
//
// Errors carry {"error": ["msg", ...]} as data.

func statusText(code int) string {
	return strings.ToUpper(http.StatusText(code))
}

// JSON writes a success payload wrapped in the standard envelope.
func JSON(ctx *gin.Context, code int, data interface{}) {
	ctx.JSON(code, gin.H{
		"code":   code,
		"status": statusText(code),
		"data":   data,
	})
}

// Error writes one or more error messages wrapped in the standard envelope.
// The message list is never empty; the status text stands in when no message
// is given.
func Error(ctx *gin.Context, code int, messages ...string) {
	if len(messages) == 0 {
		messages = []string{statusText(code)}
	}
	ctx.JSON(code, gin.H{
		"code":   code,
		"status": statusText(code),
		"data":   gin.H{"error": messages},
	})
}

// AbortWithError renders the error envelope and stops the handler chain.
func AbortWithError(ctx *gin.Context, code int, messages ...string) {
	Error(ctx, code, messages...)
	ctx.Abort()
}
