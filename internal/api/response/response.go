package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse writes body as the 200 response. Success bodies are
// the bare record or message, not wrapped in an envelope.
func SuccessResponse(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// MessageResponse writes a 200 response with the {"message": ...}
// shape used for plain confirmations.
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
