// utils/responses.go
package utils

import (
	"math/rand"

	"github.com/gin-gonic/gin"
)

// RespondWithError writes the single generic error payload used across
// all workflows.
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

const randomCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomString returns a short random suffix for order numbers.
func GenerateRandomString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = randomCharset[rand.Intn(len(randomCharset))]
	}
	return string(b)
}
