package util

import (
	"errors"
	"net/http"

	"github.com/VitorDaynno/Plutus-Service-sub000/internal/apperr"

	"github.com/gin-gonic/gin"
)

// Success writes data with the given HTTP status (200 on reads, 201 on
// creations).
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error writes a {code, message} error body.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"code":    status,
		"message": msg,
	})
}

// Fail translates a business error into its transport response. Error codes
// already are HTTP statuses; anything unclassified is a server error.
func Fail(c *gin.Context, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		Error(c, ae.Code, ae.Message)
		return
	}
	Error(c, http.StatusInternalServerError, "internal error")
}
