package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse is the response envelope shared by every endpoint. Business
// rejections travel in this envelope with Success=false rather than as
// transport-level errors.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	IsAdmin *bool       `json:"isAdmin,omitempty"`
}

// SendData replies with a successful envelope carrying a payload.
func SendData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// SendMessage replies with a successful envelope carrying a message only.
func SendMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: message})
}

// SendFailure replies with a well-formed rejection envelope. Used both for
// business-rule rejections and for unexpected faults surfaced with their
// own message text.
func SendFailure(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse{Success: false, Message: message})
}
