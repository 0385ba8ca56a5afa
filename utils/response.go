package utils

import "github.com/gin-gonic/gin"

// Flash message levels, mirroring the non-blocking notification styles
// shown to the user.
const (
	FlashSuccess = "success"
	FlashError   = "error"
	FlashInfo    = "info"
	FlashWarning = "warning"
)

// FlashMessage is a user-visible, non-fatal notification carried in
// response bodies.
type FlashMessage struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

func Flash(level, text string) FlashMessage {
	return FlashMessage{Level: level, Text: text}
}

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
