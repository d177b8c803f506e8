package utils

import (
	"net/url"

	"github.com/gin-gonic/gin"
)

// flashCookie is the one-shot cookie carrying a message to the next rendered page
const flashCookie = "flash"

// SetFlash stores a message to be displayed by the next rendered view
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(message), 60, "/", "", false, true)
}

// GetFlash reads and clears the pending flash message, if any
func GetFlash(c *gin.Context) string {
	value, err := c.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	// Clear the cookie so the message shows only once
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	message, err := url.QueryUnescape(value)
	if err != nil {
		return ""
	}
	return message
}
