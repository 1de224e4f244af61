package utils

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tosinajy/carrier-code-verify/internal/shared/errors"
)

const FlashCookie = "flash"

// FlashCategory mirrors the alert styles of the admin screens.
type FlashCategory string

const (
	FlashInfo    FlashCategory = "info"
	FlashSuccess FlashCategory = "success"
	FlashWarning FlashCategory = "warning"
	FlashDanger  FlashCategory = "danger"
)

// Flash is a one-shot status message carried across a POST/redirect/GET.
type Flash struct {
	Category FlashCategory `json:"category"`
	Message  string        `json:"message"`
}

// SetFlash stores the message for the next page render.
func SetFlash(c *gin.Context, category FlashCategory, message string) {
	raw, err := json.Marshal(Flash{Category: category, Message: message})
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(FlashCookie, base64.RawURLEncoding.EncodeToString(raw), 60, "/", "", false, true)
}

// PopFlash reads and clears the pending flash message, if any.
func PopFlash(c *gin.Context) *Flash {
	value, err := c.Cookie(FlashCookie)
	if err != nil || value == "" {
		return nil
	}
	c.SetCookie(FlashCookie, "", -1, "/", "", false, true)

	raw, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}
	var f Flash
	if err := json.Unmarshal(raw, &f); err != nil || f.Message == "" {
		return nil
	}
	return &f
}

// RedirectWithFlash answers a form POST with 303 See Other and a flash message.
func RedirectWithFlash(c *gin.Context, location string, category FlashCategory, message string) {
	SetFlash(c, category, message)
	c.Redirect(http.StatusSeeOther, location)
}

// RedirectWithError flashes err and redirects. Selection errors are warnings,
// AppErrors show their message and anything else shows the raw error text.
func RedirectWithError(c *gin.Context, location string, err error) {
	RedirectWithFlash(c, location, FlashCategoryFor(err), FlashMessageFor(err))
}

func FlashCategoryFor(err error) FlashCategory {
	if errors.IsSelectionError(err) {
		return FlashWarning
	}
	return FlashDanger
}

func FlashMessageFor(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		if appErr.Type == errors.ErrorTypeInternal && appErr.Details != "" {
			return "Error: " + appErr.Details
		}
		return appErr.Message
	}
	return "Error: " + err.Error()
}
