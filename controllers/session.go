package controllers

import (
	"encoding/gob"

	"tidytask/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	sessionKeyUserID     = "user_id"
	sessionKeyUserName   = "user_name"
	sessionKeyResetEmail = "reset_email"
)

// FlashMessage is a one-shot notice consumed by the next rendered view.
// Severity is one of "success", "info", "warning", "danger".
type FlashMessage struct {
	Severity string
	Text     string
}

func init() {
	// The cookie store gob-encodes session values.
	gob.Register(FlashMessage{})
}

// flash queues a notice for the next view and persists the session.
func flash(c *gin.Context, severity, text string) {
	session := sessions.Default(c)
	session.AddFlash(FlashMessage{Severity: severity, Text: text})
	_ = session.Save()
}

// consumeFlashes drains the queued notices. Reading flashes mutates the
// session, so it is saved right away; a notice is never shown twice.
func consumeFlashes(c *gin.Context) []FlashMessage {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		_ = session.Save()
	}
	out := make([]FlashMessage, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(FlashMessage); ok {
			out = append(out, f)
		}
	}
	return out
}

// establishSession transitions the client to Authenticated. Only the id and
// display name are held; nothing sensitive is cached in the cookie.
func establishSession(c *gin.Context, user models.User) {
	session := sessions.Default(c)
	session.Set(sessionKeyUserID, user.ID)
	session.Set(sessionKeyUserName, user.Name)
	_ = session.Save()
}

// clearSession transitions to Anonymous. Clearing an already-anonymous
// session is a no-op, not an error.
func clearSession(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	_ = session.Save()
}

// sessionUserID returns the authenticated user id held by the session, if any.
func sessionUserID(c *gin.Context) (int64, bool) {
	session := sessions.Default(c)
	id, ok := session.Get(sessionKeyUserID).(int64)
	if !ok || id <= 0 {
		return 0, false
	}
	return id, true
}
