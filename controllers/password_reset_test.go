package controllers_test

import (
	"net/http"
	"net/url"
	"testing"

	"tidytask/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetPasswordRequiresVerifiedEmail(t *testing.T) {
	engine, db := newTestApp(t)
	b := newBrowser(t, engine)

	b.register("Ann", "ann@x.com", "secret")

	var before models.User
	require.NoError(t, db.First(&before).Error)

	w := b.get("/reset-password")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/forgot-password", location(w))

	w = b.post("/reset-password", url.Values{
		"password":         {"newpass"},
		"confirm_password": {"newpass"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/forgot-password", location(w))

	w = b.get("/forgot-password")
	assert.Contains(t, w.Body.String(), "Please verify your email first.")

	var after models.User
	require.NoError(t, db.First(&after).Error)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	engine, _ := newTestApp(t)
	b := newBrowser(t, engine)

	w := b.post("/forgot-password", url.Values{"email": {"nobody@x.com"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No account found for that email.")
}

func TestResetPasswordFlow(t *testing.T) {
	engine, _ := newTestApp(t)
	b := newBrowser(t, engine)

	b.register("Ann", "ann@x.com", "oldpass")

	// email verification is case-insensitive too
	w := b.post("/forgot-password", url.Values{"email": {"  ANN@X.com "}})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/reset-password", location(w))

	w = b.get("/reset-password")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email verified. Set a new password.")

	// a validation failure keeps the marker alive
	w = b.post("/reset-password", url.Values{
		"password":         {"newpass"},
		"confirm_password": {"different"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match.")

	w = b.post("/reset-password", url.Values{
		"password":         {"newpass"},
		"confirm_password": {"newpass"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", location(w))

	w = b.login("ann@x.com", "oldpass")
	assert.Contains(t, w.Body.String(), "Invalid email or password.")

	w = b.login("ann@x.com", "newpass")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", location(w))
}

func TestResetMarkerConsumedOnCompletion(t *testing.T) {
	engine, _ := newTestApp(t)
	b := newBrowser(t, engine)

	b.register("Ann", "ann@x.com", "oldpass")
	b.post("/forgot-password", url.Values{"email": {"ann@x.com"}})
	b.post("/reset-password", url.Values{
		"password":         {"newpass"},
		"confirm_password": {"newpass"},
	})

	// the marker was spent; a replayed completion must bounce to /forgot-password
	w := b.post("/reset-password", url.Values{
		"password":         {"evilpass"},
		"confirm_password": {"evilpass"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/forgot-password", location(w))
}

func TestResetMarkerConsumedWhenUserVanishes(t *testing.T) {
	engine, db := newTestApp(t)
	b := newBrowser(t, engine)

	b.register("Ann", "ann@x.com", "oldpass")
	b.post("/forgot-password", url.Values{"email": {"ann@x.com"}})

	require.NoError(t, db.Delete(&models.User{}, "email = ?", "ann@x.com").Error)

	w := b.post("/reset-password", url.Values{
		"password":         {"newpass"},
		"confirm_password": {"newpass"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/forgot-password", location(w))

	w = b.get("/forgot-password")
	assert.Contains(t, w.Body.String(), "Account not found.")

	// marker is gone even though no password changed
	w = b.post("/reset-password", url.Values{
		"password":         {"newpass"},
		"confirm_password": {"newpass"},
	})
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/forgot-password", location(w))
}
