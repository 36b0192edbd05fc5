package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swaupd/OsBlogApp/internal/models"
	"github.com/swaupd/OsBlogApp/internal/session"
)

func TestSession_StartsUnauthenticated(t *testing.T) {
	sess := session.New()
	_, ok := sess.Current()
	assert.False(t, ok)
}

func TestSession_LoginAndCurrent(t *testing.T) {
	sess := session.New()
	sess.Login(models.User{ID: "u-1", Username: "alice"})

	user, ok := sess.Current()
	assert.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	// A later login replaces the current user.
	sess.Login(models.User{ID: "u-2", Username: "bob"})
	user, _ = sess.Current()
	assert.Equal(t, "bob", user.Username)
}

func TestSession_LogoutIsIdempotent(t *testing.T) {
	sess := session.New()
	sess.Login(models.User{ID: "u-1", Username: "alice"})

	sess.Logout()
	_, ok := sess.Current()
	assert.False(t, ok)

	sess.Logout()
	_, ok = sess.Current()
	assert.False(t, ok)
}
