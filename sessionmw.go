package main

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vmxio.com/kana-quiz/internal/kana"
	"vmxio.com/kana-quiz/internal/quiz"
)

const (
	cookieName      = "kq_sid"
	sessionHeader   = "X-Session-Id"
	sessionIDCtxKey = "sessionID"
	secureCtxKey    = "secureCookies"

	// sessionTTL is the cookie lifetime; idle sessions older than this are pruned.
	sessionTTL = 7 * 24 * time.Hour
)

// EnsureSession resolves the session named by the X-Session-Id header or the
// session cookie. Unknown ids are dropped; handlers start a session only when
// they need one, in the mode they need.
func EnsureSession(svc *QuizService, secureCookies bool, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(secureCtxKey, secureCookies)

		id := strings.TrimSpace(c.GetHeader(sessionHeader))
		if id == "" {
			id, _ = c.Cookie(cookieName)
		}
		if id == "" {
			c.Next()
			return
		}

		ok, err := svc.Exists(c.Request.Context(), id)
		if err != nil {
			log.Error("session lookup failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session lookup failed"})
			c.Abort()
			return
		}
		if ok {
			bindSession(c, id)
		}
		c.Next()
	}
}

// openSession returns the request's session id. Without one it starts a
// session in mode and reports created = true along with its state.
func openSession(c *gin.Context, svc *QuizService, mode kana.Mode) (id string, st quiz.State, created bool, err error) {
	if id = sessionID(c); id != "" {
		return id, quiz.State{}, false, nil
	}
	id, st, err = svc.Start(c.Request.Context(), mode)
	if err != nil {
		return "", quiz.State{}, false, err
	}
	bindSession(c, id)
	return id, st, true, nil
}

// bindSession refreshes the cookie and exposes the id to the client.
func bindSession(c *gin.Context, id string) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   c.GetBool(secureCtxKey),
		SameSite: http.SameSiteLaxMode,
	})
	c.Header(sessionHeader, id)
	c.Set(sessionIDCtxKey, id)
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionIDCtxKey)
}
