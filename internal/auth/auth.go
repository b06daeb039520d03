// Package auth authenticates per-user routes with HS256 bearer tokens whose
// subject is the user id.
package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Skufu/nutririsk/internal/logger"
)

// LocalUser is the user every request acts as when no secret is configured.
const LocalUser = "local"

const userIDKey = "auth.user_id"

var errMissingSubject = errors.New("token has no subject")

type Claims struct {
	jwt.RegisteredClaims
}

type Authenticator struct {
	secret []byte
	log    *logger.Logger
}

// New returns an Authenticator. An empty secret disables verification.
func New(secret string, log *logger.Logger) *Authenticator {
	if log == nil {
		log = logger.Nop()
	}
	return &Authenticator{secret: []byte(secret), log: log.With("component", "auth")}
}

func (a *Authenticator) Enabled() bool { return len(a.secret) > 0 }

// Issue signs a token for userID that expires after ttl.
func (a *Authenticator) Issue(userID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature and expiry of token and returns its subject.
func (a *Authenticator) Verify(token string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if claims.Subject == "" {
		return "", errMissingSubject
	}
	return claims.Subject, nil
}

// RequireAuth rejects requests without a valid bearer token. When auth is
// disabled every request is attributed to LocalUser.
func (a *Authenticator) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Enabled() {
			c.Set(userIDKey, LocalUser)
			c.Next()
			return
		}
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorized(c, "missing or invalid token")
			return
		}
		userID, err := a.Verify(token)
		if err != nil {
			a.log.Debug("token rejected", "error", err, "path", c.FullPath())
			abortUnauthorized(c, "invalid token")
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

func bearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": msg})
}

// Subject returns the user set by RequireAuth, if any.
func Subject(c *gin.Context) (string, bool) {
	id := c.GetString(userIDKey)
	return id, id != ""
}

// UserID returns the authenticated user, or LocalUser outside RequireAuth.
func UserID(c *gin.Context) string {
	if id, ok := Subject(c); ok {
		return id
	}
	return LocalUser
}
