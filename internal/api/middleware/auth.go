package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rsalazarq/storefront/internal/errors"
	"github.com/rsalazarq/storefront/internal/models"
	"github.com/rsalazarq/storefront/internal/utils/response"
)

type userContextKey string

// UserContextKey carries the authenticated shopper's claims.
const UserContextKey = userContextKey("user")

// GuestEmail is the identity applied to anonymous cart traffic. Checkout
// itself still rejects it; only browsing and cart edits work as a guest.
const GuestEmail = "invitado@lanuevaparada.com"

type AuthMiddleware struct {
	jwtKey []byte
}

func NewAuthMiddleware(jwtKey []byte) *AuthMiddleware {
	return &AuthMiddleware{jwtKey: jwtKey}
}

// Authenticate requires a valid bearer token and puts the claims in context.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))

			return
		}

		claims, err := m.parseBearer(authHeader)
		if err != nil {
			logger.Warn("JWT validation failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)

		requestScopedLogger := logger.With(slog.String("email", claims.Email))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// OptionalAuthenticate parses a bearer token when one is present but lets
// anonymous traffic through. Cart browsing works without an account; the
// claims only gate checkout and order history further in.
func (m *AuthMiddleware) OptionalAuthenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)

			return
		}

		claims, err := m.parseBearer(authHeader)
		if err != nil {
			LoggerFromContext(r.Context()).Warn("Ignoring invalid bearer token", slog.String("error", err.Error()))
			next.ServeHTTP(w, r)

			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func (m *AuthMiddleware) parseBearer(authHeader string) (*models.Claims, error) {

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return nil, errors.UnauthorizedError("Invalid authorization format")
	}

	claims := &models.Claims{}

	token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.BadRequestError("unexpected signing method")
		}

		return m.jwtKey, nil
	})
	if err != nil {
		if appErr, ok := errors.IsAppError(err); ok {
			return nil, appErr
		}

		return nil, errors.UnauthorizedError("Invalid or expired token")
	}

	if !token.Valid {
		return nil, errors.UnauthorizedError("Invalid token")
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.UnauthorizedError("Token expired")
	}

	return claims, nil
}

// ClaimsFromContext returns the shopper's claims, or nil for guests.
func ClaimsFromContext(ctx context.Context) *models.Claims {
	if claims, ok := ctx.Value(UserContextKey).(*models.Claims); ok {
		return claims
	}

	return nil
}

// EmailFromContext resolves the shopper identity for cart keying: the token's
// email when signed in, the guest placeholder otherwise.
func EmailFromContext(ctx context.Context) string {
	if claims := ClaimsFromContext(ctx); claims != nil && claims.Email != "" {
		return claims.Email
	}

	return GuestEmail
}

// BearerToken extracts the raw token for forwarding to backends that do their
// own verification.
func BearerToken(r *http.Request) string {

	authHeader := r.Header.Get("Authorization")

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return ""
	}

	return tokenParts[1]
}
