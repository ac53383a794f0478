package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const (
	userIDKey      contextKey = "user_id"
	displayNameKey contextKey = "display_name"
)

type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}

type JWTConfig struct {
	SigningKey []byte
	Issuer     string
	Audience   string
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JWTMiddleware authenticates callers with an HS256 bearer token whose
// subject is the user id.
func JWTMiddleware(cfg JWTConfig) gin.HandlerFunc {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}

	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	parser := jwt.NewParser(opts...)

	return func(c *gin.Context) {
		tokenStr, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, "missing or malformed authorization header")

			return
		}

		if len(cfg.SigningKey) == 0 {
			abortUnauthorized(c, "authentication is not configured")

			return
		}

		claims := &Claims{}

		token, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
			return cfg.SigningKey, nil
		})
		if err != nil || !token.Valid || claims.Subject == "" {
			slog.DebugContext(c.Request.Context(), "rejected bearer token",
				slog.Any("error", err),
			)
			abortUnauthorized(c, "invalid token")

			return
		}

		ctx := WithUser(c.Request.Context(), claims.Subject, claims.Name)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func WithUser(ctx context.Context, userID, displayName string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)

	return context.WithValue(ctx, displayNameKey, displayName)
}

func UserIDFromContext(ctx context.Context) string {
	uid, _ := ctx.Value(userIDKey).(string)

	return uid
}

func DisplayNameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(displayNameKey).(string)

	return name
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
		Error:   "unauthorized",
		Message: message,
	})
}
