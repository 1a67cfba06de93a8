package middleware

import (
	"strings"

	"busline/internal/shared/apperrors"
	"busline/internal/shared/config"
	"busline/internal/shared/session"
	"busline/internal/shared/utils/response"
	"busline/internal/users"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	sessionKey   = "session"
	requestIDKey = "request_id"
)

// JWTAuthWithConfig creates a JWT authentication middleware with config.
// A valid access token must carry user_id, role and the login session id.
func JWTAuthWithConfig(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, apperrors.AuthorizationError{Unauthenticated: true, Msg: "Authorization header is required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, apperrors.AuthorizationError{Unauthenticated: true, Msg: "authorization header format must be Bearer {token}"})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(cfg.JWT.Secret), nil
		})
		if err != nil || !token.Valid {
			abort(c, apperrors.AuthorizationError{Unauthenticated: true, Msg: "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, apperrors.AuthorizationError{Unauthenticated: true, Msg: "invalid token claims"})
			return
		}
		if tokenType, ok := claims["type"]; !ok || tokenType != "access" {
			abort(c, apperrors.AuthorizationError{Unauthenticated: true, Msg: "invalid token type"})
			return
		}

		sc, err := sessionFromClaims(claims)
		if err != nil {
			abort(c, err)
			return
		}

		c.Set(sessionKey, sc)
		c.Set("user_id", sc.UserID.String())
		c.Set("user_email", sc.Email)
		c.Set("user_role", string(sc.Role))
		c.Set("session_id", sc.SessionID)

		c.Next()
	}
}

func sessionFromClaims(claims jwt.MapClaims) (session.Context, error) {
	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return session.Context{}, apperrors.AuthorizationError{Unauthenticated: true, Msg: "invalid user id in token"}
	}
	sid, _ := claims["sid"].(string)
	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)

	sc := session.Context{
		UserID:    userID,
		SessionID: sid,
		Role:      users.Role(role),
		Email:     email,
	}
	if err := sc.Validate(); err != nil {
		return session.Context{}, err
	}
	return sc, nil
}

// RequireAdmin middleware that requires admin role
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, err := CurrentSession(c)
		if err != nil {
			abort(c, err)
			return
		}
		if !sc.IsPrivileged() {
			abort(c, apperrors.AuthorizationError{Msg: "Insufficient permissions"})
			return
		}
		c.Next()
	}
}

// CurrentSession returns the identity stored by JWTAuthWithConfig.
func CurrentSession(c *gin.Context) (session.Context, error) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return session.Context{}, apperrors.AuthorizationError{Unauthenticated: true, Msg: "User not authenticated"}
	}
	sc, ok := v.(session.Context)
	if !ok {
		return session.Context{}, apperrors.AuthorizationError{Unauthenticated: true, Msg: "User not authenticated"}
	}
	return sc, nil
}

// SetSession is used by tests and by handlers mounted behind custom auth.
func SetSession(c *gin.Context, sc session.Context) {
	c.Set(sessionKey, sc)
}

// RequestID ensures every request has an ID for tracing and logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// GetRequestID extracts request_id from gin context when available.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func abort(c *gin.Context, err error) {
	response.RespondError(c, err)
	c.Abort()
}
