package utils

import (
	"context"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	TokenKey  contextKey = "token"
)

// GetUserIDFromContext returns the authenticated user id set by the auth
// middleware.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return 0, false
	}

	userID, ok := userIDVal.(int64)
	if !ok || userID <= 0 {
		return 0, false
	}

	return userID, true
}

func SetUserContext(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

func GetTokenFromContext(ctx context.Context) (string, bool) {
	tokenVal := ctx.Value(TokenKey)
	if tokenVal == nil {
		return "", false
	}

	token, ok := tokenVal.(string)
	return token, ok
}

func SetTokenContext(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, TokenKey, token)
}
