package firebaseauth

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// TokenVerifier проверяет ID-токен Firebase
// Реализуется *auth.Client
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
