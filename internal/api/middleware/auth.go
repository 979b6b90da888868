package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/TD-WeddingService/internal/api/handlers"
	"github.com/m04kA/TD-WeddingService/internal/integrations/firebaseauth"
)

const (
	// AdminEmailHeader заголовок с email администратора в dev-режиме
	AdminEmailHeader = "X-Admin-Email"

	msgMissingToken = "missing bearer token"
	msgInvalidToken = "invalid or expired token"
	msgMissingEmail = "missing X-Admin-Email header"
	msgNotAdmin     = "admin access required"
)

type adminKey struct{}

// Admin администратор, выполняющий запрос
type Admin struct {
	UID   string
	Email string
}

// TokenVerifier проверяет ID-токен
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*firebaseauth.Identity, error)
}

// AdminChecker проверяет email по списку администраторов
type AdminChecker interface {
	IsAdmin(email string) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AdminAuth пропускает только запросы с валидным Firebase ID-токеном администратора
// Токен передается в заголовке Authorization: Bearer <token>
func AdminAuth(verifier TokenVerifier, admins AdminChecker, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			identity, err := verifier.Verify(r.Context(), token)
			if err != nil {
				log.Warn("AdminAuth: %s %s - token rejected: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if !admins.IsAdmin(identity.Email) {
				log.Warn("AdminAuth: %s %s - %s is not an admin", r.Method, r.URL.Path, identity.Email)
				handlers.RespondForbidden(w, msgNotAdmin)
				return
			}

			ctx := WithAdmin(r.Context(), Admin{UID: identity.UID, Email: identity.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// HeaderAuth dev-режим без Firebase: email администратора берется из заголовка X-Admin-Email
func HeaderAuth(admins AdminChecker, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := strings.ToLower(strings.TrimSpace(r.Header.Get(AdminEmailHeader)))
			if email == "" {
				handlers.RespondUnauthorized(w, msgMissingEmail)
				return
			}

			if !admins.IsAdmin(email) {
				log.Warn("HeaderAuth: %s %s - %s is not an admin", r.Method, r.URL.Path, email)
				handlers.RespondForbidden(w, msgNotAdmin)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithAdmin(r.Context(), Admin{Email: email})))
		})
	}
}

// WithAdmin кладет администратора в контекст
func WithAdmin(ctx context.Context, admin Admin) context.Context {
	return context.WithValue(ctx, adminKey{}, admin)
}

// GetAdmin достает администратора из контекста
func GetAdmin(ctx context.Context) (Admin, bool) {
	admin, ok := ctx.Value(adminKey{}).(Admin)
	return admin, ok
}

func bearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
