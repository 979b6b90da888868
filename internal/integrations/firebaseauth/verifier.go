package firebaseauth

import (
	"context"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Identity проверенный пользователь
type Identity struct {
	UID   string
	Email string
}

// Verifier проверяет ID-токены администраторов
type Verifier struct {
	client TokenVerifier
	log    Logger
}

// NewVerifier инициализирует Firebase Admin SDK по сервисному аккаунту
func NewVerifier(ctx context.Context, projectID, credentialsFile string, log Logger) (*Verifier, error) {
	var cfg *firebase.Config
	if projectID != "" {
		cfg = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, cfg, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: init app: %v", ErrInternal, err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: auth client: %v", ErrInternal, err)
	}

	return NewVerifierWithClient(client, log), nil
}

// NewVerifierWithClient создает проверяющего поверх готового клиента
func NewVerifierWithClient(client TokenVerifier, log Logger) *Verifier {
	return &Verifier{client: client, log: log}
}

// Verify проверяет токен и возвращает uid и email
// Токен без подтвержденного email отклоняется
func (v *Verifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		v.log.Warn("Verify: token rejected: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	email, _ := token.Claims["email"].(string)
	verified, _ := token.Claims["email_verified"].(bool)
	if email == "" || !verified {
		v.log.Warn("Verify: uid=%s has no verified email", token.UID)
		return nil, ErrEmailNotVerified
	}

	return &Identity{
		UID:   token.UID,
		Email: strings.ToLower(email),
	}, nil
}
