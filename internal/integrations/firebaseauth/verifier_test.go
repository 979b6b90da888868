package firebaseauth

import (
	"context"
	"errors"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TD-WeddingService/pkg/logger"
)

type stubClient struct {
	token *auth.Token
	err   error
}

func (s stubClient) VerifyIDToken(context.Context, string) (*auth.Token, error) {
	return s.token, s.err
}

func TestVerifier_Verify(t *testing.T) {
	ctx := context.Background()

	t.Run("verified email", func(t *testing.T) {
		v := NewVerifierWithClient(stubClient{token: &auth.Token{
			UID:    "uid-1",
			Claims: map[string]interface{}{"email": "Events@TinyDiner.com", "email_verified": true},
		}}, logger.NewNop())

		identity, err := v.Verify(ctx, "token")

		require.NoError(t, err)
		assert.Equal(t, "uid-1", identity.UID)
		assert.Equal(t, "events@tinydiner.com", identity.Email)
	})

	t.Run("unverified email", func(t *testing.T) {
		v := NewVerifierWithClient(stubClient{token: &auth.Token{
			UID:    "uid-1",
			Claims: map[string]interface{}{"email": "events@tinydiner.com", "email_verified": false},
		}}, logger.NewNop())

		_, err := v.Verify(ctx, "token")

		assert.ErrorIs(t, err, ErrEmailNotVerified)
	})

	t.Run("rejected token", func(t *testing.T) {
		v := NewVerifierWithClient(stubClient{err: errors.New("token expired")}, logger.NewNop())

		_, err := v.Verify(ctx, "token")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("empty token", func(t *testing.T) {
		v := NewVerifierWithClient(stubClient{}, logger.NewNop())

		_, err := v.Verify(ctx, " ")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
