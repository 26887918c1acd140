package auth

import (
	"strings"
	"team-chat/errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MyPasswordIsTr0pSure!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	match, err = ComparePassword("WrongPassword", hash)
	req.NoError(err)
	req.False(match)
}

func TestComparePassword_MalformedHash(t *testing.T) {
	req := require.New(t)

	_, err := ComparePassword("whatever", "$bcrypt$nope")
	req.ErrorIs(err, errors.ErrInvalidHash)

	_, err = ComparePassword("whatever", "$argon2id$v=19$m=x,t=1,p=1$AAAA$AAAA")
	req.ErrorIs(err, errors.ErrInvalidHash)
}

func TestRegistrationValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{"Valid request", RegisterRequest{"Alice", "test@example.com", "ComplexPass123!"}, nil},
		{"Missing name", RegisterRequest{"  ", "test@example.com", "ComplexPass123!"}, errors.ErrInvalidCommand},
		{"Invalid email", RegisterRequest{"Alice", "notanemail", "ComplexPass123!"}, errors.ErrInvalidCommand},
		{"Password too short", RegisterRequest{"Alice", "test@example.com", "Short1!"}, errors.ErrInvalidCommand},
		{"Missing digit", RegisterRequest{"Alice", "test@example.com", "NoDigitPassword!"}, errors.ErrInvalidPassword},
		{"Missing special char", RegisterRequest{"Alice", "test@example.com", "NoSpecialChar123"}, errors.ErrInvalidPassword},
		{"Missing uppercase", RegisterRequest{"Alice", "test@example.com", "nouppercase123!"}, errors.ErrInvalidPassword},
		{"Password too long", RegisterRequest{"Alice", "test@example.com", strings.Repeat("a", 73)}, errors.ErrInvalidCommand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRegister(tt.req)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTokenIssuer(t *testing.T) {
	req := require.New(t)
	issuer := NewTokenIssuer("a-test-secret", time.Hour)

	token, err := issuer.Generate("user-123")
	req.NoError(err)

	claims, err := issuer.Validate(token)
	req.NoError(err)
	req.Equal("user-123", claims.UserID)

	_, err = NewTokenIssuer("another-secret", time.Hour).Validate(token)
	req.ErrorIs(err, errors.ErrUnauthenticated)

	expired, err := NewTokenIssuer("a-test-secret", -time.Minute).Generate("user-123")
	req.NoError(err)
	_, err = issuer.Validate(expired)
	req.ErrorIs(err, errors.ErrUnauthenticated)
}

func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
