package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	req := require.New(t)
	password := "MonMotDePasseTr0pSûr!"

	hash, err := HashPassword(password)
	req.NoError(err)
	req.True(strings.HasPrefix(hash, "$argon2id$"))

	match, err := ComparePassword(password, hash)
	req.NoError(err)
	req.True(match)

	// Test de la comparaison négative (mauvais mot de passe)
	match, err = ComparePassword("MauvaisMDP", hash)
	req.NoError(err)
	req.False(match)
}

func TestGenerateAndValidateToken(t *testing.T) {
	req := require.New(t)
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", "fleet-operator", secret, time.Hour)
	req.NoError(err)
	req.NotEmpty(token)

	claims, err := ValidateToken(token, secret)
	req.NoError(err)
	req.Equal("user-1", claims.UserID)
	req.Equal("fleet-operator", claims.Role)
	req.Equal("transit-ops", claims.Issuer)
}

func TestValidateToken_Rejects_Wrong_Secret(t *testing.T) {
	req := require.New(t)

	token, err := GenerateToken("user-1", "end-user", []byte("right-secret"), time.Hour)
	req.NoError(err)

	_, err = ValidateToken(token, []byte("wrong-secret"))
	req.ErrorIs(err, jwt.ErrSignatureInvalid)
}

func TestValidateToken_Rejects_Expired_Token(t *testing.T) {
	req := require.New(t)
	secret := []byte("test-secret")

	token, err := GenerateToken("user-1", "end-user", secret, -time.Minute)
	req.NoError(err)

	_, err = ValidateToken(token, secret)
	req.ErrorIs(err, jwt.ErrTokenExpired)
}

func TestValidateToken_Rejects_Garbage(t *testing.T) {
	req := require.New(t)

	_, err := ValidateToken("not.a.token", []byte("test-secret"))
	req.Error(err)
}

// BenchmarkHashPassword permet de mesurer l'impact CPU/RAM (Crucial pour K8s)
func BenchmarkHashPassword(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = HashPassword("A-very-long-and-complex-password-for-bench-123!")
	}
}
