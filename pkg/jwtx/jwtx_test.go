package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/tabwire/courier/pkg/jwtx"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewSignerRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := jwtx.NewSignerHS256([]byte("too short"))
	require.ErrorIs(t, err, jwtx.ErrSecretTooShort)

	_, err = jwtx.NewVerifierHS256([]byte("too short"), "courier")
	require.ErrorIs(t, err, jwtx.ErrSecretTooShort)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, "courier")
	require.NoError(t, err)

	claims := jwtx.NewClaims("alice", "courier", time.Hour, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(token, ".")), "JWT should have three segments")

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Subject)
	require.Equal(t, "alice", got.Username)
	require.Equal(t, "courier", got.Issuer)
	require.NotEmpty(t, got.ID)
}

func TestVerifyRejectsTampering(t *testing.T) {
	signer, _ := jwtx.NewSignerHS256(testSecret)
	verifier, _ := jwtx.NewVerifierHS256(testSecret, "courier")

	token, err := signer.Sign(jwtx.NewClaims("alice", "courier", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	t.Run("garbage token", func(t *testing.T) {
		_, err := verifier.Verify("not.a.jwt")
		require.Error(t, err)
	})

	t.Run("flipped signature", func(t *testing.T) {
		parts := strings.Split(token, ".")
		mangled := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
		_, err := verifier.Verify(mangled)
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, _ := jwtx.NewVerifierHS256([]byte("ffffffffffffffffffffffffffffffff"), "courier")
		_, err := other.Verify(token)
		require.Error(t, err)
	})
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	signer, _ := jwtx.NewSignerHS256(testSecret)
	verifier, _ := jwtx.NewVerifierHS256(testSecret, "courier")

	// Issued two hours ago with a one hour TTL
	claims := jwtx.NewClaims("alice", "courier", time.Hour, time.Now().UTC().Add(-2*time.Hour))
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	signer, _ := jwtx.NewSignerHS256(testSecret)
	verifier, _ := jwtx.NewVerifierHS256(testSecret, "courier")

	token, err := signer.Sign(jwtx.NewClaims("alice", "someone-else", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrIssuer)
}

func TestVerifierSkipsEmptyIssuerCheck(t *testing.T) {
	signer, _ := jwtx.NewSignerHS256(testSecret)
	verifier, _ := jwtx.NewVerifierHS256(testSecret, "")

	token, err := signer.Sign(jwtx.NewClaims("alice", "whatever", time.Hour, time.Now().UTC()))
	require.NoError(t, err)

	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Subject)
}

func TestValidateExpiryWithLeeway(t *testing.T) {
	// Expired 10 seconds ago, but a 30s leeway keeps it alive
	claims := jwtx.NewClaims("alice", "courier", 0, time.Now().UTC().Add(-10*time.Second))
	require.ErrorIs(t, claims.ValidateExpiry(), jwtx.ErrExpired)
	require.NoError(t, claims.ValidateExpiryWithLeeway(30*time.Second))
}
