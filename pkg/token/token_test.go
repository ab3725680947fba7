package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodig3618/Job-Tracker/pkg/token"
)

func TestIssueAndVerify(t *testing.T) {
	m := token.NewManager("secret", time.Hour)

	signed, err := m.Issue("alice")
	require.NoError(t, err)

	subject, err := m.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := token.NewManager("secret-a", time.Hour).Issue("alice")
	require.NoError(t, err)

	_, err = token.NewManager("secret-b", time.Hour).Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	m := token.NewManager("secret", -time.Minute)

	signed, err := m.Issue("alice")
	require.NoError(t, err)

	_, err = m.Verify(signed)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := token.NewManager("secret", time.Hour).Verify("not-a-token")
	assert.Error(t, err)
}
