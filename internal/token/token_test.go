package token

import (
	"testing"
	"time"

	"github.com/slooze/foodorder/internal/apperr"
	"github.com/slooze/foodorder/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-token-tests"

func TestIssueAndVerify(t *testing.T) {
	codec := NewCodec(testSecret, 10*time.Hour)
	countryID := 2

	tests := []struct {
		name      string
		username  string
		role      models.Role
		countryID *int
	}{
		{"manager_with_country", "manager_in", models.RoleManager, &countryID},
		{"member_with_country", "member_in", models.RoleMember, &countryID},
		{"admin_without_country", "admin", models.RoleAdmin, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signed, err := codec.Issue(tt.username, tt.role, tt.countryID)
			require.NoError(t, err)
			require.NotEmpty(t, signed)

			claims, err := codec.Verify(signed)
			require.NoError(t, err)
			assert.Equal(t, tt.username, claims.Subject)
			assert.Equal(t, tt.role, claims.Role)
			if tt.countryID == nil {
				assert.Nil(t, claims.CountryID)
			} else {
				require.NotNil(t, claims.CountryID)
				assert.Equal(t, *tt.countryID, *claims.CountryID)
			}
		})
	}
}

func TestVerify_ExpiredToken(t *testing.T) {
	// Negative TTL produces a token that was already expired at issuance.
	codec := NewCodec(testSecret, -time.Minute)

	signed, err := codec.Issue("manager", models.RoleManager, nil)
	require.NoError(t, err)

	_, err = codec.Verify(signed)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestVerify_WrongKey(t *testing.T) {
	issuer := NewCodec(testSecret, time.Hour)
	verifier := NewCodec("a-completely-different-secret", time.Hour)

	signed, err := issuer.Issue("manager", models.RoleManager, nil)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	require.Error(t, err)
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}

func TestVerify_Malformed(t *testing.T) {
	codec := NewCodec(testSecret, time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := codec.Verify(tok)
		require.Error(t, err, "token %q should not verify", tok)
		assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	}
}
