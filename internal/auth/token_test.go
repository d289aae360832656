package auth_test

import (
	"testing"
	"time"

	"github.com/ajaypanchal761/createbharat-sub000/internal/auth"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenManager(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)
	subjectID := uuid.New().String()

	t.Run("round trip preserves subject and actor", func(t *testing.T) {
		token, err := tm.Generate(subjectID, auth.ActorUser)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := tm.Validate(token)
		assert.NoError(t, err)
		assert.Equal(t, subjectID, claims.SubjectID)
		assert.Equal(t, auth.ActorUser, claims.Actor)
	})

	t.Run("actor claim distinguishes principals", func(t *testing.T) {
		token, err := tm.Generate(subjectID, auth.ActorAdmin)
		assert.NoError(t, err)

		claims, err := tm.Validate(token)
		assert.NoError(t, err)
		assert.Equal(t, auth.ActorAdmin, claims.Actor)
		assert.NotEqual(t, auth.ActorUser, claims.Actor)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		other := auth.NewTokenManager("other_secret", time.Hour)
		token, err := other.Generate(subjectID, auth.ActorUser)
		assert.NoError(t, err)

		_, err = tm.Validate(token)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := auth.NewTokenManager("test_secret", -time.Minute)
		token, err := expired.Generate(subjectID, auth.ActorUser)
		assert.NoError(t, err)

		_, err = tm.Validate(token)
		assert.Error(t, err)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := tm.Validate("not.a.token")
		assert.Error(t, err)
	})
}
