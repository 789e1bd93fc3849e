package repository

import (
	"context"
	"testing"
	"time"

	"adboard/internal/api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRepositoryLookup(t *testing.T) {
	pool := newTestDB(t)
	users := NewUserRepository(pool)
	tokens := NewTokenRepository(pool)
	ctx := context.Background()

	tessa, err := users.Create(ctx, "Tessa Gray", "t.gray@example.org", "h1")
	require.NoError(t, err)
	_, err = users.Create(ctx, "Will Herondale", "w.herondale@example.org", "h2")
	require.NoError(t, err)

	issued := &models.Token{ID: uuid.NewString(), UserID: tessa.ID, CreatedAt: time.Now().UTC()}
	require.NoError(t, tokens.Create(ctx, issued))

	tests := []struct {
		name     string
		tokenID  string
		userName string
		found    bool
	}{
		{"matching token and name", issued.ID, "Tessa Gray", true},
		{"valid token with wrong name", issued.ID, "Will Herondale", false},
		{"valid token with unknown name", issued.ID, "nobody", false},
		{"unknown token with valid name", uuid.NewString(), "Tessa Gray", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tokens.GetByIDAndUserName(ctx, tt.tokenID, tt.userName)
			require.NoError(t, err)
			if !tt.found {
				assert.Nil(t, token)
				return
			}
			require.NotNil(t, token)
			assert.Equal(t, issued.ID, token.ID)
			assert.Equal(t, tessa.ID, token.UserID)
		})
	}

	// a second login issues another live token for the same user
	second := &models.Token{ID: uuid.NewString(), UserID: tessa.ID, CreatedAt: time.Now().UTC()}
	require.NoError(t, tokens.Create(ctx, second))

	token, err := tokens.GetByIDAndUserName(ctx, second.ID, "Tessa Gray")
	require.NoError(t, err)
	require.NotNil(t, token)

	token, err = tokens.GetByIDAndUserName(ctx, issued.ID, "Tessa Gray")
	require.NoError(t, err)
	require.NotNil(t, token, "earlier tokens stay live")
}
