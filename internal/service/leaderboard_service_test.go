package service

import (
	"Lucky99/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopAssignsRanks(t *testing.T) {
	lbRepo := newFakeLeaderboardRepo()
	lbRepo.topN = []*model.LeaderboardEntry{
		{Name: "Alice", BestScore: 9},
		{Name: "Bob", BestScore: 7},
		{Name: "Carol", BestScore: 7},
	}
	svc := NewLeaderboardService(lbRepo, testGameConfig)

	rows, err := svc.Top(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 1, rows[0].Rank)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, 2, rows[1].Rank)
	assert.Equal(t, 3, rows[2].Rank)
}

func TestTopClampsLimit(t *testing.T) {
	lbRepo := newFakeLeaderboardRepo()
	svc := NewLeaderboardService(lbRepo, testGameConfig)
	ctx := context.Background()

	_, err := svc.Top(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, lbRepo.gotN)

	_, err = svc.Top(ctx, -3)
	require.NoError(t, err)
	assert.Equal(t, 10, lbRepo.gotN)

	_, err = svc.Top(ctx, 500)
	require.NoError(t, err)
	assert.Equal(t, 10, lbRepo.gotN)

	_, err = svc.Top(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, 25, lbRepo.gotN)
}
