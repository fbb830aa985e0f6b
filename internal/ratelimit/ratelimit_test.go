package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/raayraay69/blue-ledger/internal/config"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(start time.Time) (*MemoryLimiter, *time.Time) {
	now := start
	l := NewMemoryLimiter(Quotas{
		models.ClassIncidentInsert: {Limit: 2, Window: time.Hour},
		models.ClassVote:           {Limit: 3, Window: time.Minute},
	})
	l.now = func() time.Time { return now }
	return l, &now
}

func TestMemoryLimiter_DeniesOverQuota(t *testing.T) {
	l, _ := newTestLimiter(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	require.NoError(t, l.Admit(ctx, "token-a", models.ClassIncidentInsert))
	require.NoError(t, l.Admit(ctx, "token-a", models.ClassIncidentInsert))

	err := l.Admit(ctx, "token-a", models.ClassIncidentInsert)
	assert.ErrorIs(t, err, models.ErrRateLimitExceeded)

	// Квоты независимы по токенам и классам
	assert.NoError(t, l.Admit(ctx, "token-b", models.ClassIncidentInsert))
	assert.NoError(t, l.Admit(ctx, "token-a", models.ClassVote))
}

func TestMemoryLimiter_Refills(t *testing.T) {
	l, now := newTestLimiter(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Admit(ctx, "voter", models.ClassVote))
	}
	require.ErrorIs(t, l.Admit(ctx, "voter", models.ClassVote), models.ErrRateLimitExceeded)

	*now = now.Add(20 * time.Second)
	assert.NoError(t, l.Admit(ctx, "voter", models.ClassVote))
}

func TestMemoryLimiter_UnknownClass(t *testing.T) {
	l, _ := newTestLimiter(time.Now())
	err := l.Admit(context.Background(), "t", models.ClassSightingInsert)
	require.Error(t, err)
	assert.NotErrorIs(t, err, models.ErrRateLimitExceeded)
}

func TestMemoryLimiter_Prunes(t *testing.T) {
	l, now := newTestLimiter(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()
	require.NoError(t, l.Admit(ctx, "a", models.ClassVote))
	require.NoError(t, l.Admit(ctx, "b", models.ClassVote))
	assert.Equal(t, 2, l.Len())

	*now = now.Add(2 * time.Hour)
	require.NoError(t, l.Admit(ctx, "c", models.ClassVote))
	assert.Equal(t, 1, l.Len())
}

func TestQuotasFromConfig(t *testing.T) {
	cfg := &config.Config{
		IncidentQuota: config.Quota{Limit: 1, Window: time.Hour},
		SightingQuota: config.Quota{Limit: 2, Window: time.Hour},
		VoteQuota:     config.Quota{Limit: 3, Window: time.Hour},
	}
	q := QuotasFromConfig(cfg)
	assert.Len(t, q, 3)
	assert.Equal(t, 3, q[models.ClassVote].Limit)
}

func TestWindowKey(t *testing.T) {
	assert.Equal(t, "ratelimit:vote:abc:42", windowKey(models.ClassVote, "abc", 42))
}
