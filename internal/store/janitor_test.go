package store

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJanitor_SweepRemovesIdleSessions(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	st := NewMemoryStore()
	require.NoError(t, st.Save(context.Background(), &Session{Email: "old@x.io", LastActivity: now.Add(-48 * time.Hour)}))
	require.NoError(t, st.Save(context.Background(), &Session{Email: "new@x.io", LastActivity: now}))

	logger, hook := test.NewNullLogger()
	j := NewJanitor(st, 24*time.Hour, logger)
	j.now = func() time.Time { return now }
	j.sweep()

	_, err := st.Load(context.Background(), "old@x.io")
	assert.Error(t, err)
	_, err = st.Load(context.Background(), "new@x.io")
	assert.NoError(t, err)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, 1, hook.LastEntry().Data["removed"])
}

func TestJanitor_RejectsBadSchedule(t *testing.T) {
	logger, _ := test.NewNullLogger()
	j := NewJanitor(NewMemoryStore(), time.Hour, logger)
	assert.Error(t, j.Start("every tuesday"))
}
