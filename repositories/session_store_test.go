package repositories

import (
	"context"
	"testing"
	"time"

	"ClinicDesk/util"
	"ClinicDesk/wizard"

	miniredis "github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSessionStore(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisSessionStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), 30*time.Minute, 2*time.Second)
	ctx := context.Background()

	_, err := store.Get(ctx, "missing")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)

	session := wizard.New("abc")
	session.Date = "2026-10-20"
	require.NoError(t, store.Save(ctx, session))
	assert.Equal(t, 30*time.Minute, mr.TTL(util.WizardKey+"abc"))

	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, session, got)

	mr.FastForward(31 * time.Minute)
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestRedisSessionStore_Lock(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisSessionStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), time.Minute, 2*time.Second)
	ctx := context.Background()

	ok, err := store.Lock(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Minute, mr.TTL(util.WizardPayKey+"abc"))

	ok, err = store.Lock(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Unlock(ctx, "abc"))
	ok, err = store.Lock(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisSessionStore_LockOutlivesLongPayDelay(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisSessionStore(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), time.Minute, 5*time.Minute)
	ctx := context.Background()

	ok, err := store.Lock(ctx, "abc")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 5*time.Minute+30*time.Second, mr.TTL(util.WizardPayKey+"abc"))

	mr.FastForward(5 * time.Minute)
	ok, err = store.Lock(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPayLockTTL(t *testing.T) {
	assert.Equal(t, time.Minute, PayLockTTL(0))
	assert.Equal(t, time.Minute, PayLockTTL(2*time.Second))
	assert.Equal(t, 90*time.Second, PayLockTTL(time.Minute))
}

func TestMemorySessionStore(t *testing.T) {
	store := NewMemorySessionStore(time.Minute)
	now := time.Now()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, wizard.New("abc")))
	got, err := store.Get(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, wizard.StepIntake, got.Step)

	ok, _ := store.Lock(ctx, "abc")
	assert.True(t, ok)
	ok, _ = store.Lock(ctx, "abc")
	assert.False(t, ok)
	require.NoError(t, store.Unlock(ctx, "abc"))

	now = now.Add(2 * time.Minute)
	_, err = store.Get(ctx, "abc")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}
