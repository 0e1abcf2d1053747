package quickunlock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/afriwallet/afriwallet/internal/client/store"
)

func TestVerify_NotEnrolled(t *testing.T) {
	s := NewService(store.NewMemoryStore())
	require.ErrorIs(t, s.Verify(context.Background(), []byte("2580")), ErrNotEnrolled)
}

func TestEnrollVerify(t *testing.T) {
	ctx := context.Background()
	s := NewService(store.NewMemoryStore())

	require.NoError(t, s.Enroll(ctx, []byte("2580")))
	require.NoError(t, s.Verify(ctx, []byte("2580")))
	require.ErrorIs(t, s.Verify(ctx, []byte("2581")), ErrMismatch)
}

func TestEnroll_ReplacesPrevious(t *testing.T) {
	ctx := context.Background()
	s := NewService(store.NewMemoryStore())

	require.NoError(t, s.Enroll(ctx, []byte("2580")))
	require.NoError(t, s.Enroll(ctx, []byte("8642")))

	require.ErrorIs(t, s.Verify(ctx, []byte("2580")), ErrMismatch)
	require.NoError(t, s.Verify(ctx, []byte("8642")))
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()
	s := NewService(st)

	require.NoError(t, s.Enroll(ctx, []byte("2580")))
	require.NoError(t, s.Clear(ctx))
	require.ErrorIs(t, s.Verify(ctx, []byte("2580")), ErrNotEnrolled)

	// clearing twice is safe
	require.NoError(t, s.Clear(ctx))
}

func TestWipe(t *testing.T) {
	b := []byte("2580")
	Wipe(b)
	require.Equal(t, []byte{0, 0, 0, 0}, b)
}
