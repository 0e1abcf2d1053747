package store

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

var dbSeq int

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:store%d?mode=memory&cache=shared", dbSeq)
	db, err := Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteStore_SetGet(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	got, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, s.Set(ctx, "k", []byte("v1")))
	got, err = s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v1"), got)

	// upsert
	require.NoError(t, s.Set(ctx, "k", []byte("v2")))
	got, err = s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("v2"), got)
}

func TestSQLiteStore_SetAll(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.SetAll(ctx, map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
	}))

	for key, want := range map[string]string{"a": "1", "b": "2"} {
		got, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.Equal(t, []byte(want), got)
	}
}

func TestSQLiteStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "b", []byte("2")))

	require.NoError(t, s.Delete(ctx, "a", "b"))
	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.Nil(t, got)

	// deleting again is a no-op
	require.NoError(t, s.Delete(ctx, "a"))
}

func TestSQLiteStore_Clear(t *testing.T) {
	ctx := context.Background()
	s := NewSQLiteStore(setupDB(t))

	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Clear(ctx))

	got, err := s.Get(ctx, "a")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()

	value := []byte("secret")
	require.NoError(t, m.Set(ctx, "k", value))
	value[0] = 'X'

	got, err := m.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("secret"), got)
}
