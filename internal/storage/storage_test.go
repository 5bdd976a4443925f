package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "db")
	s, err := Open(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenCreatesDatabaseDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "db")
	s, err := Open(dir)
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(dir)
	require.NoError(t, err)
}

func TestSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	err := s.Set(NamespaceBook, []byte("polyglot-key"), []byte("payload"))
	require.NoError(t, err)

	value, ok, err := s.Get(NamespaceBook, []byte("polyglot-key"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("payload"), value)
}

func TestGetMiss(t *testing.T) {
	s := openTestStore(t)

	value, ok, err := s.Get(NamespaceTablebase, []byte("missing"))
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, value)
}

func TestNamespacesDoNotCollide(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Set(NamespaceBook, []byte("k"), []byte("book-value")))
	require.NoError(t, s.Set(NamespaceTablebase, []byte("k"), []byte("tb-value")))

	bookValue, ok, err := s.Get(NamespaceBook, []byte("k"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("book-value"), bookValue)

	tbValue, ok, err := s.Get(NamespaceTablebase, []byte("k"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("tb-value"), tbValue)
}

func TestBatchSet(t *testing.T) {
	s := openTestStore(t)

	entries := map[string][]byte{
		"a": []byte("1"),
		"b": []byte("2"),
		"c": []byte("3"),
	}
	require.NoError(t, s.BatchSet(NamespaceBook, entries))

	for key, want := range entries {
		got, ok, err := s.Get(NamespaceBook, []byte(key))
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, want, got)
	}
}

func TestHas(t *testing.T) {
	s := openTestStore(t)

	require.False(t, s.Has(NamespaceBook, []byte("absent")))

	require.NoError(t, s.Set(NamespaceBook, []byte("present"), []byte("x")))
	require.True(t, s.Has(NamespaceBook, []byte("present")))
}

func TestRunGCDoesNotError(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Set(NamespaceBook, []byte("k"), []byte("v")))
	s.RunGC(0.5)
}

func TestDataDirAndDatabaseDir(t *testing.T) {
	dir, err := DataDir()
	require.NoError(t, err)
	require.NotEmpty(t, dir)

	dbDir, err := DatabaseDir()
	require.NoError(t, err)
	require.NotEmpty(t, dbDir)
	require.Equal(t, filepath.Join(dir, "db"), dbDir)
}
