package unittest

import (
	"flag"
	"io"
	"os"
	"testing"

	"github.com/dgraph-io/badger/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var verbose = flag.Bool("vv", false, "print debugging logs from tests")

func LogVerbose() {
	*verbose = true
}

// Logger returns a zerolog that writes to stderr if the -vv flag is set,
// and discards all output otherwise.
func Logger() zerolog.Logger {
	writer := io.Discard
	if *verbose {
		writer = os.Stderr
	}
	return zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}

// TempDir creates a temporary directory and returns its path. The caller is
// responsible for cleaning it up.
func TempDir(t testing.TB) string {
	dir, err := os.MkdirTemp("", "basalt-testing-temp-")
	require.NoError(t, err)
	return dir
}

func RunWithTempDir(t testing.TB, f func(string)) {
	dir := TempDir(t)
	defer func() {
		require.NoError(t, os.RemoveAll(dir))
	}()
	f(dir)
}

func badgerDB(t testing.TB, dir string, create func(badger.Options) (*badger.DB, error)) *badger.DB {
	opts := badger.
		DefaultOptions(dir).
		WithKeepL0InMemory(true).
		WithLogger(nil)
	db, err := create(opts)
	require.NoError(t, err)
	return db
}

// BadgerDB opens a Badger database in the given directory with options suited
// for tests.
func BadgerDB(t testing.TB, dir string) *badger.DB {
	return badgerDB(t, dir, badger.Open)
}

func RunWithBadgerDB(t testing.TB, f func(*badger.DB)) {
	RunWithTempDir(t, func(dir string) {
		db := BadgerDB(t, dir)
		defer func() {
			require.NoError(t, db.Close())
		}()
		f(db)
	})
}
