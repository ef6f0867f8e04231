package filer_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golift.io/rollerr/filer"
)

// Our interface must satify a filer.Filer.
var _ filer.Filer = (*MyFiler)(nil)

// Create a custom Filer that overrides only the Rename method.
type MyFiler struct {
	filer.File
}

func (f *MyFiler) Rename(oldpath, newpath string) error {
	fmt.Printf("Renamed %s -> %s\n", oldpath, newpath)

	return nil
}

func ExampleFile() {
	// Pass s into any package that uses a filer.Filer.
	s := &MyFiler{}
	_ = s.Rename("old.file", "new.file")
	// Output:
	// Renamed old.file -> new.file
}

func TestStatFile(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "stat.me")
	require.NoError(os.WriteFile(path, []byte("12345"), 0o600))

	file, err := os.Open(path)
	require.NoError(err)
	defer file.Close()

	info, err := filer.Default().StatFile(file)
	require.NoError(err)
	assert.Equal(int64(5), info.Size())
	assert.Equal("stat.me", info.Name())

	// Stat by path must agree with stat by handle.
	pathInfo, err := filer.Default().Stat(path)
	require.NoError(err)
	assert.Equal(info.Size(), pathInfo.Size())
	assert.Equal(info.CreateTime, pathInfo.CreateTime)
}
