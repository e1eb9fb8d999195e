package clang

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amikos-tech/pure-clang/internal/probe"
	"github.com/amikos-tech/pure-clang/search"
)

func fakeRegistry(f *fakeLoader) *Registry {
	r := NewRegistry()
	r.load = func(opts ...Option) (*Library, error) {
		return openFake(f, opts...)
	}
	return r
}

func TestRegistryRoundTrip(t *testing.T) {
	f := newFakeLoader("clang_createIndex")
	r := fakeRegistry(f)
	require.False(t, r.IsLoaded())
	require.Nil(t, r.Library())

	require.NoError(t, r.Load())
	assert.True(t, r.IsLoaded())
	assert.True(t, r.MustLibrary().Available("clang_createIndex"))

	require.NoError(t, r.Unload())
	assert.False(t, r.IsLoaded())
	assert.Equal(t, 1, f.closeCount())

	err := r.Unload()
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.Equal(t, "a `libclang` shared library is not loaded", err.Error())
}

func TestRegistryLoadReplacesLibrary(t *testing.T) {
	f := newFakeLoader()
	r := fakeRegistry(f)

	require.NoError(t, r.Load())
	first := r.Library()
	require.NoError(t, r.Load())

	assert.NotSame(t, first, r.Library())
	assert.Equal(t, 1, f.closeCount())
}

func TestRegistryLoadFailureKeepsLibrary(t *testing.T) {
	f := newFakeLoader()
	r := fakeRegistry(f)
	require.NoError(t, r.Load())
	held := r.Library()

	f.openErr = errors.New("wrong ELF class: ELFCLASS32")
	err := r.Load()
	assert.ErrorIs(t, err, ErrOpenFailed)
	assert.Same(t, held, r.Library())
}

func TestRegistrySharesAcrossContexts(t *testing.T) {
	f := newFakeLoader()
	a := fakeRegistry(f)
	b := NewRegistry()

	require.NoError(t, a.Load())
	assert.Nil(t, b.SetLibrary(a.Library().Retain()))
	assert.Same(t, a.Library(), b.Library())

	require.NoError(t, a.Unload())
	assert.Zero(t, f.closeCount(), "b still holds a reference")

	require.NoError(t, b.Unload())
	assert.Equal(t, 1, f.closeCount())
}

func TestRegistryMustLibraryPanics(t *testing.T) {
	r := NewRegistry()
	assert.PanicsWithError(t, ErrNotLoaded.Error(), func() { r.MustLibrary() })
}

func writeELFLibrary(t *testing.T, path string) {
	t.Helper()
	header := make([]byte, 64)
	copy(header, "\x7fELF")
	header[4] = 1
	if strconv.IntSize == 64 {
		header[4] = 2
	}
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, header, 0o755))
}

func TestRegistryDetectsLLVMConfigOnce(t *testing.T) {
	for _, key := range []string{search.EnvLibraryPath, search.EnvLLVMConfigPath, search.EnvLibrarySearchPath} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	prefix := t.TempDir()
	writeELFLibrary(t, filepath.Join(prefix, "lib", "libclang.so"))

	calls := map[string]int{}
	runner := probe.NewRunner(probe.WithExec(func(path string, args ...string) (string, error) {
		key := strings.Join(append([]string{path}, args...), " ")
		calls[key]++
		switch key {
		case "llvm-config --version":
			return "18.1.3\n", nil
		case "llvm-config --prefix":
			return prefix + "\n", nil
		}
		return "", errors.New("executable file not found in $PATH")
	}))

	f := newFakeLoader()
	r := NewRegistry(
		search.WithPlatform(search.PlatformLinux),
		search.WithRoot(t.TempDir()),
		search.WithTargetVersion(0),
		search.WithProbeRunner(runner),
		search.WithLogger(nil),
	)
	r.load = func(opts ...Option) (*Library, error) {
		return Load(append(opts, withLoader(f), WithLogger(nil))...)
	}

	for i := 0; i < 3; i++ {
		require.NoError(t, r.Load())
	}
	assert.Equal(t, 1, calls["llvm-config --version"], "the helper path is detected once per registry")
	assert.Equal(t, 3, calls["llvm-config --prefix"])
	assert.Equal(t, filepath.Join(prefix, "lib", "libclang.so"), r.Library().Path())

	finder, err := r.Finder()
	require.NoError(t, err)
	assert.Equal(t, "llvm-config", finder.LLVMConfigPath())
	assert.Equal(t, 1, calls["llvm-config --version"])

	require.NoError(t, r.Unload())
	assert.Equal(t, 3, f.closeCount())
}

func TestWithFinderExcludesSearchOptions(t *testing.T) {
	finder, err := search.New(search.WithLogger(nil))
	require.NoError(t, err)

	_, err = Load(WithFinder(finder), WithSearchOptions(search.WithTargetVersion(18)))
	assert.ErrorContains(t, err, "cannot be combined")

	_, err = Load(WithFinder(nil))
	assert.ErrorContains(t, err, "finder cannot be nil")
}
