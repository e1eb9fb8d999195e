package search

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// debianTree lays out two side-by-side LLVM installs the way Debian does.
func debianTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeLibrary(t, filepath.Join(root, "usr", "lib", "llvm-17", "lib", "libclang.so"))
	writeLibrary(t, filepath.Join(root, "usr", "lib", "llvm-18", "lib", "libclang.so"))
	return root
}

func TestFindSharedPicksHighestVersion(t *testing.T) {
	isolateEnv(t)
	root := debianTree(t)
	f, logs := newTestFinder(t, nil, WithRoot(root), WithoutAutodetect())

	got, err := f.FindShared()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "usr", "lib", "llvm-18", "lib"), got.Dir)
	assert.Equal(t, "libclang.so", got.Filename)
	assert.Empty(t, logs.String(), "probe failures are only reported when nothing is found")
}

func TestFindSharedHonorsConstraint(t *testing.T) {
	isolateEnv(t)
	root := debianTree(t)

	f, _ := newTestFinder(t, nil, WithRoot(root), WithoutAutodetect(), WithTargetVersion(17))
	got, err := f.FindShared()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "usr", "lib", "llvm-17", "lib"), got.Dir)

	f, _ = newTestFinder(t, nil, WithRoot(root), WithoutAutodetect(), WithTargetVersion(19))
	_, err = f.FindShared()
	var mismatch *VersionMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, []string{"17", "18"}, mismatch.Available)
}

func TestFindSharedResolvesUnversionedSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on Windows")
	}
	isolateEnv(t)
	root := t.TempDir()
	dir := filepath.Join(root, "usr", "lib")
	writeLibrary(t, filepath.Join(dir, "libclang-17.so.1"))
	require.NoError(t, os.Symlink("libclang-17.so.1", filepath.Join(dir, "libclang.so")))

	f, _ := newTestFinder(t, nil, WithRoot(root), WithoutAutodetect(), WithTargetVersion(17))
	got, err := f.FindShared()
	require.NoError(t, err)
	assert.Equal(t, "libclang.so", got.Filename)

	f, _ = newTestFinder(t, nil, WithRoot(root), WithoutAutodetect(), WithTargetVersion(18))
	_, err = f.FindShared()
	assert.ErrorIs(t, err, ErrVersionMismatch)
}

func TestFindSharedOverrideFile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeLibrary(t, filepath.Join(dir, "libclang.so"))
	chosen := writeLibrary(t, filepath.Join(dir, "libclang.so.1"))

	t.Run("option", func(t *testing.T) {
		f, _ := newTestFinder(t, nil, WithLibraryPath(chosen))
		got, err := f.FindShared()
		require.NoError(t, err)
		assert.Equal(t, chosen, got.Path())
	})
	t.Run("environment", func(t *testing.T) {
		t.Setenv(EnvLibraryPath, chosen)
		f, _ := newTestFinder(t, nil)
		got, err := f.FindShared()
		require.NoError(t, err)
		assert.Equal(t, chosen, got.Path())
	})
}

func TestFindSharedOverrideDirectoryIsExclusive(t *testing.T) {
	isolateEnv(t)
	root := debianTree(t)
	override := filepath.Join(t.TempDir(), "custom")
	writeLibrary(t, filepath.Join(override, "libclang.so.16"))

	f, _ := newTestFinder(t, nil, WithRoot(root), WithoutAutodetect(), WithLibraryPath(override))
	got, err := f.FindShared()
	require.NoError(t, err)
	assert.Equal(t, override, got.Dir)
	assert.Equal(t, "libclang.so.16", got.Filename)
}

func TestFindSharedUsesLLVMConfigPrefix(t *testing.T) {
	isolateEnv(t)
	prefix := t.TempDir()
	writeLibrary(t, filepath.Join(prefix, "lib", "libclang.so"))
	fake := &fakeExec{answers: map[string]string{"llvm-config --prefix": prefix + "\n"}}

	f, _ := newTestFinder(t, fake, WithRoot(t.TempDir()), WithoutAutodetect())
	got, err := f.FindShared()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(prefix, "lib"), got.Dir)
}

func TestFindSharedUsesXcodeOnDarwin(t *testing.T) {
	isolateEnv(t)
	xcode := t.TempDir()
	writeFile(t, filepath.Join(xcode, "Toolchains", "XcodeDefault.xctoolchain", "usr", "lib", "libclang.dylib"), machOHeader())
	fake := &fakeExec{answers: map[string]string{"xcode-select --print-path": xcode}}

	f, _ := newTestFinder(t, fake, WithPlatform(PlatformDarwin), WithRoot(t.TempDir()), WithoutAutodetect())
	got, err := f.FindShared()
	require.NoError(t, err)
	assert.Equal(t, "libclang.dylib", got.Filename)
}

func TestFindSharedUsesLibrarySearchPath(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeLibrary(t, filepath.Join(dir, "libclang.so"))
	t.Setenv(EnvLibrarySearchPath, dir)

	f, _ := newTestFinder(t, nil, WithRoot(t.TempDir()), WithoutAutodetect())
	got, err := f.FindShared()
	require.NoError(t, err)
	assert.Equal(t, dir, got.Dir)
}

func TestFindSharedNotFound(t *testing.T) {
	isolateEnv(t)
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "usr", "lib", "libclang.so"), []byte("not a library"))

	f, logs := newTestFinder(t, nil, WithRoot(root), WithoutAutodetect())
	_, err := f.FindShared()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Len(t, notFound.Invalid, 1)
	assert.Contains(t, notFound.Invalid[0], "invalid ELF header")
	assert.Contains(t, err.Error(), "set the `LIBCLANG_PATH` environment variable")
	assert.Contains(t, err.Error(), `"libclang-*.so.*"`)
	assert.Contains(t, logs.String(), "pure-clang: warning: could not execute `llvm-config`")
}

func TestValidateLibrary(t *testing.T) {
	dir := t.TempDir()
	elfPath := writeFile(t, filepath.Join(dir, "a.so"), elfHeader())
	machoPath := writeFile(t, filepath.Join(dir, "a.dylib"), machOHeader())
	short := writeFile(t, filepath.Join(dir, "short"), []byte{0x7f})

	assert.NoError(t, ValidateLibrary(PlatformLinux, elfPath))
	assert.Error(t, ValidateLibrary(PlatformLinux, machoPath))
	assert.NoError(t, ValidateLibrary(PlatformDarwin, machoPath))
	assert.Error(t, ValidateLibrary(PlatformDarwin, elfPath))
	assert.Error(t, ValidateLibrary(PlatformLinux, short))
	assert.Error(t, ValidateLibrary(PlatformLinux, filepath.Join(dir, "missing")))

	wrongClass := elfHeader()
	wrongClass[4] ^= 3
	assert.ErrorContains(t, ValidateLibrary(PlatformLinux, writeFile(t, filepath.Join(dir, "b.so"), wrongClass)), "invalid ELF class")
}

func TestValidatePE(t *testing.T) {
	dir := t.TempDir()
	header := peHeader()
	good := writeFile(t, filepath.Join(dir, "clang.dll"), header)
	assert.NoError(t, ValidateLibrary(PlatformWindows, good))

	bad := append([]byte(nil), header...)
	copy(bad[0x40:], "XX\x00\x00")
	assert.ErrorContains(t, ValidateLibrary(PlatformWindows, writeFile(t, filepath.Join(dir, "bad.dll"), bad)), "invalid DLL header")
}

func TestFindSharedMatchesWindowsDirectoriesCaseInsensitively(t *testing.T) {
	isolateEnv(t)
	root := t.TempDir()
	// Default MSYS2 layout: lower-case directories, DLL next to the import libraries.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "msys64", "mingw64", "lib"), 0o755))
	writeFile(t, filepath.Join(root, "msys64", "mingw64", "bin", "libclang.dll"), peHeader())

	f, _ := newTestFinder(t, nil, WithRoot(root), WithPlatform(PlatformWindows), WithoutAutodetect())
	got, err := f.FindShared()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "msys64", "mingw64", "bin"), got.Dir)
	assert.Equal(t, "libclang.dll", got.Filename)
}

func TestFindSharedFilenamesStayCaseSensitive(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeLibrary(t, filepath.Join(dir, "LIBCLANG.SO"))
	if _, err := os.Stat(filepath.Join(dir, "libclang.so")); err == nil {
		t.Skip("case-insensitive filesystem")
	}

	f, _ := newTestFinder(t, nil, WithLibraryPath(dir), WithoutAutodetect())
	_, err := f.FindShared()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFindSharedResolvesHomebrewCellar(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on Windows")
	}
	isolateEnv(t)
	root := t.TempDir()
	cellar := filepath.Join(root, "opt", "homebrew", "Cellar", "llvm", "18.1.3")
	writeFile(t, filepath.Join(cellar, "lib", "libclang.dylib"), machOHeader())
	require.NoError(t, os.MkdirAll(filepath.Join(root, "opt", "homebrew", "opt"), 0o755))
	require.NoError(t, os.Symlink(cellar, filepath.Join(root, "opt", "homebrew", "opt", "llvm")))

	f, _ := newTestFinder(t, nil, WithRoot(root), WithPlatform(PlatformDarwin), WithoutAutodetect(), WithTargetVersion(18))
	got, err := f.FindShared()
	require.NoError(t, err)
	assert.Equal(t, "libclang.dylib", got.Filename)

	f, _ = newTestFinder(t, nil, WithRoot(root), WithPlatform(PlatformDarwin), WithoutAutodetect(), WithTargetVersion(17))
	_, err = f.FindShared()
	var mismatch *VersionMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Contains(t, mismatch.Available, "18")
}
