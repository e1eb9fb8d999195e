package search

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"libclang.a", "libclangAST.a", "libclangBasic.a", "libLLVMCore.a"} {
		writeFile(t, filepath.Join(dir, name), []byte("!<arch>\n"))
	}
	return dir
}

func staticExec() *fakeExec {
	return &fakeExec{answers: map[string]string{
		"llvm-config --libs --link-static": "-lLLVMCore -lLLVMSupport /usr/lib/llvm-18/lib/libLLVMDemangle.a\n",
		"llvm-config --shared-mode":        "static\n",
		"llvm-config --libdir":             "/usr/lib/llvm-18/lib\n",
	}}
}

func TestFindStatic(t *testing.T) {
	isolateEnv(t)
	dir := staticTree(t)
	f, logs := newTestFinder(t, staticExec(), WithStaticLibraryPath(dir), WithoutAutodetect())

	got, err := f.FindStatic()
	require.NoError(t, err)
	assert.Equal(t, dir, got.Directory)
	assert.Equal(t, "libclang.a", got.Marker)
	assert.Equal(t, []string{"clang", "clangAST", "clangBasic"}, got.ClangLibraries)
	assert.Equal(t, []string{"LLVMCore", "LLVMSupport", "LLVMDemangle"}, got.LLVMLibraries)
	assert.True(t, got.LLVMStatic)
	assert.Equal(t, "/usr/lib/llvm-18/lib", got.LLVMDirectory)
	assert.Equal(t, []string{"ffi", "ncursesw", "stdc++", "z"}, got.SystemLibraries)
	assert.Empty(t, logs.String())
}

func TestFindStaticSystemLibraries(t *testing.T) {
	isolateEnv(t)
	dir := staticTree(t)

	f, _ := newTestFinder(t, staticExec(), WithStaticLibraryPath(dir), WithoutAutodetect(), WithLibcxx(true))
	got, err := f.FindStatic()
	require.NoError(t, err)
	assert.Equal(t, []string{"c++"}, got.SystemLibraries)

	f, _ = newTestFinder(t, staticExec(), WithStaticLibraryPath(dir), WithoutAutodetect(), WithPlatform(PlatformDarwin))
	got, err = f.FindStatic()
	require.NoError(t, err)
	assert.Equal(t, []string{"ffi", "ncurses", "c++", "z"}, got.SystemLibraries)
}

func TestFindStaticSharedLLVM(t *testing.T) {
	isolateEnv(t)
	fake := staticExec()
	fake.answers["llvm-config --shared-mode"] = "shared"

	f, _ := newTestFinder(t, fake, WithStaticLibraryPath(staticTree(t)), WithoutAutodetect())
	got, err := f.FindStatic()
	require.NoError(t, err)
	assert.False(t, got.LLVMStatic)
}

func TestFindStaticUnknownSharedMode(t *testing.T) {
	isolateEnv(t)
	fake := staticExec()
	delete(fake.answers, "llvm-config --shared-mode")

	f, _ := newTestFinder(t, fake, WithStaticLibraryPath(staticTree(t)), WithoutAutodetect())
	got, err := f.FindStatic()
	require.NoError(t, err)
	assert.False(t, got.LLVMStatic, "a failed --shared-mode probe does not mean static")
	assert.Equal(t, []string{"LLVMCore", "LLVMSupport", "LLVMDemangle"}, got.LLVMLibraries)
}

func TestFindStaticErrors(t *testing.T) {
	isolateEnv(t)

	f, logs := newTestFinder(t, staticExec(), WithRoot(t.TempDir()), WithoutAutodetect())
	_, err := f.FindStatic()
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "libclang.a or libclangBasic.a")
	assert.Contains(t, logs.String(), "could not execute `llvm-config`")

	f, logs = newTestFinder(t, nil, WithStaticLibraryPath(staticTree(t)), WithoutAutodetect())
	_, err = f.FindStatic()
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, logs.String(), "--libs --link-static")
}

func TestParseLinkerLibraries(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "flags", in: "-lLLVMCore -lLLVMSupport", want: []string{"LLVMCore", "LLVMSupport"}},
		{name: "paths", in: "/usr/lib/libLLVMCore.a /usr/lib/libLLVMSupport.a", want: []string{"LLVMCore", "LLVMSupport"}},
		{name: "windows", in: `C:\LLVM\lib\LLVMCore.lib`, want: []string{"LLVMCore"}},
		{name: "empty", in: "  \n", want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLinkerLibraries(tt.in))
		})
	}
}
