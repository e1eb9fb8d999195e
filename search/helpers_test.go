package search

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/amikos-tech/pure-clang/internal/probe"
)

// fakeExec answers helper invocations from a table keyed by
// "<path> <args...>" and counts calls.
type fakeExec struct {
	mu      sync.Mutex
	answers map[string]string
	calls   []string
}

func (f *fakeExec) run(path string, args ...string) (string, error) {
	key := strings.TrimSpace(path + " " + strings.Join(args, " "))
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, key)
	if out, ok := f.answers[key]; ok {
		return out, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f *fakeExec) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// isolateEnv clears every variable a Finder reads so the host's LLVM
// installation cannot leak into a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvLibraryPath, EnvStaticLibraryPath, EnvLLVMConfigPath, EnvLibrarySearchPath} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func newTestFinder(t *testing.T, fake *fakeExec, opts ...Option) (*Finder, *bytes.Buffer) {
	t.Helper()
	if fake == nil {
		fake = &fakeExec{}
	}
	var buf bytes.Buffer
	base := []Option{
		WithPlatform(PlatformLinux),
		WithTargetVersion(0),
		WithLogger(log.New(&buf, "pure-clang: ", 0)),
		WithProbeRunner(probe.NewRunner(probe.WithExec(fake.run))),
	}
	f, err := New(append(base, opts...)...)
	require.NoError(t, err)
	return f, &buf
}

func elfHeader() []byte {
	header := make([]byte, 64)
	copy(header, "\x7fELF")
	header[4] = 1
	if strconv.IntSize == 64 {
		header[4] = 2
	}
	return header
}

func machOHeader() []byte {
	if strconv.IntSize == 64 {
		return []byte{0xcf, 0xfa, 0xed, 0xfe, 0, 0, 0, 0}
	}
	return []byte{0xce, 0xfa, 0xed, 0xfe, 0, 0, 0, 0}
}

// peHeader is a minimal PE image whose machine matches the host pointer width.
func peHeader() []byte {
	header := make([]byte, 0x80)
	header[0x3c] = 0x40
	copy(header[0x40:], "PE\x00\x00")
	if strconv.IntSize == 64 {
		header[0x44], header[0x45] = 0x64, 0x86
	} else {
		header[0x44], header[0x45] = 0x4c, 0x01
	}
	return header
}

func writeFile(t *testing.T, path string, content []byte) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, content, 0o755))
	return path
}

func writeLibrary(t *testing.T, path string) string {
	t.Helper()
	return writeFile(t, path, elfHeader())
}
