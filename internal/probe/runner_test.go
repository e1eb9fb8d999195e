package probe

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTrimsOutput(t *testing.T) {
	r := NewRunner(WithExec(func(path string, args ...string) (string, error) {
		return "  /usr/lib/llvm-18\n", nil
	}))

	out, ok := r.Run(LLVMConfig, "llvm-config", "--prefix")
	require.True(t, ok)
	assert.Equal(t, "/usr/lib/llvm-18", out)
	assert.Empty(t, r.Errors())
}

func TestRunRecordsFailuresByName(t *testing.T) {
	r := NewRunner(WithExec(func(path string, args ...string) (string, error) {
		return "", errors.New("executable file not found in $PATH")
	}))

	_, ok := r.Run(LLVMConfig, "llvm-config", "--prefix")
	require.False(t, ok)
	_, ok = r.Run(LLVMConfig, "llvm-config", "--libdir")
	require.False(t, ok)
	_, ok = r.Run(XcodeSelect, "xcode-select", "--print-path")
	require.False(t, ok)

	errs := r.Errors()
	require.Len(t, errs[LLVMConfig], 2)
	require.Len(t, errs[XcodeSelect], 1)
	assert.Equal(t,
		"couldn't execute `llvm-config --prefix` (path=llvm-config) (error: executable file not found in $PATH)",
		errs[LLVMConfig][0],
	)

	r.Reset()
	assert.Empty(t, r.Errors())
}

func TestPrinterFlushAndDiscard(t *testing.T) {
	newRunner := func() *Runner {
		r := NewRunner(WithExec(func(path string, args ...string) (string, error) {
			return "", errors.New("boom")
		}))
		r.Run(LLVMConfig, "/opt/llvm/bin/llvm-config", "--version")
		return r
	}

	var buf bytes.Buffer
	logger := log.New(&buf, "pure-clang: ", 0)

	p := newRunner().Printer(logger)
	p.Discard()
	p.Flush()
	assert.Empty(t, buf.String())

	newRunner().Printer(logger).Flush()
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "pure-clang: warning: could not execute `llvm-config`"))
	assert.Contains(t, out, "LLVM_CONFIG_PATH")
	assert.Contains(t, out, "path=/opt/llvm/bin/llvm-config")
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/usr/lib/llvm-17\n", "/usr/lib/llvm-17"},
		{"/a\n/b\n", "/a"},
		{"", ""},
	}
	for _, tc := range tests {
		if got := FirstLine(tc.in); got != tc.want {
			t.Errorf("FirstLine(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
