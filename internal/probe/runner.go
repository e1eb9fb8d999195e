// Package probe runs helper executables (llvm-config, xcode-select) and keeps
// their failures aside until a caller decides whether they are worth
// reporting.
package probe

import (
	"errors"
	"fmt"
	"log"
	"os/exec"
	"sort"
	"strings"
	"sync"
)

const (
	// LLVMConfig is the probe name used for llvm-config invocations.
	LLVMConfig = "llvm-config"
	// XcodeSelect is the probe name used for xcode-select invocations.
	XcodeSelect = "xcode-select"
)

// ExecFunc runs the executable at path and returns its standard output.
type ExecFunc func(path string, args ...string) (string, error)

// Option configures a Runner.
type Option func(*Runner)

// WithExec replaces the function used to spawn helpers.
func WithExec(fn ExecFunc) Option {
	return func(r *Runner) {
		if fn != nil {
			r.exec = fn
		}
	}
}

// Runner executes helpers and records failures keyed by helper name.
// A hung helper blocks the caller; no timeout is applied.
type Runner struct {
	mu     sync.Mutex
	exec   ExecFunc
	errors map[string][]string
}

// NewRunner returns a Runner that spawns real processes unless WithExec is given.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		exec:   execOutput,
		errors: make(map[string][]string),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func execOutput(path string, args ...string) (string, error) {
	out, err := exec.Command(path, args...).Output()
	return string(out), err
}

// Run executes the helper at path. On success the trimmed stdout is returned.
// On failure the error is recorded under name and ok is false.
func (r *Runner) Run(name, path string, args ...string) (string, bool) {
	out, err := r.exec(path, args...)
	if err != nil {
		r.record(name, path, args, describe(err))
		return "", false
	}
	return strings.TrimSpace(out), true
}

// Try executes the helper at path without recording a failure. Used for
// speculative probes whose failure is expected and uninteresting.
func (r *Runner) Try(path string, args ...string) (string, bool) {
	out, err := r.exec(path, args...)
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(out), true
}

func describe(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Sprintf("exit code: %d", exitErr.ExitCode())
	}
	return fmt.Sprintf("error: %v", err)
}

func (r *Runner) record(name, path string, args []string, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors[name] = append(r.errors[name], fmt.Sprintf(
		"couldn't execute `%s %s` (path=%s) (%s)",
		name, strings.Join(args, " "), path, message,
	))
}

// Errors returns a copy of the recorded failures.
func (r *Runner) Errors() map[string][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string][]string, len(r.errors))
	for name, messages := range r.errors {
		out[name] = append([]string(nil), messages...)
	}
	return out
}

// Reset forgets every recorded failure.
func (r *Runner) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = make(map[string][]string)
}

// FirstLine returns the first line of helper output. Path-valued outputs only
// carry meaning on that line.
func FirstLine(out string) string {
	line, _, _ := strings.Cut(out, "\n")
	return strings.TrimSpace(line)
}

// Printer reports recorded failures when flushed, unless discarded first.
type Printer struct {
	runner  *Runner
	logger  *log.Logger
	discard bool
}

// Printer returns a Printer bound to r. Typical use:
//
//	p := runner.Printer(logger)
//	defer p.Flush()
//	...
//	p.Discard() // the library was found, failures were noise
func (r *Runner) Printer(logger *log.Logger) *Printer {
	return &Printer{runner: r, logger: logger}
}

// Discard suppresses the report.
func (p *Printer) Discard() {
	p.discard = true
}

// Flush writes one advisory line per failing helper.
func (p *Printer) Flush() {
	if p.discard || p.logger == nil {
		return
	}
	errs := p.runner.Errors()
	names := make([]string, 0, len(errs))
	for name := range errs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		p.logger.Printf("warning: %s: %s", advice(name), quoteJoin(errs[name]))
	}
}

func advice(name string) string {
	switch name {
	case LLVMConfig:
		return "could not execute `llvm-config` one or more times, if the LLVM_CONFIG_PATH " +
			"environment variable is set to a full path to valid `llvm-config` executable it " +
			"will be used to try to find an instance of `libclang` on your system"
	case XcodeSelect:
		return "could not execute `xcode-select` one or more times, if a valid instance of " +
			"this executable is on your PATH it will be used to try to find an instance of " +
			"`libclang` on your system"
	default:
		return fmt.Sprintf("could not execute `%s` one or more times", name)
	}
}

func quoteJoin(messages []string) string {
	quoted := make([]string, len(messages))
	for i, m := range messages {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	return strings.Join(quoted, "\n  ")
}
