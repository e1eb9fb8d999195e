// Package search locates libclang and the LLVM helper executables on the
// local filesystem.
//
// A Finder carries all state for one search context: platform layout,
// overrides, version constraint, probe runner and the cached llvm-config
// path. Independent Finders never share state.
package search

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/amikos-tech/pure-clang/internal/probe"
	"github.com/amikos-tech/pure-clang/internal/target"
)

// Environment variables consulted by a Finder.
const (
	EnvLibraryPath       = "LIBCLANG_PATH"
	EnvStaticLibraryPath = "LIBCLANG_STATIC_PATH"
	EnvLLVMConfigPath    = "LLVM_CONFIG_PATH"
	EnvLibrarySearchPath = "LD_LIBRARY_PATH"
)

// ABI environments accepted by WithABIEnvironment.
const (
	ABIMSVC = "msvc"
	ABIGNU  = "gnu"
)

// Option configures a Finder.
type Option func(*options) error

type options struct {
	platform       Platform
	abi            string
	root           string
	libraryPath    string
	staticPath     string
	llvmConfigPath string
	target         int
	autodetect     bool
	libcxx         bool
	logger         *log.Logger
	runner         *probe.Runner
}

// WithLibraryPath points the shared-library search at a file or directory.
func WithLibraryPath(path string) Option {
	return func(o *options) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return fmt.Errorf("library path cannot be empty")
		}
		o.libraryPath = path
		return nil
	}
}

// WithStaticLibraryPath points the static-library search at a file or directory.
func WithStaticLibraryPath(path string) Option {
	return func(o *options) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return fmt.Errorf("static library path cannot be empty")
		}
		o.staticPath = path
		return nil
	}
}

// WithLLVMConfigPath sets the llvm-config executable, bypassing detection.
func WithLLVMConfigPath(path string) Option {
	return func(o *options) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return fmt.Errorf("llvm-config path cannot be empty")
		}
		o.llvmConfigPath = path
		return nil
	}
}

// WithTargetVersion restricts selection to one major version. Zero removes
// the build-time constraint.
func WithTargetVersion(major int) Option {
	return func(o *options) error {
		if major < 0 {
			return fmt.Errorf("invalid target version %d", major)
		}
		o.target = major
		return nil
	}
}

// WithPlatform searches with another platform's layout.
func WithPlatform(p Platform) Option {
	return func(o *options) error {
		if _, ok := platformNames[p]; !ok {
			return fmt.Errorf("unknown platform %d", p)
		}
		o.platform = p
		return nil
	}
}

// WithABIEnvironment selects the Windows toolchain flavour, "msvc" or "gnu".
func WithABIEnvironment(abi string) Option {
	return func(o *options) error {
		switch abi = strings.ToLower(strings.TrimSpace(abi)); abi {
		case ABIMSVC, ABIGNU, "":
			o.abi = abi
			return nil
		default:
			return fmt.Errorf("unknown ABI environment %q", abi)
		}
	}
}

// WithRoot resolves platform patterns below root instead of the filesystem
// root. Used to run searches against a fixture tree.
func WithRoot(root string) Option {
	return func(o *options) error {
		root = strings.TrimSpace(root)
		if root == "" {
			return fmt.Errorf("root cannot be empty")
		}
		o.root = filepath.Clean(root)
		return nil
	}
}

// WithLibcxx selects libc++ instead of libstdc++ for static system libraries.
func WithLibcxx(enabled bool) Option {
	return func(o *options) error {
		o.libcxx = enabled
		return nil
	}
}

// WithLogger sets the destination for advisory messages.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			logger = log.New(io.Discard, "", 0)
		}
		o.logger = logger
		return nil
	}
}

// WithProbeRunner replaces the helper runner, typically with a fake exec.
func WithProbeRunner(r *probe.Runner) Option {
	return func(o *options) error {
		if r == nil {
			return fmt.Errorf("probe runner cannot be nil")
		}
		o.runner = r
		return nil
	}
}

// WithoutAutodetect disables llvm-config discovery; the helper then
// resolves to LLVM_CONFIG_PATH or plain "llvm-config".
func WithoutAutodetect() Option {
	return func(o *options) error {
		o.autodetect = false
		return nil
	}
}

// Finder searches for libclang. It is safe for concurrent use once built.
type Finder struct {
	platform       Platform
	layout         Layout
	msvc           bool
	root           string
	libraryPath    string
	staticPath     string
	llvmConfigPath string
	target         int
	autodetect     bool
	libcxx         bool
	logger         *log.Logger
	runner         *probe.Runner

	detectOnce sync.Once
	detected   string
}

// DefaultLogger writes advisories to stderr.
func DefaultLogger() *log.Logger {
	return log.New(os.Stderr, "pure-clang: ", 0)
}

// New builds a Finder. Overrides fall back to LIBCLANG_PATH and
// LIBCLANG_STATIC_PATH; the version constraint defaults to the build tags.
func New(opts ...Option) (*Finder, error) {
	major, _ := target.Version()
	o := options{
		platform:    CurrentPlatform(),
		libraryPath: strings.TrimSpace(os.Getenv(EnvLibraryPath)),
		staticPath:  strings.TrimSpace(os.Getenv(EnvStaticLibraryPath)),
		target:      major,
		autodetect:  true,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&o); err != nil {
			return nil, err
		}
	}
	if o.logger == nil {
		o.logger = DefaultLogger()
	}
	if o.runner == nil {
		o.runner = probe.NewRunner()
	}
	return &Finder{
		platform:       o.platform,
		layout:         LayoutFor(o.platform),
		msvc:           o.abi == ABIMSVC,
		root:           o.root,
		libraryPath:    o.libraryPath,
		staticPath:     o.staticPath,
		llvmConfigPath: o.llvmConfigPath,
		target:         o.target,
		autodetect:     o.autodetect,
		libcxx:         o.libcxx,
		logger:         o.logger,
		runner:         o.runner,
	}, nil
}

// Platform returns the platform whose layout the Finder searches.
func (f *Finder) Platform() Platform { return f.platform }

// Target returns the requested major version, 0 when unconstrained.
func (f *Finder) Target() int { return f.target }

// Runner returns the probe runner holding helper failures.
func (f *Finder) Runner() *probe.Runner { return f.runner }

// Logger returns the advisory logger.
func (f *Finder) Logger() *log.Logger { return f.logger }

// splitAnchor converts pattern to slash form and separates its absolute
// prefix ("/" or "C:/") from the rest.
func splitAnchor(pattern string) (anchor, rel string) {
	rel = strings.ReplaceAll(pattern, `\`, "/")
	switch {
	case len(rel) >= 3 && rel[1] == ':' && rel[2] == '/':
		return rel[:3], rel[3:]
	case strings.HasPrefix(rel, "/"):
		return "/", rel[1:]
	}
	return "", rel
}

// rooted re-anchors an absolute platform pattern under the Finder's root.
func (f *Finder) rooted(pattern string) string {
	if f.root == "" {
		return pattern
	}
	_, rel := splitAnchor(pattern)
	return filepath.Join(EscapeGlob(f.root), filepath.FromSlash(rel))
}

// directoryPattern is rooted for library directory patterns, which match
// case-insensitively: C:\MSYS*\MinGW*\lib must find C:\msys64\mingw64\lib.
// The anchor and the root stay literal.
func (f *Finder) directoryPattern(pattern string) string {
	anchor, rel := splitAnchor(pattern)
	rel = CaselessGlob(rel)
	if f.root != "" {
		return filepath.Join(EscapeGlob(f.root), filepath.FromSlash(rel))
	}
	return filepath.FromSlash(anchor + rel)
}

// SearchLibclangDirectories returns every file matching filenames in the
// candidate roots, in discovery order. A non-empty override short-circuits
// the search: a matching file yields exactly that file, anything else is
// searched as the only directory.
func (f *Finder) SearchLibclangDirectories(filenames []string, override string) []Match {
	if override != "" {
		name := filepath.Base(override)
		for _, m := range searchDirectories(f.layout, filepath.Dir(override), filenames) {
			if m.Filename == name {
				return []Match{m}
			}
		}
		return searchDirectories(f.layout, override, filenames)
	}

	var found []Match
	if out, ok := f.RunLLVMConfig("--prefix"); ok {
		prefix := probe.FirstLine(out)
		for _, sub := range []string{"bin", "lib", "lib64"} {
			found = append(found, searchDirectories(f.layout, filepath.Join(prefix, sub), filenames)...)
		}
	}

	if f.platform == PlatformDarwin {
		if out, ok := f.RunXcodeSelect("--print-path"); ok {
			dir := filepath.Join(probe.FirstLine(out), "Toolchains", "XcodeDefault.xctoolchain", "usr", "lib")
			found = append(found, searchDirectories(f.layout, dir, filenames)...)
		}
	}

	if paths := os.Getenv(EnvLibrarySearchPath); paths != "" {
		for _, dir := range filepath.SplitList(paths) {
			if dir != "" {
				found = append(found, searchDirectories(f.layout, dir, filenames)...)
			}
		}
	}

	for _, pattern := range f.layout.Directories(f.msvc) {
		for _, dir := range expandDirectories(f.directoryPattern(pattern)) {
			found = append(found, searchDirectories(f.layout, dir, filenames)...)
		}
	}
	return found
}

// RunLLVMConfig runs the resolved llvm-config with args.
func (f *Finder) RunLLVMConfig(args ...string) (string, bool) {
	return f.runner.Run(probe.LLVMConfig, f.LLVMConfigPath(), args...)
}

// RunXcodeSelect runs xcode-select from PATH with args.
func (f *Finder) RunXcodeSelect(args ...string) (string, bool) {
	return f.runner.Run(probe.XcodeSelect, probe.XcodeSelect, args...)
}
