// Package clang loads libclang at runtime without cgo, classifies which
// release line was opened and exposes its functions behind typed wrappers.
package clang

import (
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/amikos-tech/pure-clang/search"
)

// loader abstracts the platform dynamic loader.
type loader struct {
	open   func(path string) (uintptr, error)
	symbol func(handle uintptr, name string) (uintptr, error)
	close  func(handle uintptr) error
}

var nativeLoader = loader{open: nativeOpen, symbol: nativeSymbol, close: nativeClose}

// Option configures Load and Open.
type Option func(*loadConfig) error

type loadConfig struct {
	libraryFile string
	search      []search.Option
	finder      *search.Finder
	logger      *log.Logger
	loader      loader
	versionText func(*Library) (string, bool)
	bind        bool
}

// WithLibraryFile opens path directly instead of searching.
func WithLibraryFile(path string) Option {
	return func(cfg *loadConfig) error {
		path = strings.TrimSpace(path)
		if path == "" {
			return fmt.Errorf("library file cannot be empty")
		}
		cfg.libraryFile = path
		return nil
	}
}

// WithSearchOptions forwards options to the library search.
func WithSearchOptions(opts ...search.Option) Option {
	return func(cfg *loadConfig) error {
		cfg.search = append(cfg.search, opts...)
		return nil
	}
}

// WithFinder searches with an existing Finder, reusing its cached
// llvm-config path. It cannot be combined with WithSearchOptions.
func WithFinder(f *search.Finder) Option {
	return func(cfg *loadConfig) error {
		if f == nil {
			return fmt.Errorf("finder cannot be nil")
		}
		cfg.finder = f
		return nil
	}
}

// WithLogger sets the destination for advisory messages.
func WithLogger(logger *log.Logger) Option {
	return func(cfg *loadConfig) error {
		if logger == nil {
			logger = log.New(io.Discard, "", 0)
		}
		cfg.logger = logger
		return nil
	}
}

func resolveLoadConfig(opts ...Option) (loadConfig, error) {
	cfg := loadConfig{
		loader:      nativeLoader,
		versionText: (*Library).clangVersionText,
		bind:        true,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return loadConfig{}, err
		}
	}
	if cfg.finder != nil && len(cfg.search) > 0 {
		return loadConfig{}, fmt.Errorf("WithFinder and WithSearchOptions cannot be combined")
	}
	if cfg.logger == nil {
		cfg.logger = search.DefaultLogger()
	}
	return cfg, nil
}

// Library is an opened libclang. Its symbol table and version are fixed at
// open time, so a Library may be shared between goroutines.
type Library struct {
	path    string
	handle  uintptr
	symbols map[string]uintptr
	version Version
	fns     bindings
	closer  func(uintptr) error

	refs     atomic.Int32
	closeMu  sync.Mutex
	closeErr error
}

// Load searches for libclang and opens the selected file. Each call builds a
// new Finder unless WithFinder supplies one.
func Load(opts ...Option) (*Library, error) {
	cfg, err := resolveLoadConfig(opts...)
	if err != nil {
		return nil, err
	}
	path := cfg.libraryFile
	if path == "" {
		finder := cfg.finder
		if finder == nil {
			if finder, err = search.New(append([]search.Option{search.WithLogger(cfg.logger)}, cfg.search...)...); err != nil {
				return nil, err
			}
		}
		match, err := finder.FindShared()
		if err != nil {
			return nil, err
		}
		path = match.Path()
	}
	return open(path, cfg)
}

// Open loads the libclang file at path without searching.
func Open(path string, opts ...Option) (*Library, error) {
	cfg, err := resolveLoadConfig(opts...)
	if err != nil {
		return nil, err
	}
	return open(path, cfg)
}

func open(path string, cfg loadConfig) (lib *Library, err error) {
	var handle uintptr
	defer func() {
		if r := recover(); r != nil {
			if handle != 0 {
				_ = cfg.loader.close(handle)
			}
			lib = nil
			err = fmt.Errorf("%w: the `libclang` shared library at %s could not be opened: %v", ErrOpenFailed, path, r)
		}
	}()

	handle, err = cfg.loader.open(path)
	if err != nil || handle == 0 {
		return nil, fmt.Errorf("%w: the `libclang` shared library at %s could not be opened: %v", ErrOpenFailed, path, err)
	}

	lib = &Library{
		path:    path,
		handle:  handle,
		symbols: make(map[string]uintptr, len(Functions)),
		closer:  cfg.loader.close,
	}
	for _, fn := range Functions {
		if addr, symErr := cfg.loader.symbol(handle, fn.Name); symErr == nil && addr != 0 {
			lib.symbols[fn.Name] = addr
		}
	}
	if cfg.bind {
		lib.bind()
	}
	lib.version = classify(lib.Available, func() (Version, bool) {
		text, ok := cfg.versionText(lib)
		if !ok {
			return VersionUnsupported, false
		}
		return ParseVersionText(text)
	})
	lib.refs.Store(1)
	return lib, nil
}

// Path returns the file the library was opened from.
func (l *Library) Path() string { return l.path }

// Version returns the detected release line, VersionUnsupported when no
// marker function is exported.
func (l *Library) Version() Version { return l.version }

// Available reports whether the opened library exports name.
func (l *Library) Available(name string) bool {
	_, ok := l.symbols[name]
	return ok
}

// Lookup returns the address of a catalogued function.
func (l *Library) Lookup(name string) (uintptr, bool) {
	addr, ok := l.symbols[name]
	return addr, ok
}

// Missing lists catalogued functions the library does not export.
func (l *Library) Missing() []string {
	var missing []string
	for _, fn := range Functions {
		if !l.Available(fn.Name) {
			missing = append(missing, fn.Name)
		}
	}
	return missing
}

func (l *Library) mustSymbol(name string) uintptr {
	addr, ok := l.symbols[name]
	if !ok {
		l.missing(name)
	}
	return addr
}

func (l *Library) missing(name string) {
	since := VersionUnsupported
	if fn, ok := LookupFunction(name); ok {
		since = fn.Since
	}
	panic(&MissingFunctionError{Name: name, Detected: l.version, Since: since})
}

// Retain adds a reference for another owner, such as a second Registry.
func (l *Library) Retain() *Library {
	l.refs.Add(1)
	return l
}

// Close releases one reference. The module is unmapped when the last
// reference goes away.
func (l *Library) Close() error {
	switch n := l.refs.Add(-1); {
	case n > 0:
		return nil
	case n < 0:
		l.refs.Add(1)
		return ErrClosed
	}
	l.closeMu.Lock()
	defer l.closeMu.Unlock()
	l.closeErr = l.closer(l.handle)
	l.handle = 0
	return l.closeErr
}

// clangVersionText asks the library for its version string. Any missing
// function or null text yields false; the CXString is always disposed.
func (l *Library) clangVersionText() (text string, ok bool) {
	getVersion, found := l.Lookup("clang_getClangVersion")
	if !found || !l.Available("clang_getCString") || !l.Available("clang_disposeString") {
		return "", false
	}
	s := callCXString(getVersion)
	defer l.disposeString(s)
	text = l.cStringOf(s)
	return text, text != ""
}
