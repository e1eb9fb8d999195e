package clang

import (
	"sync"

	"github.com/amikos-tech/pure-clang/search"
)

// Registry holds the active Library of one execution context. Each context
// owns its own Registry; a Library moves between registries only through an
// explicit Retain and SetLibrary.
//
// A Registry also owns the Finder its loads search with, so the llvm-config
// path is detected once however often Load is called.
type Registry struct {
	mu     sync.Mutex
	lib    *Library
	load   func(opts ...Option) (*Library, error)
	search []search.Option
	finder *search.Finder
}

// NewRegistry returns an empty Registry whose loads search with opts.
func NewRegistry(opts ...search.Option) *Registry {
	return &Registry{load: Load, search: opts}
}

// Finder returns the Registry's Finder, building it on first use.
func (r *Registry) Finder() (*search.Finder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.finder == nil {
		finder, err := search.New(r.search...)
		if err != nil {
			return nil, err
		}
		r.finder = finder
	}
	return r.finder, nil
}

// Load searches for and opens libclang, replacing and releasing any library
// already held. Unless opts name a file, a Finder or their own search
// options, the Registry's Finder is used.
func (r *Registry) Load(opts ...Option) error {
	cfg, err := resolveLoadConfig(opts...)
	if err != nil {
		return err
	}
	if cfg.libraryFile == "" && cfg.finder == nil && len(cfg.search) == 0 {
		finder, err := r.Finder()
		if err != nil {
			return err
		}
		opts = append([]Option{WithFinder(finder)}, opts...)
	}

	lib, err := r.load(opts...)
	if err != nil {
		return err
	}
	if previous := r.SetLibrary(lib); previous != nil {
		return previous.Close()
	}
	return nil
}

// Unload releases the held library.
func (r *Registry) Unload() error {
	previous := r.SetLibrary(nil)
	if previous == nil {
		return ErrNotLoaded
	}
	return previous.Close()
}

// IsLoaded reports whether a library is held.
func (r *Registry) IsLoaded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lib != nil
}

// Library returns the held library, or nil. The Registry keeps its
// reference; call Retain to hand the library to another owner.
func (r *Registry) Library() *Library {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lib
}

// MustLibrary returns the held library and panics when none is loaded.
func (r *Registry) MustLibrary() *Library {
	lib := r.Library()
	if lib == nil {
		panic(ErrNotLoaded)
	}
	return lib
}

// SetLibrary stores lib, taking over one reference, and returns the previous
// library together with the reference the Registry held on it.
func (r *Registry) SetLibrary(lib *Library) *Library {
	r.mu.Lock()
	defer r.mu.Unlock()
	previous := r.lib
	r.lib = lib
	return previous
}
