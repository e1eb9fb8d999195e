package clang

import (
	"errors"
	"sync"
)

// fakeLoader stands in for the platform loader. Symbols resolve to fake,
// never-called addresses.
type fakeLoader struct {
	mu       sync.Mutex
	symbols  map[string]bool
	openErr  error
	panicOn  string
	closed   []uintptr
	handle   uintptr
	symCalls int
}

func newFakeLoader(symbols ...string) *fakeLoader {
	f := &fakeLoader{symbols: map[string]bool{}, handle: 0x1000}
	for _, s := range symbols {
		f.symbols[s] = true
	}
	return f
}

func (f *fakeLoader) loader() loader {
	return loader{
		open: func(path string) (uintptr, error) {
			if f.openErr != nil {
				return 0, f.openErr
			}
			return f.handle, nil
		},
		symbol: func(handle uintptr, name string) (uintptr, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.symCalls++
			if name == f.panicOn {
				panic("segmentation violation")
			}
			if f.symbols[name] {
				return 0xdead0000 + uintptr(f.symCalls), nil
			}
			return 0, errors.New("undefined symbol: " + name)
		},
		close: func(handle uintptr) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.closed = append(f.closed, handle)
			return nil
		},
	}
}

func (f *fakeLoader) closeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.closed)
}

// withLoader swaps the native loader and skips typed bindings, which would
// otherwise wrap the fake addresses.
func withLoader(f *fakeLoader) Option {
	return func(cfg *loadConfig) error {
		cfg.loader = f.loader()
		cfg.bind = false
		return nil
	}
}

func withVersionText(text string, ok bool) Option {
	return func(cfg *loadConfig) error {
		cfg.versionText = func(*Library) (string, bool) { return text, ok }
		return nil
	}
}

func openFake(f *fakeLoader, opts ...Option) (*Library, error) {
	return Open("/usr/lib/llvm-18/lib/libclang.so", append([]Option{withLoader(f), WithLogger(nil)}, opts...)...)
}
