//go:build !windows

package clang

import (
	"github.com/ebitengine/purego"
)

// RTLD_LOCAL keeps libclang's LLVM symbols from clashing with another LLVM
// already mapped into the process.
func nativeOpen(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return 0, err
	}
	return handle, nil
}

func nativeSymbol(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}

func nativeClose(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return purego.Dlclose(handle)
}
