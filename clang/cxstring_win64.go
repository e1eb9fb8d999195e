//go:build windows && amd64

package clang

import (
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// The Microsoft x64 convention returns a CXString through a hidden pointer in
// the first argument register and passes one by reference to a caller copy.

func callCXString(fn uintptr, args ...uintptr) cxString {
	out := new(cxString)
	purego.SyscallN(fn, append([]uintptr{uintptr(unsafe.Pointer(out))}, args...)...)
	runtime.KeepAlive(out)
	return *out
}

func cxStringArgs(s cxString) ([]uintptr, func()) {
	tmp := new(cxString)
	*tmp = s
	return []uintptr{uintptr(unsafe.Pointer(tmp))}, func() { runtime.KeepAlive(tmp) }
}

func callUintptr(fn uintptr, args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(fn, args...)
	return r1
}
