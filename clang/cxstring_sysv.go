//go:build !windows || !amd64

package clang

import "github.com/ebitengine/purego"

// CXString travels in two integer registers in both directions on System V
// amd64 and AAPCS64.

func callCXString(fn uintptr, args ...uintptr) cxString {
	r1, r2, _ := purego.SyscallN(fn, args...)
	return cxString{data: r1, flags: uint32(r2)}
}

func cxStringArgs(s cxString) ([]uintptr, func()) {
	return []uintptr{s.data, uintptr(s.flags)}, func() {}
}

func callUintptr(fn uintptr, args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(fn, args...)
	return r1
}
