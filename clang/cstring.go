package clang

import (
	"runtime"
	"unsafe"
)

// maxStringLen bounds the terminator scan of library-owned strings.
const maxStringLen = 1 << 20

// goString copies the NUL-terminated string at ptr. A zero pointer yields "".
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	p := unsafe.Pointer(ptr)
	n := 0
	for n < maxStringLen && *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// cString returns a NUL-terminated copy of s and the address of its first
// byte. The slice must stay reachable while native code reads the address.
func cString(s string) ([]byte, uintptr) {
	b := append([]byte(s), 0)
	return b, uintptr(unsafe.Pointer(&b[0]))
}

// cStringArray builds a char** for args. The returned keep value pins every
// backing array and must stay reachable for the duration of the call.
func cStringArray(args []string) (ptr uintptr, keep func()) {
	if len(args) == 0 {
		return 0, func() {}
	}
	strs := make([][]byte, len(args))
	ptrs := make([]uintptr, len(args))
	for i, arg := range args {
		strs[i], ptrs[i] = cString(arg)
	}
	return uintptr(unsafe.Pointer(&ptrs[0])), func() {
		runtime.KeepAlive(strs)
		runtime.KeepAlive(ptrs)
	}
}
