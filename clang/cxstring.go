package clang

// cxString mirrors CXString: an opaque pointer plus ownership flags. Values
// returned by libclang must be released with clang_disposeString.
type cxString struct {
	data  uintptr
	flags uint32
}

// text reads a CXString through clang_getCString and disposes it.
func (l *Library) text(s cxString) string {
	defer l.disposeString(s)
	return l.cStringOf(s)
}

func (l *Library) cStringOf(s cxString) string {
	addr := l.mustSymbol("clang_getCString")
	args, keep := cxStringArgs(s)
	ptr := callUintptr(addr, args...)
	keep()
	return goString(ptr)
}

func (l *Library) disposeString(s cxString) {
	addr, ok := l.Lookup("clang_disposeString")
	if !ok {
		return
	}
	args, keep := cxStringArgs(s)
	callUintptr(addr, args...)
	keep()
}
