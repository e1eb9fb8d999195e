//go:build windows

package clang

import (
	"golang.org/x/sys/windows"
)

// libclang.dll depends on DLLs shipped next to it, so the directory of the
// DLL itself joins the default search order.
const loadFlags = windows.LOAD_LIBRARY_SEARCH_DLL_LOAD_DIR | windows.LOAD_LIBRARY_SEARCH_DEFAULT_DIRS

func nativeOpen(path string) (uintptr, error) {
	handle, err := windows.LoadLibraryEx(path, 0, loadFlags)
	if err != nil {
		return 0, err
	}
	return uintptr(handle), nil
}

func nativeSymbol(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}

func nativeClose(handle uintptr) error {
	if handle == 0 {
		return nil
	}
	return windows.FreeLibrary(windows.Handle(handle))
}
