package search

import "runtime"

// Platform identifies an operating system family with its own libclang layout.
type Platform int

const (
	PlatformUnknown Platform = iota
	PlatformLinux
	PlatformFreeBSD
	PlatformNetBSD
	PlatformOpenBSD
	PlatformDarwin
	PlatformWindows
	PlatformIllumos
	PlatformHaiku
)

var platformNames = map[Platform]string{
	PlatformUnknown: "unknown",
	PlatformLinux:   "linux",
	PlatformFreeBSD: "freebsd",
	PlatformNetBSD:  "netbsd",
	PlatformOpenBSD: "openbsd",
	PlatformDarwin:  "darwin",
	PlatformWindows: "windows",
	PlatformIllumos: "illumos",
	PlatformHaiku:   "haiku",
}

// String returns the GOOS-style name of the platform.
func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return platformNames[PlatformUnknown]
}

// PlatformFor maps a GOOS value onto a Platform.
func PlatformFor(goos string) Platform {
	for p, name := range platformNames {
		if name == goos {
			return p
		}
	}
	// GOOS=solaris shares the illumos layout for our purposes.
	if goos == "solaris" {
		return PlatformIllumos
	}
	return PlatformUnknown
}

// CurrentPlatform returns the Platform of the running binary.
func CurrentPlatform() Platform {
	return PlatformFor(runtime.GOOS)
}

// SearchPattern is a directory glob where libclang is conventionally installed.
type SearchPattern struct {
	Glob string
	// MSVC reports whether the pattern applies to an MSVC environment. Patterns
	// for MinGW/MSYS layouts are skipped when the MSVC environment is selected.
	MSVC bool
}

// Layout is the per-platform data that drives every search.
type Layout struct {
	// LibraryDirectories are listed in order of preference. Version takes
	// precedence over location; location only breaks ties.
	LibraryDirectories []SearchPattern
	// LLVMConfig lists glob patterns for llvm-config executables.
	LLVMConfig []string
	// SharedLibraries are filename globs for the runtime-loadable library.
	SharedLibraries []string
	// StaticMarkers are files whose presence identifies a static install.
	StaticMarkers []string
	// StaticComponents is the filename glob for Clang component archives.
	StaticComponents string
	// SystemLibraries lists system libraries a static link needs.
	SystemLibraries []string
	// SystemLibrariesLibcxx replaces SystemLibraries when linking against libc++.
	SystemLibrariesLibcxx []string
	// SiblingBin makes every searched ".../lib" directory also search ".../bin".
	SiblingBin bool
}

var linuxDirectories = []SearchPattern{
	{Glob: "/usr/local/llvm*/lib*"},
	{Glob: "/usr/local/lib*/*/*"},
	{Glob: "/usr/local/lib*/*"},
	{Glob: "/usr/local/lib*"},
	{Glob: "/usr/lib*/*/*"},
	{Glob: "/usr/lib*/*"},
	{Glob: "/usr/lib*"},
}

var linuxLLVMConfig = []string{
	// Debian/Ubuntu versioned executables
	"/usr/bin/llvm-config-*",
	"/usr/lib/llvm-*/bin/llvm-config",
	"/usr/local/llvm*/bin/llvm-config",
}

var unixStaticMarkers = []string{"libclang.a", "libclangBasic.a"}

var layouts = map[Platform]Layout{
	PlatformLinux: {
		LibraryDirectories: linuxDirectories,
		LLVMConfig:         linuxLLVMConfig,
		// Some distributions ship neither a libclang.so symlink nor a
		// libclang-<v>.so file, only suffix-versioned files.
		SharedLibraries:       []string{"libclang.so", "libclang-*.so", "libclang.so.*", "libclang-*.so.*"},
		StaticMarkers:         unixStaticMarkers,
		StaticComponents:      "libclang*.a",
		SystemLibraries:       []string{"ffi", "ncursesw", "stdc++", "z"},
		SystemLibrariesLibcxx: []string{"c++"},
	},
	PlatformFreeBSD: {
		LibraryDirectories: linuxDirectories,
		LLVMConfig:         linuxLLVMConfig,
		SharedLibraries:    []string{"libclang.so", "libclang.so.*"},
		StaticMarkers:      unixStaticMarkers,
		StaticComponents:   "libclang*.a",
		SystemLibraries:    []string{"ffi", "ncursesw", "c++", "z"},
	},
	PlatformNetBSD: {
		SharedLibraries:  []string{"libclang.so", "libclang.so.*"},
		StaticMarkers:    unixStaticMarkers,
		StaticComponents: "libclang*.a",
	},
	PlatformOpenBSD: {
		SharedLibraries:  []string{"libclang.so", "libclang.so.*"},
		StaticMarkers:    unixStaticMarkers,
		StaticComponents: "libclang*.a",
	},
	PlatformDarwin: {
		LibraryDirectories: []SearchPattern{
			// Homebrew on Apple Silicon
			{Glob: "/opt/homebrew/opt/llvm*/lib"},
			{Glob: "/opt/homebrew/opt/llvm*/lib/llvm*/lib"},
			// Homebrew on Intel
			{Glob: "/usr/local/opt/llvm*/lib"},
			{Glob: "/usr/local/opt/llvm*/lib/llvm*/lib"},
			// Command Line Tools and Xcode
			{Glob: "/Library/Developer/CommandLineTools/usr/lib"},
			{Glob: "/Applications/Xcode.app/Contents/Developer/Toolchains/XcodeDefault.xctoolchain/usr/lib"},
			// MacPorts
			{Glob: "/opt/local/libexec/llvm-*/lib"},
		},
		LLVMConfig: []string{
			"/opt/homebrew/opt/llvm/bin/llvm-config",
			"/opt/homebrew/opt/llvm@*/bin/llvm-config",
			"/usr/local/opt/llvm/bin/llvm-config",
			"/usr/local/opt/llvm@*/bin/llvm-config",
			"/opt/local/libexec/llvm-*/bin/llvm-config",
		},
		SharedLibraries:  []string{"libclang.dylib"},
		StaticMarkers:    unixStaticMarkers,
		StaticComponents: "libclang*.a",
		SystemLibraries:  []string{"ffi", "ncurses", "c++", "z"},
	},
	PlatformWindows: {
		LibraryDirectories: []SearchPattern{
			{Glob: `C:\Users\*\scoop\apps\llvm\current\lib`, MSVC: true},
			{Glob: `C:\MSYS*\MinGW*\lib`},
			{Glob: `C:\MSYS*\clang*\lib`},
			{Glob: `C:\Program Files*\LLVM\lib`, MSVC: true},
			{Glob: `C:\LLVM\lib`, MSVC: true},
			// LLVM installed as a Visual Studio component.
			{Glob: `C:\Program Files*\Microsoft Visual Studio\*\VC\Tools\Llvm\**\lib`, MSVC: true},
		},
		LLVMConfig: []string{
			`C:\Program Files\LLVM\bin\llvm-config.exe`,
			`C:\Program Files*\LLVM\bin\llvm-config.exe`,
		},
		// Official builds ship libclang.dll, MinGW builds clang.dll.
		SharedLibraries:  []string{"clang.dll", "libclang.dll"},
		StaticMarkers:    []string{"libclang.lib", "clangBasic.lib"},
		StaticComponents: "*clang*.lib",
		SiblingBin:       true,
	},
	PlatformIllumos: {
		LibraryDirectories: []SearchPattern{
			{Glob: "/opt/ooce/llvm-*/lib"},
			{Glob: "/opt/ooce/clang-*/lib"},
		},
		LLVMConfig:       []string{"/opt/ooce/llvm-*/bin/llvm-config"},
		SharedLibraries:  []string{"libclang.so"},
		StaticMarkers:    unixStaticMarkers,
		StaticComponents: "libclang*.a",
	},
	PlatformHaiku: {
		LibraryDirectories: []SearchPattern{
			{Glob: "/boot/home/config/non-packaged/develop/lib"},
			{Glob: "/boot/home/config/non-packaged/lib"},
			{Glob: "/boot/system/non-packaged/develop/lib"},
			{Glob: "/boot/system/non-packaged/lib"},
			{Glob: "/boot/system/develop/lib"},
			{Glob: "/boot/system/lib"},
		},
		SharedLibraries:       []string{"libclang.so", "libclang.so.*"},
		StaticMarkers:         unixStaticMarkers,
		StaticComponents:      "libclang*.a",
		SystemLibraries:       []string{"ffi", "ncursesw", "stdc++", "z"},
		SystemLibrariesLibcxx: []string{"c++"},
	},
}

// LayoutFor returns the search layout registered for p. Unknown platforms get
// an empty layout and only the override and helper-derived roots are searched.
func LayoutFor(p Platform) Layout {
	return layouts[p]
}

// Directories returns the directory patterns for the platform, dropping the
// non-MSVC ones when msvc is set.
func (l Layout) Directories(msvc bool) []string {
	out := make([]string, 0, len(l.LibraryDirectories))
	for _, d := range l.LibraryDirectories {
		if d.MSVC || !msvc {
			out = append(out, d.Glob)
		}
	}
	return out
}
