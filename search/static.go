package search

import (
	"fmt"
	"path/filepath"
	"strings"
)

// fallbackClangLibraries is used when the static directory cannot be listed.
var fallbackClangLibraries = []string{
	"clang",
	"clangAST",
	"clangAnalysis",
	"clangBasic",
	"clangDriver",
	"clangEdit",
	"clangFrontend",
	"clangIndex",
	"clangLex",
	"clangParse",
	"clangRewrite",
	"clangSema",
	"clangSerialization",
}

// StaticLibraries is everything a static link against libclang needs.
type StaticLibraries struct {
	// Directory holds the Clang static archives.
	Directory string
	// Marker is the archive that identified Directory.
	Marker string
	// ClangLibraries are the Clang component library names.
	ClangLibraries []string
	// LLVMDirectory is llvm-config --libdir.
	LLVMDirectory string
	// LLVMLibraries are the names reported by llvm-config --libs.
	LLVMLibraries []string
	// LLVMStatic is true only when llvm-config reports --shared-mode static.
	LLVMStatic bool
	// SystemLibraries are the platform libraries LLVM depends on.
	SystemLibraries []string
}

// FindStatic locates a static Clang installation and the LLVM libraries it
// links against. It needs a working llvm-config.
func (f *Finder) FindStatic() (StaticLibraries, error) {
	printer := f.runner.Printer(f.logger)
	defer printer.Flush()

	markers := f.layout.StaticMarkers
	found := f.SearchLibclangDirectories(markers, f.staticPath)
	if len(found) == 0 {
		return StaticLibraries{}, fmt.Errorf(
			"%w: could not find the Clang static libraries (searched for %s), set the `%s` environment variable to a directory containing them",
			ErrNotFound, strings.Join(markers, " or "), EnvStaticLibraryPath,
		)
	}

	libs := StaticLibraries{
		Directory:      found[0].Dir,
		Marker:         found[0].Filename,
		ClangLibraries: f.clangLibraries(found[0].Dir),
	}

	out, ok := f.RunLLVMConfig("--libs", "--link-static")
	if !ok {
		return StaticLibraries{}, fmt.Errorf("%w: llvm-config --libs failed", ErrNotFound)
	}
	libs.LLVMLibraries = ParseLinkerLibraries(out)

	mode, ok := f.RunLLVMConfig("--shared-mode")
	libs.LLVMStatic = ok && strings.TrimSpace(mode) == "static"

	dir, ok := f.RunLLVMConfig("--libdir")
	if !ok {
		return StaticLibraries{}, fmt.Errorf("%w: llvm-config --libdir failed", ErrNotFound)
	}
	libs.LLVMDirectory = strings.TrimSpace(dir)

	libs.SystemLibraries = f.layout.SystemLibraries
	if f.libcxx && f.layout.SystemLibrariesLibcxx != nil {
		libs.SystemLibraries = f.layout.SystemLibrariesLibcxx
	}
	libs.SystemLibraries = append([]string(nil), libs.SystemLibraries...)

	printer.Discard()
	return libs, nil
}

func (f *Finder) clangLibraries(dir string) []string {
	var names []string
	for _, path := range glob(filepath.Join(EscapeGlob(dir), f.layout.StaticComponents)) {
		names = append(names, LibraryName(path))
	}
	if len(names) == 0 {
		return append([]string(nil), fallbackClangLibraries...)
	}
	return names
}

// LibraryName turns an archive path into a linker name:
// "/usr/lib/libLLVMCore.a" becomes "LLVMCore".
func LibraryName(path string) string {
	name := filepath.Base(strings.ReplaceAll(path, `\`, "/"))
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.TrimPrefix(name, "lib")
}

// ParseLinkerLibraries reads llvm-config --libs output, which lists either
// -lNAME flags or full archive paths.
func ParseLinkerLibraries(out string) []string {
	var names []string
	for _, field := range strings.Fields(out) {
		if name, ok := strings.CutPrefix(field, "-l"); ok {
			names = append(names, name)
			continue
		}
		names = append(names, LibraryName(field))
	}
	return names
}
