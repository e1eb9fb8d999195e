package search

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/bmatcuk/doublestar/v4"
)

// excludedInfix marks the C++ interface library (libclang-cpp.so), which does
// not export the C API.
const excludedInfix = "-cpp."

// Match is a file found by a directory scan.
type Match struct {
	Dir      string
	Filename string
}

// Path joins the directory and filename.
func (m Match) Path() string {
	return filepath.Join(m.Dir, m.Filename)
}

// EscapeGlob escapes glob metacharacters in a literal path using the
// single-character class form ("*" becomes "[*]"). A lone "]" is already
// literal and is left alone. Outside Windows a backslash is an escape
// character to the matcher and is doubled.
func EscapeGlob(path string) string {
	var b strings.Builder
	for _, r := range path {
		switch r {
		case '*', '?', '[', '{', '}':
			b.WriteByte('[')
			b.WriteRune(r)
			b.WriteByte(']')
		case '\\':
			if filepath.Separator != '\\' {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CaselessGlob rewrites every cased letter of a pattern outside bracket
// expressions into a two-letter class, so "lib" becomes "[lL][iI][bB]".
func CaselessGlob(pattern string) string {
	var b strings.Builder
	inClass := false
	for _, r := range pattern {
		switch {
		case inClass:
			b.WriteRune(r)
			if r == ']' {
				inClass = false
			}
		case r == '[':
			inClass = true
			b.WriteRune(r)
		case unicode.ToLower(r) != unicode.ToUpper(r):
			b.WriteByte('[')
			b.WriteRune(unicode.ToLower(r))
			b.WriteRune(unicode.ToUpper(r))
			b.WriteByte(']')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// glob expands pattern, treating a bad pattern as no matches.
func glob(pattern string) []string {
	paths, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil
	}
	return paths
}

// SearchDirectory returns the files in dir matching any of filenames, in the
// order the filename patterns are listed. Unreadable directories yield nothing.
func SearchDirectory(dir string, filenames []string) []Match {
	var out []Match
	for _, pattern := range filenames {
		for _, path := range glob(filepath.Join(EscapeGlob(dir), pattern)) {
			filename := filepath.Base(path)
			if strings.Contains(filename, excludedInfix) {
				continue
			}
			if info, err := os.Stat(path); err != nil || info.IsDir() {
				continue
			}
			out = append(out, Match{Dir: filepath.Dir(path), Filename: filename})
		}
	}
	return out
}

// searchDirectories scans dir and, on layouts where DLLs live next to import
// libraries, the sibling bin directory of a directory named lib.
func searchDirectories(layout Layout, dir string, filenames []string) []Match {
	out := SearchDirectory(dir, filenames)
	if layout.SiblingBin && strings.EqualFold(filepath.Base(dir), "lib") {
		out = append(out, SearchDirectory(filepath.Join(filepath.Dir(dir), "bin"), filenames)...)
	}
	return out
}

// expandDirectories expands directory patterns, keeping only directories.
func expandDirectories(pattern string) []string {
	var out []string
	for _, path := range glob(pattern) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			out = append(out, path)
		}
	}
	return out
}
