package search

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Sentinel is the version component assigned to candidates that carry no
// version information. It ranks an unversioned install above any versioned one.
const Sentinel = 999

// Key is a version as a sequence of numbers, compared lexicographically.
type Key []uint32

// Compare returns -1, 0 or +1. A key that is a prefix of another sorts first.
func (k Key) Compare(other Key) int {
	for i := 0; i < len(k) && i < len(other); i++ {
		switch {
		case k[i] < other[i]:
			return -1
		case k[i] > other[i]:
			return 1
		}
	}
	switch {
	case len(k) < len(other):
		return -1
	case len(k) > len(other):
		return 1
	}
	return 0
}

// Major returns the leading component.
func (k Key) Major() (int, bool) {
	if len(k) == 0 {
		return 0, false
	}
	return int(k[0]), true
}

// IsSentinel reports whether the key is the unversioned sentinel.
func (k Key) IsSentinel() bool {
	return len(k) == 1 && k[0] == Sentinel
}

func (k Key) String() string {
	if k.IsSentinel() {
		return "unversioned"
	}
	parts := make([]string, len(k))
	for i, n := range k {
		parts[i] = strconv.FormatUint(uint64(n), 10)
	}
	return strings.Join(parts, ".")
}

// Naming describes how a tool embeds its version in a file or directory name.
type Naming struct {
	// File is the executable base name, versioned as "<File>-<version>".
	File string
	// Root is the install directory base name, versioned as "<Root>@<v>",
	// "<Root>-<v>" or "<Root>/<v>".
	Root string
}

// LLVMConfigNaming covers llvm-config-17, llvm@18/ and llvm-17/.
var LLVMConfigNaming = Naming{File: "llvm-config", Root: "llvm"}

// libclangNaming only uses the directory rules; file names are handled by
// LibraryVersion.
var libclangNaming = Naming{Root: "llvm"}

// ExtractVersion derives a version key from the path of an executable.
func ExtractVersion(path string, n Naming) Key {
	if n.File != "" {
		if rest, ok := strings.CutPrefix(baseName(path), n.File+"-"); ok {
			if key := numbers(rest); len(key) > 0 {
				return key
			}
			return Key{0}
		}
	}
	if key := componentVersion(path, n.Root); key != nil {
		return key
	}
	return Key{Sentinel}
}

// LibraryVersion derives a version key from the location of a libclang file.
func LibraryVersion(dir, filename string) Key {
	if rest, ok := strings.CutPrefix(filename, "libclang.so."); ok {
		return numbersOrZero(rest)
	}
	if strings.HasPrefix(filename, "libclang-") && len(filename) >= len("libclang-.so") {
		return numbersOrZero(filename[len("libclang-") : len(filename)-len(".so")])
	}
	if key := componentVersion(dir, libclangNaming.Root); key != nil {
		return key
	}
	return Key{Sentinel}
}

// componentVersion looks for "<root>@<v>" or "<root>-<v>" path components,
// or a version component directly below a bare "<root>" one as in Homebrew's
// Cellar/llvm/18.1.3.
func componentVersion(path, root string) Key {
	if root == "" {
		return nil
	}
	parts := splitPath(path)
	for i, c := range parts {
		rest, ok := strings.CutPrefix(c, root+"@")
		if !ok {
			rest, ok = strings.CutPrefix(c, root+"-")
		}
		if !ok && c == root && i+1 < len(parts) && startsWithDigit(parts[i+1]) {
			rest, ok = parts[i+1], true
		}
		if !ok {
			continue
		}
		if key := numbers(rest); len(key) > 0 {
			return key
		}
	}
	return nil
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// numbers keeps the dot-separated parts that parse as integers.
func numbers(s string) Key {
	var key Key
	for _, part := range strings.Split(s, ".") {
		if n, err := strconv.ParseUint(part, 10, 32); err == nil {
			key = append(key, uint32(n))
		}
	}
	return key
}

// numbersOrZero maps every dot-separated part to an integer, 0 when it does
// not parse.
func numbersOrZero(s string) Key {
	parts := strings.Split(s, ".")
	key := make(Key, len(parts))
	for i, part := range parts {
		if n, err := strconv.ParseUint(part, 10, 32); err == nil {
			key[i] = uint32(n)
		}
	}
	return key
}

// splitPath splits on both separators so Windows-style paths can be
// classified on any host.
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' })
}

func baseName(path string) string {
	parts := splitPath(path)
	if len(parts) == 0 {
		return filepath.Base(path)
	}
	return parts[len(parts)-1]
}

var leadingVersion = regexp.MustCompile(`\d+(\.\d+){0,2}`)

// ParseMajor extracts the major version from text such as llvm-config
// --version output ("18.1.3", "17.0.6git").
func ParseMajor(text string) (int, bool) {
	raw := leadingVersion.FindString(text)
	if raw == "" {
		return 0, false
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return 0, false
	}
	return int(v.Major()), true
}
