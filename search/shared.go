package search

import (
	"bytes"
	"debug/elf"
	"debug/macho"
	"debug/pe"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// NotFoundError reports that no valid shared library matched any pattern.
type NotFoundError struct {
	Filenames []string
	Variable  string
	Invalid   []string
}

func (e *NotFoundError) Error() string {
	quoted := make([]string, len(e.Filenames))
	for i, name := range e.Filenames {
		quoted[i] = strconv.Quote(name)
	}
	msg := fmt.Sprintf(
		"couldn't find any valid shared libraries matching: [%s], set the `%s` environment variable to a path where one of these files can be found",
		strings.Join(quoted, ", "), e.Variable,
	)
	if len(e.Invalid) > 0 {
		msg += fmt.Sprintf(" (invalid: [%s])", strings.Join(e.Invalid, ", "))
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// SharedFilenames returns the runtime library filename patterns of the
// Finder's platform.
func (f *Finder) SharedFilenames() []string {
	return append([]string(nil), f.layout.SharedLibraries...)
}

// FindShared locates the libclang shared library to load. Helper failures are
// reported through the logger only when nothing is found.
func (f *Finder) FindShared() (Match, error) {
	printer := f.runner.Printer(f.logger)
	defer printer.Flush()

	filenames := f.SharedFilenames()
	var (
		valid   []Candidate
		invalid []string
		seen    = map[string]bool{}
	)
	for _, m := range f.SearchLibclangDirectories(filenames, f.libraryPath) {
		path := m.Path()
		if seen[path] {
			continue
		}
		seen[path] = true
		if err := ValidateLibrary(f.platform, path); err != nil {
			invalid = append(invalid, fmt.Sprintf("%s: %v", path, err))
			continue
		}
		valid = append(valid, Candidate{Match: m, Version: LibraryVersion(m.Dir, m.Filename)})
	}
	if len(valid) == 0 {
		return Match{}, &NotFoundError{Filenames: filenames, Variable: EnvLibraryPath, Invalid: invalid}
	}

	if f.target > 0 {
		for i := range valid {
			valid[i].Version = resolveLibraryVersion(valid[i])
		}
	}
	selected, err := Select(valid, f.target)
	if err != nil {
		return Match{}, err
	}
	printer.Discard()
	return selected.Match, nil
}

// resolveLibraryVersion follows symlinks of an unversioned candidate such as
// libclang.so -> libclang-17.so.1 to recover its version.
func resolveLibraryVersion(c Candidate) Key {
	if !c.Version.IsSentinel() {
		return c.Version
	}
	resolved, err := filepath.EvalSymlinks(c.Path())
	if err != nil {
		return c.Version
	}
	if key := LibraryVersion(filepath.Dir(resolved), filepath.Base(resolved)); !key.IsSentinel() {
		return key
	}
	return c.Version
}

var errInvalidHeader = errors.New("invalid header")

// ValidateLibrary checks that path starts with an executable header the
// running process could load on platform p.
func ValidateLibrary(p Platform, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	switch p {
	case PlatformWindows:
		return validatePE(file)
	case PlatformDarwin:
		return validateMachO(file)
	default:
		return validateELF(file)
	}
}

func readHeader(r io.Reader, n int) ([]byte, error) {
	header := make([]byte, n)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidHeader, err)
	}
	return header, nil
}

func validateELF(r io.Reader) error {
	header, err := readHeader(r, elf.EI_NIDENT)
	if err != nil {
		return err
	}
	if !bytes.Equal(header[:4], []byte(elf.ELFMAG)) {
		return fmt.Errorf("%w: invalid ELF header", errInvalidHeader)
	}
	class := elf.Class(header[elf.EI_CLASS])
	switch {
	case strconv.IntSize == 32 && class != elf.ELFCLASS32:
		return fmt.Errorf("%w: invalid ELF class (64-bit)", errInvalidHeader)
	case strconv.IntSize == 64 && class != elf.ELFCLASS64:
		return fmt.Errorf("%w: invalid ELF class (32-bit)", errInvalidHeader)
	}
	return nil
}

func validateMachO(r io.Reader) error {
	header, err := readHeader(r, 4)
	if err != nil {
		return err
	}
	le := binary.LittleEndian.Uint32(header)
	be := binary.BigEndian.Uint32(header)
	switch {
	case be == macho.MagicFat:
		return nil
	case le == macho.Magic64 || be == macho.Magic64:
		if strconv.IntSize == 32 {
			return fmt.Errorf("%w: invalid Mach-O (64-bit)", errInvalidHeader)
		}
		return nil
	case le == macho.Magic32 || be == macho.Magic32:
		if strconv.IntSize == 64 {
			return fmt.Errorf("%w: invalid Mach-O (32-bit)", errInvalidHeader)
		}
		return nil
	}
	return fmt.Errorf("%w: invalid Mach-O header", errInvalidHeader)
}

func validatePE(r io.ReadSeeker) error {
	if _, err := r.Seek(0x3c, io.SeekStart); err != nil {
		return err
	}
	raw, err := readHeader(r, 4)
	if err != nil {
		return err
	}
	if _, err := r.Seek(int64(binary.LittleEndian.Uint32(raw)), io.SeekStart); err != nil {
		return err
	}
	header, err := readHeader(r, 6)
	if err != nil {
		return err
	}
	if !bytes.Equal(header[:4], []byte("PE\x00\x00")) {
		return fmt.Errorf("%w: invalid DLL header", errInvalidHeader)
	}
	machine := binary.LittleEndian.Uint16(header[4:])
	switch {
	case strconv.IntSize == 32 && (machine == pe.IMAGE_FILE_MACHINE_AMD64 || machine == pe.IMAGE_FILE_MACHINE_ARM64):
		return fmt.Errorf("%w: invalid DLL (64-bit)", errInvalidHeader)
	case strconv.IntSize == 64 && (machine == pe.IMAGE_FILE_MACHINE_I386 || machine == pe.IMAGE_FILE_MACHINE_ARMNT):
		return fmt.Errorf("%w: invalid DLL (32-bit)", errInvalidHeader)
	}
	return nil
}
