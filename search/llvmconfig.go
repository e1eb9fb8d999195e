package search

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/amikos-tech/pure-clang/internal/probe"
)

// LLVMConfigPath resolves the llvm-config executable: explicit option,
// LLVM_CONFIG_PATH, the cached autodetected path, then plain "llvm-config"
// looked up on PATH.
func (f *Finder) LLVMConfigPath() string {
	if f.llvmConfigPath != "" {
		return f.llvmConfigPath
	}
	if path, ok := os.LookupEnv(EnvLLVMConfigPath); ok {
		return path
	}
	if path := f.detectLLVMConfig(); path != "" {
		return path
	}
	return probe.LLVMConfig
}

// detectLLVMConfig runs discovery once per Finder and caches the answer,
// including a negative one.
func (f *Finder) detectLLVMConfig() string {
	f.detectOnce.Do(func() {
		if f.autodetect {
			f.detected = f.findLLVMConfig()
		}
	})
	return f.detected
}

func (f *Finder) findLLVMConfig() string {
	if out, ok := f.runner.Try(probe.LLVMConfig, "--version"); ok {
		major, parsed := ParseMajor(out)
		if f.target == 0 || !parsed || major == f.target {
			return probe.LLVMConfig
		}
	}

	var candidates []Candidate
	for _, pattern := range f.layout.LLVMConfig {
		for _, path := range glob(f.rooted(pattern)) {
			if info, err := os.Stat(path); err != nil || info.IsDir() {
				continue
			}
			key := ExtractVersion(path, LLVMConfigNaming)
			if key.IsSentinel() {
				if out, ok := f.runner.Try(path, "--version"); ok {
					if major, ok := ParseMajor(out); ok {
						key = Key{uint32(major)}
					}
				}
			}
			candidates = append(candidates, Candidate{
				Match:   Match{Dir: filepath.Dir(path), Filename: filepath.Base(path)},
				Version: key,
			})
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	selected, err := Select(candidates, f.target)
	if err != nil {
		var mismatch *VersionMismatchError
		if errors.As(err, &mismatch) {
			f.logger.Printf(
				"warning: could not find llvm-config for v%d (available: %s). Install LLVM %d or set %s.",
				mismatch.Target, strings.Join(mismatch.Available, ", "), mismatch.Target, EnvLLVMConfigPath,
			)
		}
		return ""
	}
	if major, ok := selected.Version.Major(); ok && !selected.Version.IsSentinel() {
		f.logger.Printf("warning: auto-detected llvm-config (v%d) at: %s", major, selected.Path())
	} else {
		f.logger.Printf("warning: auto-detected llvm-config at: %s", selected.Path())
	}
	return selected.Path()
}
