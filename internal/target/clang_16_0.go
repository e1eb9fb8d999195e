//go:build clang_16_0

package target

func init() { enabled = append(enabled, 16) }
