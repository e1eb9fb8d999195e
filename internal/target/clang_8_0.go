//go:build clang_8_0

package target

func init() { enabled = append(enabled, 8) }
