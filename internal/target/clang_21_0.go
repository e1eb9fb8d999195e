//go:build clang_21_0

package target

func init() { enabled = append(enabled, 21) }
