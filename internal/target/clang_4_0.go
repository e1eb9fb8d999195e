//go:build clang_4_0

package target

func init() { enabled = append(enabled, 4) }
