//go:build clang_7_0

package target

func init() { enabled = append(enabled, 7) }
