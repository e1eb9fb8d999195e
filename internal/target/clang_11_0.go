//go:build clang_11_0

package target

func init() { enabled = append(enabled, 11) }
