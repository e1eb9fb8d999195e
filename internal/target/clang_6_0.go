//go:build clang_6_0

package target

func init() { enabled = append(enabled, 6) }
