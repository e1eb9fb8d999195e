//go:build clang_10_0

package target

func init() { enabled = append(enabled, 10) }
