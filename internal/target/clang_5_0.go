//go:build clang_5_0

package target

func init() { enabled = append(enabled, 5) }
