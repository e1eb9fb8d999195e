//go:build clang_13_0

package target

func init() { enabled = append(enabled, 13) }
