//go:build clang_23_0

package target

func init() { enabled = append(enabled, 23) }
