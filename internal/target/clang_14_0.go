//go:build clang_14_0

package target

func init() { enabled = append(enabled, 14) }
