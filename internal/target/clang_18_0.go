//go:build clang_18_0

package target

func init() { enabled = append(enabled, 18) }
