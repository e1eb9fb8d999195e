//go:build clang_22_0

package target

func init() { enabled = append(enabled, 22) }
