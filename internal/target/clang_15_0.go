//go:build clang_15_0

package target

func init() { enabled = append(enabled, 15) }
