//go:build clang_12_0

package target

func init() { enabled = append(enabled, 12) }
