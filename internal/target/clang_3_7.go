//go:build clang_3_7

package target

func init() { enabled = append(enabled, 3) }
