//go:build clang_3_5

package target

func init() { enabled = append(enabled, 3) }
