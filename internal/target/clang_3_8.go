//go:build clang_3_8

package target

func init() { enabled = append(enabled, 3) }
