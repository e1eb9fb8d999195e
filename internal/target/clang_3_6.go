//go:build clang_3_6

package target

func init() { enabled = append(enabled, 3) }
