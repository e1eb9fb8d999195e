//go:build clang_3_9

package target

func init() { enabled = append(enabled, 3) }
