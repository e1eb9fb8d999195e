//go:build clang_9_0

package target

func init() { enabled = append(enabled, 9) }
