//go:build clang_17_0

package target

func init() { enabled = append(enabled, 17) }
