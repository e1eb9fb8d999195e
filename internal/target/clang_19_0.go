//go:build clang_19_0

package target

func init() { enabled = append(enabled, 19) }
