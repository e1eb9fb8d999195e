//go:build clang_20_0

package target

func init() { enabled = append(enabled, 20) }
