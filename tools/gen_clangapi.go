// Package main prints catalog rows for clang/functions.go from libclang's C
// headers (clang-c/Index.h and friends).
//
// Usage:
//
//	go run ./tools/gen_clangapi.go <since> <header.h>...
//
// <since> is the Go constant written into new rows, e.g. V20_0. Functions
// already in clang.Functions are skipped, so running the tool against the
// headers of a new release prints only what that release added.
//
// NOTE: This uses line-oriented regex parsing of CINDEX_LINKAGE declarations.
// It copes with declarations split over several lines but not with macros
// that expand to declarations.
package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/amikos-tech/pure-clang/clang"
)

var (
	linkagePattern = regexp.MustCompile(`^\s*CINDEX_LINKAGE\b`)
	declPattern    = regexp.MustCompile(`^CINDEX_LINKAGE\s+(?:CINDEX_DEPRECATED\s+)?(.+?)\b(clang_\w+)\s*\((.*)\)\s*(?:CINDEX_DEPRECATED\s*)?;$`)
	spacePattern   = regexp.MustCompile(`\s+`)
	paramPattern   = regexp.MustCompile(`\s*\b\w+$`)
	sincePattern   = regexp.MustCompile(`^V\d+_\d+$`)
)

// Declaration is one exported function found in a header.
type Declaration struct {
	Name      string
	Signature string
	Header    string
	LineNum   int
}

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <since, e.g. V20_0> <header.h>...\n", os.Args[0])
		os.Exit(1)
	}

	since := os.Args[1]
	if !sincePattern.MatchString(since) {
		fmt.Fprintf(os.Stderr, "Invalid release constant %q, want e.g. V20_0\n", since)
		os.Exit(1)
	}

	var decls []Declaration
	for _, header := range os.Args[2:] {
		found, err := parseHeader(header)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to parse %s: %v\n", header, err)
			os.Exit(1)
		}
		decls = append(decls, found...)
	}

	seen := make(map[string]bool)
	var fresh []Declaration
	for _, d := range decls {
		if seen[d.Name] {
			fmt.Fprintf(os.Stderr, "Warning: duplicate declaration of %s (%s:%d)\n", d.Name, d.Header, d.LineNum)
			continue
		}
		seen[d.Name] = true
		if _, ok := clang.LookupFunction(d.Name); ok {
			continue
		}
		fresh = append(fresh, d)
	}

	// Every catalogued function should still be declared somewhere.
	for _, fn := range clang.Functions {
		if !seen[fn.Name] {
			fmt.Fprintf(os.Stderr, "Warning: %s is catalogued but not declared in the given headers\n", fn.Name)
		}
	}

	fmt.Printf("// Generated on: %s\n", time.Now().Format(time.RFC3339))
	fmt.Printf("// Parsed %d declarations, %d not yet catalogued\n", len(decls), len(fresh))
	for _, d := range fresh {
		fmt.Printf("\t{Name: %q, Signature: %q, Since: %s},\n", d.Name, d.Signature, since)
	}
}

func parseHeader(path string) ([]Declaration, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var (
		decls   []Declaration
		pending strings.Builder
		start   int
		lineNum int
	)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		if pending.Len() == 0 {
			if !linkagePattern.MatchString(line) {
				continue
			}
			start = lineNum
		}
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		pending.WriteString(line)
		pending.WriteByte(' ')
		if !strings.Contains(line, ";") {
			continue
		}

		text := strings.TrimSpace(spacePattern.ReplaceAllString(pending.String(), " "))
		pending.Reset()
		m := declPattern.FindStringSubmatch(text)
		if m == nil {
			// Typedefs and variables exported with CINDEX_LINKAGE.
			continue
		}
		decls = append(decls, Declaration{
			Name:      m[2],
			Signature: signature(m[1], m[3]),
			Header:    path,
			LineNum:   start,
		})
	}
	return decls, scanner.Err()
}

// signature renders "ret (param types)" with parameter names dropped, the
// form used in the catalog.
func signature(ret, params string) string {
	ret = strings.TrimSpace(ret)
	params = strings.TrimSpace(params)
	if params == "" || params == "void" {
		return joinReturn(ret, "void")
	}
	parts := strings.Split(params, ",")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		// Strip the parameter name unless the declaration only names a type.
		if strings.Contains(p, " ") || strings.Contains(p, "*") {
			if stripped := strings.TrimSpace(paramPattern.ReplaceAllString(p, "")); stripped != "" && !strings.HasSuffix(stripped, "struct") && !strings.HasSuffix(stripped, "enum") && stripped != "const" && stripped != "unsigned" {
				p = stripped
			}
		}
		parts[i] = p
	}
	return joinReturn(ret, strings.Join(parts, ", "))
}

func joinReturn(ret, params string) string {
	if strings.HasSuffix(ret, "*") {
		return ret + "(" + params + ")"
	}
	return ret + " (" + params + ")"
}
