package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/amikos-tech/pure-clang/clang"
	"github.com/amikos-tech/pure-clang/search"
)

func newFindCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "find",
		Short: "Print the libclang shared library that would be loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := g.finder(cmd)
			if err != nil {
				return err
			}
			match, err := f.FindShared()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, match.Path())
			if g.verbose {
				fmt.Fprintf(out, "directory: %s\n", match.Dir)
				fmt.Fprintf(out, "filename:  %s\n", match.Filename)
				fmt.Fprintf(out, "key:       %s\n", search.LibraryVersion(match.Dir, match.Filename))
			}
			return nil
		},
	}
}

func newVersionCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Load libclang and print its detected release line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := g.searchOptions(cmd)
			if err != nil {
				return err
			}
			lib, err := clang.Load(clang.WithSearchOptions(opts...), clang.WithLogger(g.logger(cmd)))
			if err != nil {
				return err
			}
			defer lib.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:    %s\n", lib.Path())
			fmt.Fprintf(out, "version: %s\n", lib.Version())
			if lib.Available("clang_getClangVersion") && lib.Available("clang_getCString") {
				fmt.Fprintf(out, "clang:   %s\n", lib.ClangVersion())
			}
			if g.verbose {
				missing := lib.Missing()
				fmt.Fprintf(out, "missing: %d of %d functions\n", len(missing), len(clang.Functions))
				for _, name := range missing {
					fn, _ := clang.LookupFunction(name)
					fmt.Fprintf(out, "  %s (since %s)\n", name, fn.Since)
				}
			}
			return nil
		},
	}
}

func newStaticCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "static",
		Short: "Print the libraries a static link against libclang needs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := g.finder(cmd)
			if err != nil {
				return err
			}
			libs, err := f.FindStatic()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "directory: %s\n", libs.Directory)
			fmt.Fprintf(out, "clang:     %s\n", strings.Join(libs.ClangLibraries, " "))
			fmt.Fprintf(out, "llvm dir:  %s\n", libs.LLVMDirectory)
			kind := "shared"
			if libs.LLVMStatic {
				kind = "static"
			}
			fmt.Fprintf(out, "llvm (%s): %s\n", kind, strings.Join(libs.LLVMLibraries, " "))
			fmt.Fprintf(out, "system:    %s\n", strings.Join(libs.SystemLibraries, " "))
			return nil
		},
	}
}

func newLLVMConfigCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "llvm-config",
		Short: "Print the llvm-config executable the search would run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := g.finder(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), f.LLVMConfigPath())
			if g.verbose {
				if out, ok := f.RunLLVMConfig("--version"); ok {
					fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", out)
				}
			}
			return nil
		},
	}
}
