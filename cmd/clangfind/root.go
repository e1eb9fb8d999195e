package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/amikos-tech/pure-clang/config"
	"github.com/amikos-tech/pure-clang/search"
)

const version = "0.1.0"

type globalOptions struct {
	configFile  string
	target      int
	libraryPath string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}
	cmd := &cobra.Command{
		Use:   "clangfind",
		Short: "Locate and identify libclang",
		Long: `clangfind - locate and identify libclang

Runs the same search a pure-clang program runs at startup and prints what it
selects: the shared library, its release line, the llvm-config executable and
the static libraries.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&g.configFile, "config", "", "config file (default is ./pure-clang.yaml, then the user config directory)")
	cmd.PersistentFlags().IntVar(&g.target, "target", 0, "require this libclang major version")
	cmd.PersistentFlags().StringVar(&g.libraryPath, "library-path", "", "libclang file or directory, overrides LIBCLANG_PATH")
	cmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "print version keys and missing functions")

	cmd.AddCommand(newFindCmd(g))
	cmd.AddCommand(newVersionCmd(g))
	cmd.AddCommand(newStaticCmd(g))
	cmd.AddCommand(newLLVMConfigCmd(g))
	return cmd
}

func (g *globalOptions) logger(cmd *cobra.Command) *log.Logger {
	return log.New(cmd.ErrOrStderr(), "pure-clang: ", 0)
}

// searchOptions merges config file, then flags, so flags win.
func (g *globalOptions) searchOptions(cmd *cobra.Command) ([]search.Option, error) {
	cfg, err := config.Load(g.configFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	opts := cfg.SearchOptions()
	if cmd.Flags().Changed("target") {
		opts = append(opts, search.WithTargetVersion(g.target))
	}
	if g.libraryPath != "" {
		opts = append(opts, search.WithLibraryPath(g.libraryPath))
	}
	return append(opts, search.WithLogger(g.logger(cmd))), nil
}

func (g *globalOptions) finder(cmd *cobra.Command) (*search.Finder, error) {
	opts, err := g.searchOptions(cmd)
	if err != nil {
		return nil, err
	}
	return search.New(opts...)
}
