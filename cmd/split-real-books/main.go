// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the split-real-books CLI. It splits
// multi-song real-book PDF scans into per-song files according to a YAML
// configuration and, on request, compiles directories of split songs into a
// single bookmarked PDF.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/split-real-books/internal/compile"
	"github.com/pdiddy/split-real-books/internal/config"
	"github.com/pdiddy/split-real-books/internal/split"
	"github.com/pdiddy/split-real-books/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd resolves the run mode from flags: split only (default), compile
// only (--compile-directory), or split followed by compiling every
// configured output directory (--compile-from-config).
var rootCmd = &cobra.Command{
	Use:   "split-real-books",
	Short: "Split real-book PDF scans into per-song files",
	Long: `split-real-books extracts each song declared in the configuration file from
its source real-book scan into an individual PDF, named after the song.

Directories of split songs can be recombined into one compiled PDF with an
alphabetical outline entry per song, either for explicit directories
(--compile-directory) or for every output directory in the configuration
(--compile-from-config).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		compileDirs, err := cmd.Flags().GetStringArray("compile-directory")
		if err != nil {
			return err
		}
		fromConfig, err := cmd.Flags().GetBool("compile-from-config")
		if err != nil {
			return err
		}

		compiledName := viper.GetString("compiled_filename")
		compress := viper.GetBool("compress")
		opts := split.Options{SanitizeReplacement: viper.GetString("sanitize_replacement")}

		if len(compileDirs) > 0 {
			return compile.Directories(compileDirs, compiledName, compress, os.Stdout)
		}

		jobs, err := config.Load(viper.GetString("config_file"))
		if err != nil {
			return err
		}
		if err := split.All(jobs, opts, os.Stdout); err != nil {
			return err
		}
		if fromConfig {
			return compile.Directories(config.OutputDirectories(jobs), compiledName, compress, os.Stdout)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initSettings)

	rootCmd.Flags().StringP("config-file", "c", "config.yaml", "path to the real-book configuration file")
	rootCmd.Flags().StringArray("compile-directory", nil, "compile the PDFs in this directory into a single file; repeatable")
	rootCmd.Flags().Bool("compile-from-config", false, "after splitting, compile every output directory in the configuration")
	rootCmd.Flags().String("compiled-filename", types.DefaultCompiledName, "name of the compiled PDF file")
	rootCmd.Flags().Bool("compress", false, "compress content streams when compiling to reduce file size")
	rootCmd.Flags().String("sanitize-replacement", split.DefaultReplacement, "replacement for filesystem-hostile characters in song names")

	rootCmd.MarkFlagsMutuallyExclusive("compile-directory", "compile-from-config")

	must(viper.BindPFlag("config_file", rootCmd.Flags().Lookup("config-file")))
	must(viper.BindPFlag("compiled_filename", rootCmd.Flags().Lookup("compiled-filename")))
	must(viper.BindPFlag("compress", rootCmd.Flags().Lookup("compress")))
	must(viper.BindPFlag("sanitize_replacement", rootCmd.Flags().Lookup("sanitize-replacement")))
}

// initSettings wires the optional tool-settings file and environment
// overrides. The real-book configuration itself is a data file loaded by
// internal/config; this covers tool defaults only.
func initSettings() {
	viper.SetConfigName("split-real-books")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "split-real-books"))
	}

	viper.SetEnvPrefix("SPLIT_REAL_BOOKS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using settings file:", viper.ConfigFileUsed())
	}
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
