package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/outliner/internal/analyzer"
	"github.com/dgallion1/outliner/internal/outline"
	"github.com/spf13/cobra"
)

var (
	flagFormat      string
	flagMaxDepth    int
	flagLineNumbers bool
	flagPrivate     bool
	flagComments    bool
	flagJSON        bool
)

var rootCmd = &cobra.Command{
	Use:   "outline <file>",
	Short: "Print the structural outline of a document or source file",
	Long: `outline analyzes a single file (markdown, HTML, CSV, JSON, YAML, source
code, DOCX, PDF, plain text) and prints its hierarchical outline, either as
an indented tree or as JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		format := flagFormat
		if format == "" {
			format = analyzer.ForFile(path)
		}
		if format == "" {
			return fmt.Errorf("cannot determine format of %s; use --format", path)
		}

		opts := outline.Options{
			MaxDepth:           flagMaxDepth,
			IncludeLineNumbers: flagLineNumbers,
			FileName:           baseName(path),
			IncludePrivate:     flagPrivate,
			IncludeComments:    flagComments,
		}

		forest, err := analyzer.Default().Analyze(content, format, opts)
		if err != nil {
			return err
		}

		if flagJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(forest)
		}
		printTree(cmd.OutOrStdout(), forest, 0)
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "Format discriminator (default: file extension)")
	rootCmd.Flags().IntVarP(&flagMaxDepth, "max-depth", "d", 0, "Prune nodes deeper than this (0 = unlimited)")
	rootCmd.Flags().BoolVarP(&flagLineNumbers, "line-numbers", "l", false, "Include source line numbers")
	rootCmd.Flags().BoolVarP(&flagPrivate, "private", "p", false, "Include private declarations")
	rootCmd.Flags().BoolVarP(&flagComments, "comments", "c", false, "Include comments and code blocks")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit JSON instead of a tree")
}

func printTree(w io.Writer, forest []*outline.Node, indent int) {
	for _, n := range forest {
		line := ""
		if n.Line > 0 {
			line = fmt.Sprintf(":%d", n.Line)
		}
		fmt.Fprintf(w, "%s%s [%s]%s\n", strings.Repeat("  ", indent), n.Title, n.Type, line)
		printTree(w, n.Children, indent+1)
	}
}

func baseName(path string) string {
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		return path[i+1:]
	}
	return path
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
