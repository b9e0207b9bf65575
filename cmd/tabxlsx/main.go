// Package main provides the CLI entry point for tabxlsx.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx"
	"go.uber.org/zap"
)

var (
	outputPath   string
	verbose      bool
	pretty       bool
	styleScope   string
	noFreeze     bool
	noHeaders    bool
	inputFormat  string
	outputFormat string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tabxlsx",
		Short: "Convert tabular documents to and from xlsx workbooks",
		Long: `tabxlsx writes YAML or JSON book documents (tables with headers,
styles, separators, dropdowns and conditional formats) to xlsx workbooks,
and reads workbooks back into documents.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	exportCmd := &cobra.Command{
		Use:   "export [book.yaml|book.json]",
		Short: "Write a book document to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output xlsx path (required)")
	exportCmd.Flags().StringVar(&styleScope, "style-scope", "book", "Style registry scope: book or table")
	exportCmd.Flags().BoolVar(&noFreeze, "no-freeze", false, "Do not freeze header rows")
	_ = exportCmd.MarkFlagRequired("output")

	importCmd := &cobra.Command{
		Use:   "import [input.xlsx]",
		Short: "Read a workbook into a book document",
		Args:  cobra.ExactArgs(1),
		RunE:  runImport,
	}
	importCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	importCmd.Flags().BoolVar(&noHeaders, "no-headers", false, "Treat the first row as data")
	importCmd.Flags().StringVar(&inputFormat, "input-format", "xlsx", "Input workbook format: xlsx or xlsb")
	importCmd.Flags().StringVar(&outputFormat, "output-format", "", "Document format: yaml or json (default: from output extension, else yaml)")
	importCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	inspectCmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "List sheets with their row counts and used ranges",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().StringVar(&inputFormat, "input-format", "xlsx", "Input workbook format: xlsx or xlsb")

	detectCmd := &cobra.Command{
		Use:   "detect [file]",
		Short: "Report whether a file is a readable xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE:  runDetect,
	}

	rootCmd.AddCommand(exportCmd, importCmd, inspectCmd, detectCmd)
	return rootCmd
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func parseScope(s string) (tabxlsx.StyleScope, error) {
	switch s {
	case "book":
		return tabxlsx.ScopeBook, nil
	case "table":
		return tabxlsx.ScopeTable, nil
	default:
		return 0, fmt.Errorf("invalid style scope: %s (must be book or table)", s)
	}
}

func readInput(path string) ([]byte, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	return os.ReadFile(path)
}
