package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx"
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/document"
	"github.com/ukaji3/tabxlsx-go/pkg/tabxlsx/models"
	"go.uber.org/zap"
)

func runExport(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	scope, err := parseScope(styleScope)
	if err != nil {
		return err
	}

	data, err := readInput(inputPath)
	if err != nil {
		return err
	}
	book, err := document.Decode(data, document.FormatFromPath(inputPath))
	if err != nil {
		return err
	}

	freeze := !noFreeze
	opts := tabxlsx.Options{
		FreezeHeader: &freeze,
		StyleScope:   scope,
		Logger:       logger,
	}
	out, err := exportDocument(book, opts)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("workbook written",
		zap.String("path", outputPath),
		zap.Int("sheets", book.Size()))
	return nil
}

// exportDocument writes a one-table document with the single-table sheet
// naming and anything else as a book.
func exportDocument(book *models.Book, opts tabxlsx.Options) ([]byte, error) {
	if book.Size() == 1 {
		return tabxlsx.ExportTable(book.Tables[0], opts)
	}
	return tabxlsx.ExportBook(book, opts)
}

func runImport(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	headers := !noHeaders
	opts := tabxlsx.Options{
		Headers: &headers,
		Format:  tabxlsx.Format(inputFormat),
		Logger:  logger,
	}
	book := models.NewBook()
	if err := tabxlsx.ImportBook(book, data, opts); err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	format := document.Format(outputFormat)
	if format == "" {
		format = document.FormatFromPath(outputPath)
	}
	out, err := document.Encode(book, format, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if outputPath == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runInspect(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}
	summaries, err := tabxlsx.Inspect(data, tabxlsx.Options{Format: tabxlsx.Format(inputFormat)})
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%s\n", s.Title, s.Rows, s.UsedRange)
	}
	return nil
}

func runDetect(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}
	if !tabxlsx.Detect(data) {
		return fmt.Errorf("%s is not an xlsx workbook", args[0])
	}
	fmt.Fprintln(cmd.OutOrStdout(), "xlsx")
	return nil
}
