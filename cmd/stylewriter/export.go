package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"stylewriter/internal/config"
	"stylewriter/internal/domain"
	"stylewriter/internal/report"
	"stylewriter/internal/service"
)

func exportCmd() *cobra.Command {
	var (
		title   string
		formats []string
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "export <text-file>",
		Short: "Render a text file as DOCX, PDF, XLSX or CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}
			exports, err := newExportService()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			parsed := make([]domain.ExportFormat, 0, len(formats))
			for _, name := range formats {
				format, err := domain.ParseExportFormat(name)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				parsed = append(parsed, format)
			}
			downloads, err := exports.ExportMany(cmd.Context(), text, title, parsed)
			if err != nil {
				return err
			}
			for _, dl := range downloads {
				path := filepath.Join(outDir, dl.FileName)
				if err := os.WriteFile(path, dl.Data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d bytes\n", path, len(dl.Data))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&title, "title", "t", "", "document title (default: configured default title)")
	cmd.Flags().StringSliceVarP(&formats, "format", "f", []string{"docx", "pdf"}, "output formats: docx,pdf,xlsx,csv")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory")
	return cmd
}

func outlineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outline <text-file>",
		Short: "Print how each block of a text file would be formatted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(args[0])
			if err != nil {
				return err
			}
			exports, err := newExportService()
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(exports.Outline(text), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

// readInput reads a file, or stdin when path is "-".
func readInput(path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}

func newExportService() (service.ExportService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	exporter := report.NewExporter(report.LoadAssets(cfg.Report.AssetPaths()), report.WithBranding(cfg.Report.Branding()))
	return service.NewExportService(exporter), nil
}
