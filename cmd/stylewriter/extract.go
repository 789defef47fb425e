package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"stylewriter/internal/extract"
	"stylewriter/internal/port"
)

func extractCmd() *cobra.Command {
	var maxMB int64

	cmd := &cobra.Command{
		Use:   "extract <file>...",
		Short: "Print the plain text of PDF, DOCX, PPTX or text files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := make([]port.SourceFile, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				files = append(files, port.SourceFile{Name: filepath.Base(path), Data: data})
			}

			text, err := extract.New(maxMB << 20).ExtractAll(files)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().Int64Var(&maxMB, "max-mb", 25, "per-file size limit in MiB")
	return cmd
}
