package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"stylewriter/internal/guidelines"
)

func guidelinesCmd() *cobra.Command {
	var libraryPath string

	cmd := &cobra.Command{
		Use:   "guidelines",
		Short: "Inspect or build the guideline library",
	}
	cmd.PersistentFlags().StringVar(&libraryPath, "library", "", "library YAML (default: embedded library)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List guideline sections and the default selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lib, err := guidelines.Load(libraryPath)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDEFAULT\tSUMMARY")
			for _, s := range lib.Sections {
				def := ""
				if lib.IsDefault(s.Name) {
					def = "yes"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", s.Name, def, s.Summary)
			}
			return tw.Flush()
		},
	}

	var out string
	importCmd := &cobra.Command{
		Use:   "import <workbook.xlsx>",
		Short: "Build a library YAML from a spreadsheet with Name, Content, Summary and Default columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := guidelines.Load(libraryPath)
			if err != nil {
				return err
			}
			in, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open workbook: %w", err)
			}
			defer func() { _ = in.Close() }()

			lib, err := guidelines.ImportWorkbook(in, base)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}
			if err := lib.Encode(w); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "imported %d sections (%d default)\n", len(lib.Sections), len(lib.DefaultSelected))
			return nil
		},
	}
	importCmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")

	cmd.AddCommand(list, importCmd)
	return cmd
}
