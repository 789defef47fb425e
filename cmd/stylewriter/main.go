// Command stylewriter renders, inspects and administers style rewrites
// from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "stylewriter",
		Short:         "Render documents and manage the stylewriter service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(exportCmd(), outlineCmd(), extractCmd(), tokenCmd(), guidelinesCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
