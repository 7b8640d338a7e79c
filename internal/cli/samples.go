package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/blockview/pkg/render/block/sample"
)

// samplesCommand lists the built-in gallery.
func (c *CLI) samplesCommand() *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "samples",
		Short: "List the built-in sample blocks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printSamples(cmd.OutOrStdout(), namesOnly)
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "print only the sample names, one per line")
	return cmd
}

func printSamples(w io.Writer, namesOnly bool) {
	if namesOnly {
		for _, name := range sample.Names() {
			fmt.Fprintln(w, name)
		}
		return
	}
	var rows [][]string
	for _, s := range sample.All() {
		rows = append(rows, []string{s.Name, s.Description})
	}
	fmt.Fprintln(w, renderTable([]string{"Sample", "Description"}, rows))
}
