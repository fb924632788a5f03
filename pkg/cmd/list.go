package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list the available indicators and their settings",

	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"name", "settings"})

		for _, name := range indicatorNames() {
			t.AppendRow(table.Row{name, registry[name].usage})
		}

		t.Render()
		return nil
	},
}
