package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available article templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		reg, err := loadRegistry(cfg)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tHTML\tCSS")
		for _, entry := range reg.List() {
			marker := ""
			if entry.ID == cfg.DefaultTemplate {
				marker = " (default)"
			}
			fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n", entry.ID, marker, entry.Name, entry.HTML, entry.CSS)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(templatesCmd)
}
