package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"webstart/pkg/catalog"
	"webstart/pkg/config"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List available templates",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}

		client := catalog.NewClient(cfg.Registry.APIURL, cfg.Registry.Owner, cfg.Registry.Topic, cfg.Registry.Token)
		templates, err := client.FetchTemplates(cmd.Context())
		if err != nil {
			return err
		}

		if len(templates) == 0 {
			fmt.Println("No templates available.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "INDEX\tNAME\tDESCRIPTION\tURL")
		for i, t := range templates {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i, t.Name, t.Description, t.RepositoryURL)
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
