package view

import (
	"fmt"
	"os"

	"github.com/wang-sy/PublishYourGame/config"

	"github.com/alexeyco/simpletable"
	"github.com/spf13/cobra"
)

var ViewCmd = &cobra.Command{
	Use:   "view",
	Short: "Lists the publisher profiles",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.GetConfiguration()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to retrieve configuration. %v\n", err)
			os.Exit(2)
			return
		}

		table := simpletable.New()

		table.Header = &simpletable.Header{
			Cells: []*simpletable.Cell{
				{Align: simpletable.AlignLeft, Text: "Name"},
				{Align: simpletable.AlignLeft, Text: "Endpoint"},
				{Align: simpletable.AlignLeft, Text: "Api Key"},
			},
		}

		for _, profile := range cfg.Profiles {
			name := profile.Name

			if name == cfg.Profile {
				name = fmt.Sprintf("> %s", name)
			}

			apiKey := ""
			if profile.ApiKey != "" {
				apiKey = "set"
			}

			r := []*simpletable.Cell{
				{Align: simpletable.AlignLeft, Text: name},
				{Align: simpletable.AlignLeft, Text: profile.Endpoint},
				{Align: simpletable.AlignLeft, Text: apiKey},
			}

			table.Body.Cells = append(table.Body.Cells, r)
		}

		table.Footer = &simpletable.Footer{
			Cells: []*simpletable.Cell{
				{Align: simpletable.AlignRight, Span: 3, Text: fmt.Sprintf("Active Profile: %s", cfg.Profile)},
			},
		}

		table.SetStyle(simpletable.StyleCompactLite)
		fmt.Println(table.String())
	},
}
