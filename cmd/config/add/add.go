package add

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/wang-sy/PublishYourGame/config"

	"github.com/spf13/cobra"
)

var AddCmd = &cobra.Command{
	Use:   "add <BASE_URL> [API_KEY]",
	Short: "Adds a new publisher profile.",
	Args:  cobra.MatchAll(cobra.RangeArgs(1, 2), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		endpoint, err := url.Parse(args[0])
		if err != nil || endpoint.Host == "" {
			fmt.Fprintf(os.Stderr, "Error: Base url is not a valid URL.\n")
			os.Exit(2)
			return
		}

		name := strings.ToLower(endpoint.Host)

		nameFlag := cmd.Flag("name")
		if nameFlag != nil {
			value := nameFlag.Value.String()
			if value != "" {
				name = value
			}
		}

		apiKey := ""
		if len(args) > 1 {
			apiKey = args[1]
		}

		cfg, err := config.GetConfiguration()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to retrieve configuration. %v\n", err)
			os.Exit(2)
			return
		}

		for _, profile := range cfg.Profiles {
			if profile.Name == name {
				fmt.Fprintf(os.Stderr, "Error: A profile with this name already exists.\n")
				os.Exit(2)
				return
			}
		}

		cfg.Profile = name
		cfg.Profiles = append(cfg.Profiles, config.Profile{
			Name:     name,
			Endpoint: endpoint.String(),
			ApiKey:   apiKey,
		})

		err = config.StoreConfiguration(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to store configuration. %v\n", err)
			os.Exit(2)
			return
		}

		fmt.Printf("Added profile using the name '%s'\n", name)
	},
}

func init() {
	AddCmd.Flags().StringP("name", "n", "", "Adds an optional name for the profile")
}
