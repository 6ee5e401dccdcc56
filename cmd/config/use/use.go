package use

import (
	"fmt"
	"os"

	"github.com/wang-sy/PublishYourGame/config"

	"github.com/spf13/cobra"
)

var UseCmd = &cobra.Command{
	Use:   "use <PROFILE_NAME>",
	Short: "Makes a profile the active one.",
	Args:  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]

		cfg, err := config.GetConfiguration()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to retrieve configuration. %v\n", err)
			os.Exit(2)
			return
		}

		hasProfile := false
		for _, profile := range cfg.Profiles {
			if profile.Name == name {
				hasProfile = true
				break
			}
		}

		if !hasProfile {
			fmt.Fprintf(os.Stderr, "Error: Profile with the name '%s' does not exist.\n", name)
			os.Exit(2)
			return
		}

		cfg.Profile = name

		err = config.StoreConfiguration(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to store configuration. %v\n", err)
			os.Exit(2)
			return
		}

		fmt.Printf("Profile %s set active.\n", name)
	},
}
