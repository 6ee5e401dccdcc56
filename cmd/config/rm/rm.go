package rm

import (
	"fmt"
	"os"
	"slices"

	"github.com/wang-sy/PublishYourGame/config"

	"github.com/spf13/cobra"
)

var RmCmd = &cobra.Command{
	Use:   "rm <PROFILE_NAME>",
	Short: "Removes a profile.",
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
		for i, profile := range cfg.Profiles {
			if profile.Name == name {
				cfg.Profiles = slices.Delete(cfg.Profiles, i, i+1)
				hasProfile = true
				break
			}
		}

		if !hasProfile {
			fmt.Fprintf(os.Stderr, "Error: Profile with the name '%s' does not exist.\n", name)
			os.Exit(2)
			return
		}

		if cfg.Profile == name {
			cfg.Profile = ""
		}

		err = config.StoreConfiguration(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: Failed to store configuration. %v\n", err)
			os.Exit(2)
			return
		}

		fmt.Printf("Profile %s removed.\n", name)
	},
}
