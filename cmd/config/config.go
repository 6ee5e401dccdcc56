package config

import (
	"github.com/wang-sy/PublishYourGame/cmd/config/add"
	"github.com/wang-sy/PublishYourGame/cmd/config/rm"
	"github.com/wang-sy/PublishYourGame/cmd/config/use"
	"github.com/wang-sy/PublishYourGame/cmd/config/view"

	"github.com/spf13/cobra"
)

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Manages publisher profiles",
	Long: `Add a publisher endpoint as a profile:

Add the profile using the host name as profile name.
	config add <URL> [APIKEY]

Add the profile using a specified profile name
	config add <URL> [APIKEY] -n <PROFILE_NAME>

Use a specific profile:
	config use <PROFILE_NAME>`,
}

func init() {
	ConfigCmd.AddCommand(add.AddCmd)
	ConfigCmd.AddCommand(rm.RmCmd)
	ConfigCmd.AddCommand(use.UseCmd)
	ConfigCmd.AddCommand(view.ViewCmd)
}
