package cmd

import (
	"os"

	"github.com/wang-sy/PublishYourGame/cmd/config"
	"github.com/wang-sy/PublishYourGame/cmd/publish"
	"github.com/wang-sy/PublishYourGame/cmd/upload"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "publish-game",
	Short: "Command line interface to publish web games",
	Long: `This CLI publishes a web game bundle to a publishing service.

Publish a packaged archive:
	upload-zip --base-url <URL> --zip <FILE> --title <TITLE>

Publish a directory containing index.html:
	publish-files --base-url <URL> --dir <DIR> --title <TITLE>

Store a publisher endpoint so --base-url can be omitted:
	config add <URL> [APIKEY]`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(upload.UploadCmd)
	rootCmd.AddCommand(publish.PublishCmd)
	rootCmd.AddCommand(config.ConfigCmd)
}
