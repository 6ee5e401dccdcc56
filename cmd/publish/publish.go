package publish

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wang-sy/PublishYourGame/api"
	"github.com/wang-sy/PublishYourGame/bundle"
	"github.com/wang-sy/PublishYourGame/log"

	"github.com/spf13/cobra"
)

var PublishCmd = &cobra.Command{
	Use:   "publish-files",
	Short: "Publishes a game directory file by file",
	Long: `Sends every file under the directory to the publishing service as a
JSON payload. The directory must contain an index.html at its root:

	publish-files --base-url http://publisher:3000 --dir ./dist --title "My Game"

Text files are sent as UTF-8 when --prefer-text is set; binary files are
always Base64 encoded.`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(run(cmd))
	},
}

func run(cmd *cobra.Command) int {
	dir, _ := cmd.Flags().GetString("dir")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	baseURL, _ := cmd.Flags().GetString("base-url")
	timeout, _ := cmd.Flags().GetInt("timeout")
	preferText, _ := cmd.Flags().GetBool("prefer-text")
	headerItems, _ := cmd.Flags().GetStringArray("header")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if err := validatePublishRoot(dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	logger, err := log.NewLogger(verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to create logger. %v\n", err)
		return 2
	}

	client, err := api.GetClient(baseURL, timeout, headerItems, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	files, err := bundle.Collect(dir, preferText)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	payload := bundle.PublishPayload{
		Title:       title,
		Description: description,
		Files:       files,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to encode payload. %v\n", err)
		return 2
	}

	result, err := client.Post("/api/publish", body, "application/json")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return api.Present(os.Stdout, os.Stderr, result)
}

func validatePublishRoot(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("directory not found: %s", dir)
	}

	indexPath := filepath.Join(dir, "index.html")
	indexInfo, err := os.Stat(indexPath)
	if err != nil || !indexInfo.Mode().IsRegular() {
		return fmt.Errorf("index.html is required at directory root: %s", indexPath)
	}

	return nil
}

func init() {
	PublishCmd.Flags().String("base-url", "", "Publisher base url, e.g. http://localhost:3000")
	PublishCmd.Flags().String("dir", "", "Directory containing index.html")
	PublishCmd.Flags().String("title", "", "Game title")
	PublishCmd.Flags().String("description", "", "Game description")
	PublishCmd.Flags().Int("timeout", 120, "Request timeout in seconds")
	PublishCmd.Flags().Bool("prefer-text", false, "Prefer UTF-8 text content for text files; binary files remain Base64")
	PublishCmd.Flags().StringArray("header", nil, "Extra request header, repeatable, format: 'Key: Value'")
	PublishCmd.Flags().Bool("verbose", false, "Logs request diagnostics")

	_ = PublishCmd.MarkFlagRequired("dir")
	_ = PublishCmd.MarkFlagRequired("title")
}
