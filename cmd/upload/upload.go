package upload

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/wang-sy/PublishYourGame/api"
	"github.com/wang-sy/PublishYourGame/log"

	"github.com/spf13/cobra"
)

var UploadCmd = &cobra.Command{
	Use:   "upload-zip",
	Short: "Publishes a packaged game archive",
	Long: `Uploads a zip package to the publishing service:

	upload-zip --base-url http://publisher:3000 --zip game.zip --title "My Game"

Extra request headers can be passed repeatably:
	upload-zip ... --header 'Authorization: Bearer TOKEN'`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(run(cmd))
	},
}

func run(cmd *cobra.Command) int {
	zipPath, _ := cmd.Flags().GetString("zip")
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	baseURL, _ := cmd.Flags().GetString("base-url")
	timeout, _ := cmd.Flags().GetInt("timeout")
	headerItems, _ := cmd.Flags().GetStringArray("header")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if err := validateZipPath(zipPath); err != nil {
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

	fileBytes, err := os.ReadFile(zipPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to read zip file. %v\n", err)
		return 2
	}

	fields := []api.FormField{{Name: "title", Value: title}}
	if description != "" {
		fields = append(fields, api.FormField{Name: "description", Value: description})
	}

	fileName := filepath.Base(zipPath)
	body, contentType := api.EncodeMultipart(fields, "file", fileName, fileBytes, guessContentType(fileName))

	result, err := client.Post("/api/upload", body, contentType)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return api.Present(os.Stdout, os.Stderr, result)
}

func validateZipPath(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("zip file not found: %s", path)
	}

	if strings.ToLower(filepath.Ext(path)) != ".zip" {
		return fmt.Errorf("zip file must end with .zip: %s", filepath.Base(path))
	}

	return nil
}

func guessContentType(fileName string) string {
	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		return "application/zip"
	}

	return contentType
}

func init() {
	UploadCmd.Flags().String("base-url", "", "Publisher base url, e.g. http://localhost:3000")
	UploadCmd.Flags().String("zip", "", "Path to the game zip file")
	UploadCmd.Flags().String("title", "", "Game title")
	UploadCmd.Flags().String("description", "", "Game description")
	UploadCmd.Flags().Int("timeout", 120, "Request timeout in seconds")
	UploadCmd.Flags().StringArray("header", nil, "Extra request header, repeatable, format: 'Key: Value'")
	UploadCmd.Flags().Bool("verbose", false, "Logs request diagnostics")

	_ = UploadCmd.MarkFlagRequired("zip")
	_ = UploadCmd.MarkFlagRequired("title")
}
