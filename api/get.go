package api

import (
	"fmt"
	"time"

	"github.com/wang-sy/PublishYourGame/config"

	"go.uber.org/zap"
)

// GetClient builds the client for a command invocation. An explicit base
// URL always wins; without one the active profile from the configuration is
// used and its API key becomes an x-api-key default header. Caller-supplied
// headers are parsed here and override any default.
func GetClient(baseURL string, timeoutSeconds int, headerItems []string, logger *zap.Logger) (*Client, error) {
	extraHeaders, err := ParseHeaderItems(headerItems)
	if err != nil {
		return nil, err
	}

	headers := make(map[string]string)

	if baseURL == "" {
		profile, err := config.GetProfile()
		if err != nil {
			return nil, err
		}

		if profile == nil {
			return nil, fmt.Errorf("base url is required. Pass --base-url or add a profile with the `config add` command")
		}

		baseURL = profile.Endpoint

		if profile.ApiKey != "" {
			headers["x-api-key"] = profile.ApiKey
		}
	}

	for key, value := range extraHeaders {
		headers[key] = value
	}

	return NewClient(baseURL, time.Duration(timeoutSeconds)*time.Second, headers, logger), nil
}
