package api

import (
	"fmt"
	"strings"
)

// ParseHeaderItems converts repeatable "Key: Value" arguments into a header
// map. The split happens on the first colon only, so values may contain
// colons themselves. Later duplicates overwrite earlier ones.
func ParseHeaderItems(items []string) (map[string]string, error) {
	headers := make(map[string]string)

	for _, item := range items {
		key, value, found := strings.Cut(item, ":")
		if !found {
			return nil, fmt.Errorf("invalid --header value %q, expected 'Key: Value'", item)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("invalid --header value %q, empty key", item)
		}

		headers[key] = strings.TrimSpace(value)
	}

	return headers, nil
}
