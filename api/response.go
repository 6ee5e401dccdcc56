package api

import (
	"encoding/json"
	"fmt"
	"io"
)

// Payload is the decoded response body: either a parsed JSON object or the
// raw text of a body that was not valid JSON. Keeping the two variants
// apart stops raw text from ever being probed as if it were parsed JSON.
type Payload struct {
	object map[string]any
	raw    string
	parsed bool
}

// DecodePayload never fails: an empty body decodes to an empty object and
// anything that is not valid JSON becomes the unparsed variant.
func DecodePayload(body []byte) Payload {
	if len(body) == 0 {
		return Payload{object: map[string]any{}, parsed: true}
	}

	var object map[string]any
	if err := json.Unmarshal(body, &object); err != nil {
		return Payload{raw: string(body)}
	}

	return Payload{object: object, parsed: true}
}

// Object returns the payload as a JSON object. The unparsed variant is
// presented as {"raw": <text>} so that stdout stays machine-readable.
func (p Payload) Object() map[string]any {
	if !p.parsed {
		return map[string]any{"raw": p.raw}
	}

	return p.object
}

// Envelope is the publisher's response shape with every field independently
// present or absent.
type Envelope struct {
	Success bool
	GameID  string
	GameURL string
	Error   string
}

// Envelope probes the payload for the {success, data: {id, gameUrl}, error}
// shape. Missing or differently-typed fields read as absent; success
// follows the original truthiness rules for bools, numbers and strings.
func (p Payload) Envelope() Envelope {
	object := p.Object()

	envelope := Envelope{
		Success: isTruthy(object["success"]),
		Error:   scalarString(object["error"]),
	}

	if data, ok := object["data"].(map[string]any); ok {
		envelope.GameID = scalarString(data["id"])
		envelope.GameURL = scalarString(data["gameUrl"])
	}

	return envelope
}

func isTruthy(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	case float64:
		return v != 0
	default:
		return false
	}
}

func scalarString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}

// Present writes the full payload as indented JSON to out and the
// diagnostic lines to diag, and returns the process exit code.
//
// A success:false body under a non-error HTTP status exits 0: the service
// uses that combination for soft rejections, and only a status >= 400 is a
// hard failure.
func Present(out, diag io.Writer, result *Result) int {
	pretty, err := json.MarshalIndent(result.Payload.Object(), "", "  ")
	if err != nil {
		pretty = []byte("{}")
	}

	fmt.Fprintln(out, string(pretty))

	envelope := result.Payload.Envelope()
	requestID := result.Headers["x-request-id"]

	if envelope.Success {
		if envelope.GameID != "" {
			fmt.Fprintf(diag, "game_id: %s\n", envelope.GameID)
		}
		if envelope.GameURL != "" {
			fmt.Fprintf(diag, "game_url: %s\n", envelope.GameURL)
		}
		if requestID != "" {
			fmt.Fprintf(diag, "request_id: %s\n", requestID)
		}
		return 0
	}

	if envelope.Error != "" {
		fmt.Fprintf(diag, "error: %s\n", envelope.Error)
	}
	if requestID != "" {
		fmt.Fprintf(diag, "request_id: %s\n", requestID)
	}

	if result.Status >= 400 {
		return 1
	}

	return 0
}
