package inference

import (
	"fmt"
	"strings"

	"github.com/thushan/recap/internal/core/domain"
)

// KindRaw marks a body that was returned verbatim because it wasn't JSON
const KindRaw = "raw"

// Normalize turns a decoded response into the single string shown to the user
func Normalize(resp domain.Response, errorPrefix string) string {
	switch r := resp.(type) {
	case domain.GeneratedTextList:
		return strings.TrimSpace(r.First())
	case domain.GeneratedTextRecord:
		return strings.TrimSpace(r.Text)
	case domain.ErrorRecord:
		return formatRemoteError(errorPrefix, r.Message)
	case domain.ChoicesRecord:
		return strings.TrimSpace(r.Content())
	case domain.Opaque:
		return r.Text
	default:
		// unreachable while the variant set is closed
		return fmt.Sprint(resp)
	}
}

// NormalizeBody decodes then normalizes. A body that isn't JSON is a valid,
// if degenerate, result and comes back unchanged.
func NormalizeBody(body []byte, errorPrefix string) (text string, kind string) {
	resp, err := domain.DecodeResponse(body)
	if err != nil {
		return string(body), KindRaw
	}
	return Normalize(resp, errorPrefix), resp.Kind().String()
}

func formatRemoteError(prefix, message string) string {
	return fmt.Sprintf("%s: %s", prefix, message)
}

func formatStatusError(prefix string, status int, body string) string {
	return fmt.Sprintf("%s: %d - %s", prefix, status, body)
}
