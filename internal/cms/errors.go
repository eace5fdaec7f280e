package cms

import (
	"fmt"
	"net/http"

	"github.com/nfrund/folio/internal/domain"
	"github.com/tidwall/gjson"
)

// APIError is returned for failed CMS calls. StatusCode is zero when the
// request never got a response.
type APIError struct {
	StatusCode  int
	Description string
	Err         error
}

func newAPIError(status int, body []byte) *APIError {
	desc := gjson.GetBytes(body, "error.description").String()
	if desc == "" {
		desc = gjson.GetBytes(body, "message").String()
	}
	if desc == "" {
		desc = http.StatusText(status)
	}
	return &APIError{StatusCode: status, Description: desc}
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("cms request failed: %v", e.Err)
	}
	return fmt.Sprintf("cms returned status %d: %s", e.StatusCode, e.Description)
}

// Unwrap maps transport failures and 5xx responses to domain.ErrSourceUnavailable
// so callers can tell an outage from a bad query.
func (e *APIError) Unwrap() error {
	if e.StatusCode == 0 || e.StatusCode >= 500 {
		if e.Err != nil {
			return fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, e.Err)
		}
		return domain.ErrSourceUnavailable
	}
	return nil
}
