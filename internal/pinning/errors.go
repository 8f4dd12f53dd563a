package pinning

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/meigma/ipfsdeploy/core"
)

// maxErrorBody bounds how much of an error response is quoted back.
const maxErrorBody = 512

// errNoResult indicates the service answered without a content identifier.
var errNoResult = errors.New("service returned no content identifier")

// mapStatus converts a non-2xx service response to an error, mapping
// authentication failures to core.ErrUnauthorized.
func mapStatus(service string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: %w: %s", service, core.ErrUnauthorized, msg)
	default:
		return fmt.Errorf("%s: unexpected status %d: %s", service, resp.StatusCode, msg)
	}
}
