package feeds

import (
	"context"
	"disaster-map/models/constants"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// GetJSON issues a GET to url and decodes the body into out. Transport
// failures and non-200 statuses wrap ErrNetwork, decoding failures wrap
// ErrParse.
func GetJSON(ctx context.Context, client Doer, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to prepare request: %w", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debug().Str(constants.LogFeedURL, url).Msg("Fetching feed")
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to fetch data: %w", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: API request failed with status: %d", ErrNetwork, resp.StatusCode)
	}

	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("%w: failed to parse response: %w", ErrParse, err)
	}
	return nil
}

// Parsef builds an error wrapping ErrParse for responses that decode but
// do not have the expected shape.
func Parsef(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}

// Kind names the error kind for logs.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrParse):
		return "parse"
	case errors.Is(err, ErrNetwork):
		return "network"
	default:
		return "unknown"
	}
}
