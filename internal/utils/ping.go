package utils

import (
	"fmt"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ProbeTimeout bounds a single endpoint probe
const ProbeTimeout = 1500 * time.Millisecond

// ProbeEndpoint issues a GET against baseURL+path and fails unless the answer is 2xx.
// It returns the status code it saw, zero when nothing answered.
func ProbeEndpoint(baseURL, path string, timeout time.Duration) (int, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return 0, fmt.Errorf("invalid URL %q", baseURL)
	}

	target := parsed.JoinPath(path).String()
	code, _, errs := fiber.Get(target).Timeout(timeout).Bytes()
	if len(errs) > 0 {
		return 0, fmt.Errorf("GET %s: %w", target, errs[0])
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		return code, fmt.Errorf("GET %s: unexpected status %d", target, code)
	}
	return code, nil
}
