package gitignore

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/mizutanix/repoinit/internal/debug"
)

// FetchTemplate downloads the raw content of a template by catalog name.
// The name must use the catalog's original casing; the content URL is
// case-sensitive.
func (r *Resolver) FetchTemplate(ctx context.Context, name string) (string, error) {
	url := fmt.Sprintf("%s/%s%s", r.RawBaseURL, name, templateSuffix)
	debug.DebugValue("template content URL", url)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", url, err)
	}

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch template %q: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch template %q: unexpected status code %d", name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read template %q: %w", name, err)
	}

	return string(body), nil
}
