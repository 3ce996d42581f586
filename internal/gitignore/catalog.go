// Package gitignore resolves and selects .gitignore templates from the
// github/gitignore catalog.
package gitignore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/mizutanix/repoinit/internal/debug"
)

const (
	// DefaultCatalogURL lists the contents of the github/gitignore repository.
	DefaultCatalogURL = "https://api.github.com/repos/github/gitignore/contents"
	// DefaultRawBaseURL serves raw template content from the default branch.
	DefaultRawBaseURL = "https://raw.githubusercontent.com/github/gitignore/main"

	// templateSuffix is the file suffix catalog entries must carry.
	templateSuffix = ".gitignore"

	// NoTemplate is the sentinel selection meaning "empty ignore file".
	NoTemplate = "None"
)

// fallbackCatalog is used whenever the remote listing cannot be fetched.
// Kept as a static, pre-sorted constant; it may drift from the live catalog.
var fallbackCatalog = []string{
	"C", "C++", "CMake", "CSharp", "Dart", "Elixir",
	"Go", "Haskell", "Java", "Kotlin", "Laravel", "Node",
	"OCaml", "PHP", "Python", "R", "Rails", "Ruby",
	"Rust", "Scala", "Swift", "TeX", "Unity", "VisualStudio",
}

// Resolver fetches the template catalog and template content.
type Resolver struct {
	// HTTPClient is the client used for catalog and content requests.
	HTTPClient *http.Client
	// CatalogURL is the listing endpoint.
	CatalogURL string
	// RawBaseURL is the base URL for raw template content.
	RawBaseURL string
}

// NewResolver creates a resolver against the github/gitignore repository.
func NewResolver() *Resolver {
	return &Resolver{
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		CatalogURL: DefaultCatalogURL,
		RawBaseURL: DefaultRawBaseURL,
	}
}

// catalogEntry is one object in the GitHub contents listing.
type catalogEntry struct {
	Name string `json:"name"`
}

// Catalog returns the ordered list of selectable template names.
//
// On any fetch or decode failure the fixed fallback list is returned, so
// the result is always non-empty and sorted. Errors never escape this
// boundary; the reason for falling back is only visible in debug output.
func (r *Resolver) Catalog(ctx context.Context) []string {
	names, err := r.fetchCatalog(ctx)
	if err != nil {
		debug.Debug("catalog fetch failed, using fallback list: %v", err)
		return append([]string(nil), fallbackCatalog...)
	}
	return names
}

func (r *Resolver) fetchCatalog(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", r.CatalogURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")

	resp, err := r.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var entries []catalogEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode catalog listing: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name, templateSuffix) {
			continue
		}
		name := strings.TrimSuffix(e.Name, templateSuffix)
		// The .github entry is repository plumbing, not a template; surface
		// it under the same name the selector treats as "no template".
		// Renamed before sorting so the returned list stays sorted.
		if name == ".github" {
			name = NoTemplate
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("catalog listing contained no templates")
	}

	sort.Strings(names)

	return names, nil
}
