// Package covers looks up cover artwork for catalog entries from free
// storefront APIs. Every lookup is best-effort: failures and misses return
// an empty URL, never an error the caller must handle.
package covers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	// Each provider call gets its own short deadline so one slow storefront
	// cannot stall an enrichment pass.
	perCallTimeout = 5 * time.Second

	// Storefront APIs are unauthenticated; stay well under their informal limits
	rateLimit = 5
	rateBurst = 10
)

// Fetcher resolves cover art by media type. GAME prefers RAWG (all
// platforms, needs an API key) and falls back to Steam; MUSIC and MOVIE use
// the iTunes Search API.
type Fetcher struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	rawgAPIKey  string
}

func NewFetcher(rawgAPIKey string) *Fetcher {
	return &Fetcher{
		rawgAPIKey:  rawgAPIKey,
		rateLimiter: rate.NewLimiter(rate.Limit(rateLimit), rateBurst),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// FetchCover returns the best cover image URL for a work, or "" when no
// provider had one.
func (f *Fetcher) FetchCover(ctx context.Context, title, creator, mediaType string) string {
	switch mediaType {
	case "GAME":
		if url := f.fetchRawg(ctx, title); url != "" {
			return url
		}
		return f.fetchSteam(ctx, title)
	case "MUSIC":
		return f.fetchItunes(ctx, title, creator, "album", "music")
	default: // MOVIE
		return f.fetchItunes(ctx, title, creator, "movie", "movie")
	}
}

// getJSON performs a rate-limited GET with a per-call deadline and decodes
// the JSON body into target.
func (f *Fetcher) getJSON(ctx context.Context, url string, target any) error {
	if err := f.rateLimiter.Wait(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, perCallTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}

	return json.NewDecoder(resp.Body).Decode(target)
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return http.StatusText(e.code)
}

// titleMatches reports whether a provider result name looks like the work we
// asked for. Loose on purpose: storefront titles carry edition suffixes.
func titleMatches(resultName, wanted string) bool {
	norm := strings.ToLower(wanted)
	if len(norm) > 15 {
		norm = norm[:15]
	}
	return strings.Contains(strings.ToLower(resultName), norm)
}
