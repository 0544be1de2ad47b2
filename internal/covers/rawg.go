package covers

import (
	"context"
	"fmt"
	"net/url"
)

const rawgSearchURL = "https://api.rawg.io/api/games"

// fetchRawg queries RAWG.io (free API key, covers PC and all consoles).
// Returns "" when no key is configured.
func (f *Fetcher) fetchRawg(ctx context.Context, title string) string {
	if f.rawgAPIKey == "" {
		return ""
	}

	endpoint := fmt.Sprintf("%s?search=%s&key=%s&page_size=3",
		rawgSearchURL, url.QueryEscape(title), url.QueryEscape(f.rawgAPIKey))

	var parsed struct {
		Results []struct {
			Name            string  `json:"name"`
			BackgroundImage *string `json:"background_image"`
		} `json:"results"`
	}
	if err := f.getJSON(ctx, endpoint, &parsed); err != nil {
		return ""
	}
	if len(parsed.Results) == 0 {
		return ""
	}

	best := parsed.Results[0]
	for _, r := range parsed.Results {
		if titleMatches(r.Name, title) {
			best = r
			break
		}
	}

	if best.BackgroundImage == nil {
		return ""
	}
	return *best.BackgroundImage
}
