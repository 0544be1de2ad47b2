package covers

import (
	"context"
	"fmt"
	"net/url"
)

const steamSearchURL = "https://store.steampowered.com/api/storesearch/"

// fetchSteam queries the Steam store search (free, no key) and returns the
// portrait library cover (600x900) for the best match.
func (f *Fetcher) fetchSteam(ctx context.Context, title string) string {
	endpoint := fmt.Sprintf("%s?term=%s&cc=us&l=en", steamSearchURL, url.QueryEscape(title))

	var parsed struct {
		Items []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"items"`
	}
	if err := f.getJSON(ctx, endpoint, &parsed); err != nil {
		return ""
	}
	if len(parsed.Items) == 0 {
		return ""
	}

	best := parsed.Items[0]
	for _, item := range parsed.Items {
		if titleMatches(item.Name, title) {
			best = item
			break
		}
	}

	// library_600x900 is the tall portrait box art
	return fmt.Sprintf("https://cdn.akamai.steamstatic.com/steam/apps/%d/library_600x900.jpg", best.ID)
}
