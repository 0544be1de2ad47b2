package covers

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const itunesSearchURL = "https://itunes.apple.com/search"

// fetchItunes queries the iTunes Search API (free, no key). Best source for
// music albums and movies. Artwork thumbnails are upscaled to 512x512.
func (f *Fetcher) fetchItunes(ctx context.Context, title, creator, entity, media string) string {
	term := url.QueryEscape(title + " " + creator)
	endpoint := fmt.Sprintf("%s?term=%s&entity=%s&media=%s&limit=3", itunesSearchURL, term, entity, media)

	var parsed struct {
		Results []struct {
			TrackName      string `json:"trackName"`
			CollectionName string `json:"collectionName"`
			ArtworkURL100  string `json:"artworkUrl100"`
		} `json:"results"`
	}
	if err := f.getJSON(ctx, endpoint, &parsed); err != nil {
		return ""
	}
	if len(parsed.Results) == 0 {
		return ""
	}

	// Pick closest title match, fall back to first result
	best := parsed.Results[0]
	for _, r := range parsed.Results {
		name := r.TrackName
		if name == "" {
			name = r.CollectionName
		}
		if titleMatches(name, title) {
			best = r
			break
		}
	}

	if best.ArtworkURL100 == "" {
		return ""
	}
	return strings.Replace(best.ArtworkURL100, "100x100bb", "512x512bb", 1)
}
