package suggest

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"mediashelf/internal/covers"
	"mediashelf/internal/httpapi/models"
	"mediashelf/internal/httpapi/repository"
)

const maxSuggestions = 5

var (
	ErrDescriptionTooShort = errors.New("please describe what you're looking for")
	ErrNoUsableSuggestions = errors.New("no usable suggestions in model output")
)

// Suggestion is one proposed catalog entry. The Existing* fields are filled
// in when the local catalog already knows the work; SuggestedImageURL is a
// best-effort cover-art lookup for new works.
type Suggestion struct {
	Type        string `json:"type"`
	Title       string `json:"title"`
	Creator     string `json:"creator"`
	Genre       string `json:"genre"`
	ReleaseYear int    `json:"release_year,omitempty"`
	Description string `json:"description"`

	ExistingID        *string `json:"existing_id,omitempty"`
	ExistingCoverURL  *string `json:"existing_cover_url,omitempty"`
	SuggestedImageURL *string `json:"suggested_image_url,omitempty"`
}

// Result is the full suggestion response, naming the model that produced it.
type Result struct {
	Suggestions []Suggestion `json:"suggestions"`
	Model       string       `json:"model"`
}

const instructions = "You are a media database assistant. Reply with ONLY a valid JSON array, no markdown, no explanation, no extra text. " +
	`Each item must have these keys: type ("MOVIE"|"MUSIC"|"GAME"), title (string), creator (string), genre (string), release_year (number), description (string, max 20 words). ` +
	"Only suggest real, existing works."

type Service struct {
	client    *Client
	mediaRepo repository.MediaRepository
	covers    *covers.Fetcher
}

func NewService(client *Client, mediaRepo repository.MediaRepository, coverFetcher *covers.Fetcher) *Service {
	return &Service{client: client, mediaRepo: mediaRepo, covers: coverFetcher}
}

// Configured reports whether the underlying client has a token.
func (s *Service) Configured() bool {
	return s.client.Configured()
}

// Suggest runs the full pipeline: generation, salvage parsing, catalog
// matching, cover lookup. Model output is untrusted input and is validated
// like any request body.
func (s *Service) Suggest(ctx context.Context, description string) (*Result, error) {
	description = strings.TrimSpace(description)
	if len(description) < 3 {
		return nil, ErrDescriptionTooShort
	}

	input := `Suggest 3 to 5 real media items matching: "` + description + `"`
	raw, err := s.client.Generate(ctx, instructions, input)
	if err != nil {
		return nil, err
	}

	suggestions := ExtractJSONArray(raw)
	if len(suggestions) == 0 {
		return nil, ErrNoUsableSuggestions
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	enriched := s.enrich(ctx, suggestions)
	return &Result{Suggestions: enriched, Model: s.client.Model()}, nil
}

// enrich validates each suggestion, matches it against the catalog and
// attaches cover art for works not already covered.
func (s *Service) enrich(ctx context.Context, suggestions []Suggestion) []Suggestion {
	results := make([]Suggestion, 0, len(suggestions))

	for _, sg := range suggestions {
		if sg.Title == "" || sg.Creator == "" {
			continue
		}
		if !models.ValidMediaType(sg.Type) {
			sg.Type = models.MediaTypeGame
		}

		matched := s.matchCatalog(ctx, sg.Title)
		if matched != nil {
			matchedID := matched.ID
			sg.ExistingID = &matchedID
			sg.ExistingCoverURL = matched.CoverURL
		}

		// Fetch cover art only for works not already in the catalog with one
		if matched == nil || matched.CoverURL == nil {
			if url := s.covers.FetchCover(ctx, sg.Title, sg.Creator, sg.Type); url != "" {
				sg.SuggestedImageURL = &url
			}
		}

		results = append(results, sg)
	}

	return results
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9\s]`)

func normalize(s string) string {
	return strings.TrimSpace(nonAlnum.ReplaceAllString(strings.ToLower(s), ""))
}

// matchCatalog looks for an existing entry with a similar title: first a
// substring match on a title prefix, then candidates sharing the first
// meaningful word compared on normalized forms.
func (s *Service) matchCatalog(ctx context.Context, title string) *models.Media {
	prefix := title
	if len(prefix) > 20 {
		prefix = prefix[:20]
	}
	if found, err := s.mediaRepo.FindByTitleContains(ctx, prefix, 1); err == nil && len(found) > 0 {
		return &found[0]
	}

	normTitle := normalize(title)
	firstWord, _, _ := strings.Cut(normTitle, " ")
	if len(firstWord) <= 3 {
		return nil
	}

	candidates, err := s.mediaRepo.FindByTitleContains(ctx, firstWord, 10)
	if err != nil {
		return nil
	}
	for i := range candidates {
		normCandidate := normalize(candidates[i].Title)
		if normCandidate == normTitle || strings.Contains(normCandidate, normTitle) {
			return &candidates[i]
		}
	}
	return nil
}
