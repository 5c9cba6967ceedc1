package factcheck

import (
	"github.com/bilgisen/factcheck/internal/config"
	"github.com/bilgisen/factcheck/internal/models"
)

// Defaults for review fields missing from the upstream payload.
const (
	DefaultPublisher = "Unknown"
	DefaultTitle     = "No Title"
	DefaultURL       = "#"
	DefaultText      = "No review text"
	DefaultRating    = "No rating"
)

// Mapper flattens search results into ClaimReview records.
type Mapper struct {
	ratingSource string
}

// NewMapper returns a Mapper reading ratings from ratingSource, one of
// config.RatingFromText (the default) or config.RatingFromTextualRating.
func NewMapper(ratingSource string) *Mapper {
	if ratingSource == "" {
		ratingSource = config.RatingFromText
	}
	return &Mapper{ratingSource: ratingSource}
}

// Reviews returns one ClaimReview per nested review, in upstream order.
func (m *Mapper) Reviews(claims []Claim) []models.ClaimReview {
	reviews := make([]models.ClaimReview, 0, len(claims))
	for _, claim := range claims {
		for _, review := range claim.ClaimReview {
			reviews = append(reviews, m.review(review))
		}
	}
	return reviews
}

func (m *Mapper) review(r Review) models.ClaimReview {
	publisher := DefaultPublisher
	if r.Publisher != nil {
		publisher = valueOr(r.Publisher.Name, DefaultPublisher)
	}

	// rating mirrors the review text unless textualRating is configured.
	rating := valueOr(r.Text, DefaultRating)
	if m.ratingSource == config.RatingFromTextualRating {
		rating = valueOr(r.TextualRating, DefaultRating)
	}

	return models.ClaimReview{
		Publisher: publisher,
		Title:     valueOr(r.Title, DefaultTitle),
		URL:       valueOr(r.URL, DefaultURL),
		Text:      valueOr(r.Text, DefaultText),
		Rating:    rating,
	}
}

func valueOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
