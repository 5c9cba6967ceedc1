package factcheck

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/bilgisen/factcheck/internal/logger"
	"github.com/bilgisen/factcheck/internal/metrics"
	"github.com/bilgisen/factcheck/internal/models"
	"github.com/bilgisen/factcheck/internal/utils"
	"github.com/go-playground/validator/v10"
)

// Searcher looks up published fact checks for a claim.
type Searcher interface {
	Search(ctx context.Context, query string) (*SearchResponse, error)
}

// Service validates claims, queries the search API and reshapes the result.
type Service struct {
	searcher Searcher
	mapper   *Mapper
	validate *validator.Validate
	metrics  *metrics.Metrics
}

// NewService wires a searcher and mapper together. m may be nil.
func NewService(searcher Searcher, mapper *Mapper, m *metrics.Metrics) *Service {
	v := validator.New()
	_ = v.RegisterValidation("notblank", notBlank)

	return &Service{
		searcher: searcher,
		mapper:   mapper,
		validate: v,
		metrics:  m,
	}
}

// Check fact-checks a single claim. It returns a *ValidationError for blank
// claims and an *UpstreamError when the search API cannot be used.
func (s *Service) Check(ctx context.Context, req models.FactCheckRequest) (*models.FactCheckResponse, error) {
	log := logger.Get().With().Str("claim_hash", utils.Fingerprint(req.Claim)).Logger()

	if err := s.validate.Struct(req); err != nil {
		s.metrics.ObserveCheck(metrics.OutcomeInvalid, 0)
		return nil, &ValidationError{Detail: DetailEmptyClaim}
	}

	result, err := s.searcher.Search(ctx, req.Claim)
	if err != nil {
		s.metrics.ObserveCheck(metrics.OutcomeUpstreamError, 0)
		log.Error().Err(err).Msg("Fact check search failed")

		var upstreamErr *UpstreamError
		if !errors.As(err, &upstreamErr) {
			err = &UpstreamError{Err: err}
		}
		return nil, err
	}

	if len(result.Claims) == 0 {
		s.metrics.ObserveCheck(metrics.OutcomeNotFound, 0)
		log.Debug().Msg("No fact checks found")
		return models.NotFound(req.Claim), nil
	}

	reviews := s.mapper.Reviews(result.Claims)
	s.metrics.ObserveCheck(metrics.OutcomeFound, len(reviews))
	log.Debug().
		Int("claims", len(result.Claims)).
		Int("reviews", len(reviews)).
		Msg("Fact checks found")

	return &models.FactCheckResponse{
		Claim:   req.Claim,
		Found:   true,
		Reviews: reviews,
	}, nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimFunc(fl.Field().String(), isSpace) != ""
}

// isSpace extends unicode.IsSpace with the ASCII separators U+001C..U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
