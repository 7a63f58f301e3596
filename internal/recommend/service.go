package recommend

import (
	"context"

	"go.uber.org/zap"

	"github.com/justestif/moodtunes/internal/mood"
)

// SearchLimit is the number of tracks requested per search.
const SearchLimit = 10

// UnknownArtist stands in for a track returned without artists.
const UnknownArtist = "Unknown Artist"

// Track is a search result: a track name and its primary artist.
type Track struct {
	Name   string
	Artist string
}

// Searcher runs a track search against a music catalog.
type Searcher interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]Track, error)
}

// Service builds queries and runs them against a Searcher.
type Service struct {
	searcher Searcher
	logger   *zap.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for search diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService creates a Service backed by searcher.
func NewService(searcher Searcher, opts ...Option) *Service {
	s := &Service{
		searcher: searcher,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is the outcome of a recommendation search.
type Result struct {
	Query  string
	Tracks []Track
}

// Recommend searches for up to SearchLimit tracks matching m and prefs.
// Any searcher failure is returned as a ProviderError.
func (s *Service) Recommend(ctx context.Context, m mood.Mood, prefs Preferences) (*Result, error) {
	query := BuildQuery(m, prefs)
	s.logger.Debug("searching catalog", zap.String("query", query), zap.Int("limit", SearchLimit))

	tracks, err := s.searcher.SearchTracks(ctx, query, SearchLimit)
	if err != nil {
		if KindOf(err) == KindProvider {
			return nil, err
		}
		return nil, ProviderError("spotify search query failed", err)
	}

	s.logger.Debug("search complete", zap.Int("tracks", len(tracks)))
	return &Result{Query: query, Tracks: tracks}, nil
}
