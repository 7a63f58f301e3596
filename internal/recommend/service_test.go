package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/justestif/moodtunes/internal/mood"
)

// fakeSearcher records the last request and returns canned results.
type fakeSearcher struct {
	tracks []Track
	err    error

	calls     int
	lastQuery string
	lastLimit int
}

func (f *fakeSearcher) SearchTracks(_ context.Context, query string, limit int) ([]Track, error) {
	f.calls++
	f.lastQuery = query
	f.lastLimit = limit
	return f.tracks, f.err
}

func TestService_Recommend(t *testing.T) {
	searcher := &fakeSearcher{
		tracks: []Track{{Name: "Song A", Artist: "Artist X"}},
	}
	svc := NewService(searcher)

	result, err := svc.Recommend(context.Background(), mood.Romantic, Preferences{Genre: "Soul"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	if searcher.lastQuery != "mood:Romantic genre:Soul" {
		t.Errorf("query = %q, want %q", searcher.lastQuery, "mood:Romantic genre:Soul")
	}
	if searcher.lastLimit != SearchLimit {
		t.Errorf("limit = %d, want %d", searcher.lastLimit, SearchLimit)
	}
	if result.Query != searcher.lastQuery {
		t.Errorf("Result.Query = %q, want %q", result.Query, searcher.lastQuery)
	}
	if len(result.Tracks) != 1 || result.Tracks[0].Name != "Song A" {
		t.Errorf("Result.Tracks = %+v, want one track named Song A", result.Tracks)
	}
}

func TestService_Recommend_Errors(t *testing.T) {
	base := errors.New("status 503")

	tests := []struct {
		name string
		err  error
	}{
		{"untagged error becomes provider error", base},
		{"provider error passes through", ProviderError("spotify client initialization failed", base)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			searcher := &fakeSearcher{err: tt.err}
			svc := NewService(searcher, WithLogger(nil))

			result, err := svc.Recommend(context.Background(), mood.Chill, Preferences{})
			if result != nil {
				t.Errorf("Recommend() result = %+v, want nil", result)
			}
			if KindOf(err) != KindProvider {
				t.Errorf("KindOf(err) = %v, want %v", KindOf(err), KindProvider)
			}
			if !errors.Is(err, base) {
				t.Errorf("errors.Is(err, base) = false for %v", err)
			}
			if searcher.calls != 1 {
				t.Errorf("searcher called %d times, want 1 (no retry)", searcher.calls)
			}
		})
	}
}
