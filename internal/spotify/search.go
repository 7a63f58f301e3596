package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/justestif/moodtunes/internal/recommend"
)

// SearchTracks runs a track search and returns at most limit results.
// A response without a tracks page is treated as no results.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]recommend.Track, error) {
	result, err := c.api.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("searching tracks: %w", err)
	}

	if result == nil || result.Tracks == nil {
		return []recommend.Track{}, nil
	}

	tracks := make([]recommend.Track, 0, len(result.Tracks.Tracks))
	for _, ft := range result.Tracks.Tracks {
		tracks = append(tracks, convertTrack(ft))
	}
	return tracks, nil
}

// convertTrack keeps the track name and its first listed artist.
func convertTrack(ft spotify.FullTrack) recommend.Track {
	artist := recommend.UnknownArtist
	if len(ft.Artists) > 0 && ft.Artists[0].Name != "" {
		artist = ft.Artists[0].Name
	}

	return recommend.Track{
		Name:   ft.Name,
		Artist: artist,
	}
}
