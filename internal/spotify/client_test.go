package spotify

import (
	"testing"

	"github.com/zmb3/spotify/v2"
)

func TestConvertTrack(t *testing.T) {
	tests := []struct {
		name           string
		track          spotify.FullTrack
		expectedName   string
		expectedArtist string
	}{
		{
			name: "single artist",
			track: spotify.FullTrack{
				SimpleTrack: spotify.SimpleTrack{
					ID:   "track123",
					Name: "Test Song",
					Artists: []spotify.SimpleArtist{
						{Name: "Artist One"},
					},
				},
			},
			expectedName:   "Test Song",
			expectedArtist: "Artist One",
		},
		{
			name: "multiple artists keeps the first",
			track: spotify.FullTrack{
				SimpleTrack: spotify.SimpleTrack{
					ID:   "track456",
					Name: "Collab Track",
					Artists: []spotify.SimpleArtist{
						{Name: "Artist A"},
						{Name: "Artist B"},
						{Name: "Artist C"},
					},
				},
			},
			expectedName:   "Collab Track",
			expectedArtist: "Artist A",
		},
		{
			name: "no artists",
			track: spotify.FullTrack{
				SimpleTrack: spotify.SimpleTrack{
					ID:      "track000",
					Name:    "Unknown Track",
					Artists: []spotify.SimpleArtist{},
				},
			},
			expectedName:   "Unknown Track",
			expectedArtist: "Unknown Artist",
		},
		{
			name: "blank first artist",
			track: spotify.FullTrack{
				SimpleTrack: spotify.SimpleTrack{
					ID:      "track789",
					Name:    "Nameless",
					Artists: []spotify.SimpleArtist{{Name: ""}},
				},
			},
			expectedName:   "Nameless",
			expectedArtist: "Unknown Artist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertTrack(tt.track)

			if got.Name != tt.expectedName {
				t.Errorf("Name = %q, want %q", got.Name, tt.expectedName)
			}
			if got.Artist != tt.expectedArtist {
				t.Errorf("Artist = %q, want %q", got.Artist, tt.expectedArtist)
			}
		})
	}
}
