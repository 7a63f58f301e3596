// Package spotify provides a wrapper around the Spotify Web API.
package spotify

import (
	"github.com/zmb3/spotify/v2"

	"github.com/justestif/moodtunes/internal/recommend"
)

// Client wraps the Spotify API client with catalog search.
type Client struct {
	api *spotify.Client
}

var _ recommend.Searcher = (*Client)(nil)

// New creates a new Spotify client wrapper.
// The underlying client should already be authenticated.
func New(api *spotify.Client) *Client {
	return &Client{api: api}
}
