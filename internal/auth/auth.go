// Package auth authenticates against Spotify with the client-credentials flow.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrMissingCredentials is returned when the client ID or secret is empty.
var ErrMissingCredentials = errors.New("missing Spotify client ID or secret")

// Authenticator produces Spotify API clients authorized as the application.
// Catalog search needs no user scopes, so no browser round-trip is involved.
type Authenticator struct {
	config     *clientcredentials.Config
	cache      *TokenCache // nil disables caching
	httpClient *http.Client
	clientOpts []spotify.ClientOption
	logger     *zap.Logger
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithTokenCache persists the app token in cache between runs.
func WithTokenCache(cache *TokenCache) Option {
	return func(a *Authenticator) {
		a.cache = cache
	}
}

// WithTokenURL overrides Spotify's token endpoint.
func WithTokenURL(url string) Option {
	return func(a *Authenticator) {
		a.config.TokenURL = url
	}
}

// WithAPIBaseURL overrides the Web API base URL. It must end with a slash.
func WithAPIBaseURL(url string) Option {
	return func(a *Authenticator) {
		a.clientOpts = append(a.clientOpts, spotify.WithBaseURL(url))
	}
}

// WithHTTPClient sets the client used for token and API requests.
func WithHTTPClient(c *http.Client) Option {
	return func(a *Authenticator) {
		a.httpClient = c
	}
}

// WithLogger sets the logger for cache diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(a *Authenticator) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an Authenticator for the given application credentials.
// Returns ErrMissingCredentials if either is empty.
func New(clientID, clientSecret string, opts ...Option) (*Authenticator, error) {
	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	a := &Authenticator{
		config: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     spotifyauth.TokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Authenticate returns a Spotify client authorized with an app token.
// A cached token is reused while it is still valid; otherwise a new one is
// requested, so bad credentials fail here rather than on the first search.
// The returned client does not retry rate-limited requests.
func (a *Authenticator) Authenticate(ctx context.Context) (*spotify.Client, error) {
	if a.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	}

	cached := a.loadCached()

	ts := oauth2.ReuseTokenSource(cached, a.config.TokenSource(ctx))
	token, err := ts.Token()
	if err != nil {
		return nil, fmt.Errorf("requesting app token: %w", err)
	}

	if a.cache != nil && (cached == nil || token.AccessToken != cached.AccessToken) {
		if err := a.cache.Save(token); err != nil {
			// Auth succeeded; a cache miss next run is harmless.
			a.logger.Warn("failed to cache token", zap.String("path", a.cache.Path()), zap.Error(err))
		}
	}

	return spotify.New(oauth2.NewClient(ctx, ts), a.clientOpts...), nil
}

// loadCached returns a still-valid cached token, or nil.
func (a *Authenticator) loadCached() *oauth2.Token {
	if a.cache == nil {
		return nil
	}

	token, err := a.cache.Load()
	if err != nil {
		a.logger.Warn("ignoring unreadable token cache", zap.String("path", a.cache.Path()), zap.Error(err))
		return nil
	}
	if token != nil {
		a.logger.Debug("using cached app token", zap.Time("expiry", token.Expiry))
	}
	return token
}
