package spotify

import (
	"context"

	"go.uber.org/zap"

	"github.com/justestif/moodtunes/internal/auth"
	"github.com/justestif/moodtunes/internal/config"
	"github.com/justestif/moodtunes/internal/recommend"
)

// Connect authenticates with cfg's credentials and returns a ready Client.
// Credential problems are ConfigurationErrors; a failed token request is a
// ProviderError. Extra auth options are applied after the defaults.
func Connect(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts ...auth.Option) (*Client, error) {
	authOpts := []auth.Option{auth.WithLogger(logger)}
	if cfg.CacheToken {
		cache, err := auth.DefaultTokenCache()
		if err != nil {
			return nil, recommend.ConfigurationError("locating token cache", err)
		}
		authOpts = append(authOpts, auth.WithTokenCache(cache))
	}
	authOpts = append(authOpts, opts...)

	authenticator, err := auth.New(cfg.ClientID, cfg.ClientSecret, authOpts...)
	if err != nil {
		return nil, recommend.ConfigurationError("creating authenticator", err)
	}

	api, err := authenticator.Authenticate(ctx)
	if err != nil {
		return nil, recommend.ProviderError("spotify client initialization failed", err)
	}

	return New(api), nil
}
