package app

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"eatgo/internal/api"
	"eatgo/internal/config"
	"eatgo/internal/domain"
	"eatgo/internal/services/catalog"
	"eatgo/internal/services/restaurant"
	"eatgo/internal/services/session"
	"eatgo/internal/state"
	"eatgo/internal/store"
)

// Wire bundles the store, services and clients.
type Wire struct {
	Store       *state.Store
	Tokens      domain.TokenStore
	API         domain.APIClient
	Catalog     *catalog.Service
	Restaurants *restaurant.Service
	Session     *session.Service
	HTTP        *http.Client
	Log         *zap.Logger
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	settings := cfg.Settings
	if settings == nil {
		settings = config.Default()
	}
	log := cfg.Log
	if log == nil {
		log = zap.NewNop()
	}

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		timeout, err := settings.APITimeout()
		if err != nil {
			return nil, err
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	// File-based token store, sealed when a passphrase is configured
	var storeOpts []store.Option
	if settings.Storage.Passphrase != "" {
		storeOpts = append(storeOpts, store.WithPassphrase(settings.Storage.Passphrase))
	}
	tokens := store.NewItemFileStore(cfg.Home, storeOpts...)

	apiOpts := []api.Option{
		api.WithHTTPClient(httpClient),
		api.WithLoginBase(settings.LoginBase()),
		api.WithLogger(log.Named("api")),
	}
	if settings.API.RateLimit > 0 {
		apiOpts = append(apiOpts, api.WithRateLimit(settings.API.RateLimit, settings.API.Burst))
	}
	client := api.NewHTTP(settings.API.BaseURL, apiOpts...)

	return &Wire{
		Store:       state.NewStore(state.Initial(), state.WithLogger(log.Named("store"))),
		Tokens:      tokens,
		API:         client,
		Catalog:     catalog.New(client, log.Named("catalog")),
		Restaurants: restaurant.New(client, log.Named("restaurant")),
		Session:     session.New(client, tokens, log.Named("session")),
		HTTP:        httpClient,
		Log:         log,
	}, nil
}

// Restore loads a persisted access token into the state store.
func (w *Wire) Restore(ctx context.Context) error {
	return w.Store.Run(ctx, w.Session.RestoreSession())
}
