// StreamPick - Mood-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/streampick

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/streampick/docs" // swagger document
	"github.com/tomtom215/streampick/internal/api"
	"github.com/tomtom215/streampick/internal/catalog"
	"github.com/tomtom215/streampick/internal/config"
	"github.com/tomtom215/streampick/internal/logging"
	"github.com/tomtom215/streampick/internal/metrics"
	"github.com/tomtom215/streampick/internal/recommend"
	"github.com/tomtom215/streampick/internal/subscribers"
	"github.com/tomtom215/streampick/internal/supervisor"
	"github.com/tomtom215/streampick/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("StreamPick exited with error")
	}
}

func run() error {
	started := time.Now()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Bool("contentstack_enabled", cfg.Contentstack.Enabled).
		Str("contentstack_api_key", logging.SanitizeToken(cfg.Contentstack.APIKey)).
		Str("contentstack_delivery_token", logging.SanitizeToken(cfg.Contentstack.DeliveryToken)).
		Bool("subscribers_enabled", cfg.Subscribers.Enabled).
		Str("contentstack_management_token", logging.SanitizeToken(cfg.Subscribers.ManagementToken)).
		Msg("Starting StreamPick")

	engine, err := recommend.NewEngine(engineConfig(&cfg.Recommend), logging.WithComponent("recommend"))
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}

	chain := newCatalogChain(&cfg.Contentstack)

	deps := api.HandlerDeps{
		Config:      cfg,
		Engine:      engine,
		Source:      chain.source,
		Version:     version,
		Subscribers: newSubscriberService(cfg),
	}
	// Typed nils must not reach the handler's interface fields.
	if chain.cache != nil {
		deps.Snapshots = chain.cache
	}
	if chain.breaker != nil {
		deps.Breaker = chain.breaker
	}
	handler, err := api.NewHandler(deps)
	if err != nil {
		return fmt.Errorf("create API handler: %w", err)
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	metrics.SetAppInfo(version)

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddCatalogService(services.NewUptimeService(started, 15*time.Second))
	if chain.cache != nil {
		tree.AddCatalogService(services.NewCatalogRefreshService(chain.cache, cfg.Contentstack.RefreshInterval))
		logging.Info().
			Str("content_type", cfg.Contentstack.ContentType).
			Dur("refresh_interval", cfg.Contentstack.RefreshInterval).
			Dur("cache_ttl", cfg.Contentstack.CacheTTL).
			Msg("Contentstack catalog refresher added")
	} else {
		logging.Info().Msg("Contentstack disabled, /recommendations and /movies will answer CATALOG_UNAVAILABLE")
	}
	if !cfg.Subscribers.Enabled {
		logging.Info().Msg("Subscriber roster disabled, /subscribers will answer SUBSCRIBERS_UNAVAILABLE")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	err = tree.Serve(ctx)

	if unstopped, reportErr := tree.UnstoppedServiceReport(); reportErr == nil {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}
	logging.Info().Msg("StreamPick stopped")
	return nil
}

// engineConfig overlays the operator-facing settings on the engine defaults.
// Zero counts keep the defaults. DurationSlack is copied as is: the config
// layer supplies its default and rejects negatives, and zero is a legal
// window meaning no runtime past the viewing time.
func engineConfig(rc *config.RecommendConfig) *recommend.Config {
	ec := recommend.DefaultConfig()
	if rc.MaxFeatures > 0 {
		ec.Vectorizer.MaxFeatures = rc.MaxFeatures
	}
	if rc.TopSimilar > 0 {
		ec.TopSimilar = rc.TopSimilar
	}
	if rc.DurationSlack >= 0 {
		ec.Duration.Slack = rc.DurationSlack
	}
	if rc.DefaultTopN > 0 {
		ec.DefaultTopN = rc.DefaultTopN
	}
	return ec
}

// catalogChain is the Contentstack source stack: client, breaker, cache.
type catalogChain struct {
	source  catalog.Source
	cache   *catalog.CachedSource
	breaker *catalog.BreakerSource
}

func newCatalogChain(cs *config.ContentstackConfig) catalogChain {
	if !cs.Enabled {
		return catalogChain{source: catalog.DisabledSource{}}
	}
	breaker := catalog.NewBreakerSource(
		catalog.NewContentstackClient(cs),
		catalog.DefaultBreakerConfig("contentstack"),
	)
	cache := catalog.NewCachedSource(breaker, cs.CacheTTL).WithFetchTimeout(cs.FetchTimeout)
	return catalogChain{source: cache, cache: cache, breaker: breaker}
}

// newSubscriberService builds the roster service. A disabled roster still
// gets a service so the endpoints answer SUBSCRIBERS_UNAVAILABLE.
func newSubscriberService(cfg *config.Config) *subscribers.Service {
	if !cfg.Subscribers.Enabled {
		return subscribers.NewService(subscribers.DisabledStore{})
	}
	store := subscribers.NewBreakerStore(
		subscribers.NewManagementClient(cfg.Contentstack.APIKey, &cfg.Subscribers),
		catalog.DefaultBreakerConfig("contentstack-management"),
	)
	return subscribers.NewService(store)
}
