package root

import (
	"context"

	"go.uber.org/zap"

	"rapjournal/internal/config"
	"rapjournal/internal/engine"
	"rapjournal/internal/storage"
	"rapjournal/internal/ui"
)

func newLogger() *zap.Logger {
	if !debugFlag {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Store, func(), error) {
	if cfg.UseLocal() {
		local, err := storage.OpenLocal(ctx, cfg.LocalDB)
		if err != nil {
			return nil, nil, err
		}
		return local, func() { _ = local.Close() }, nil
	}
	gh := storage.NewGitHub(cfg.APIURL, cfg.Token, cfg.Repo, cfg.Path, logger)
	return gh, func() {}, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, err
	}

	logger := newLogger()
	store, cleanup, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	svc := engine.NewService(store)
	svc.SetLocation(loc)
	if cfg.Catalog != "" {
		catalog, err := engine.LoadCatalog(cfg.Catalog)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		svc.SetCatalog(catalog)
	}
	return svc, cleanup, nil
}

func themeFor(st *engine.State) ui.Theme {
	if st == nil {
		return ui.Default()
	}
	return ui.For(st.Ledger.Theme)
}
