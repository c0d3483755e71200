package root

import (
	"context"
	"database/sql"

	"github.com/nikitosruban007/treebuddy/internal/catalog"
	"github.com/nikitosruban007/treebuddy/internal/config"
	"github.com/nikitosruban007/treebuddy/internal/engine"
	"github.com/nikitosruban007/treebuddy/internal/storage"
)

func loadConfig() (config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(path)
}

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, config.Config, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	db, cleanup, err := openDB(ctx, cfg)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	return engine.NewService(db, cat), cfg, cleanup, nil
}

func resolveLanguage(cfg config.Config, flag string) (engine.Language, error) {
	if flag != "" {
		return engine.ParseLanguage(flag)
	}
	return engine.ParseLanguage(cfg.Language)
}
