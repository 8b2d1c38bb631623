package root

import (
	"context"
	"database/sql"
	"time"

	"studysaga/internal/buff"
	"studysaga/internal/engine"
	"studysaga/internal/storage"
)

var nowFunc = time.Now

func openDB(ctx context.Context) (*sql.DB, func(), error) {
	path, err := storage.ResolveDBPath()
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

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(db, buff.Default()), cleanup, nil
}
