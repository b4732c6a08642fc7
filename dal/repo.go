package dal

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"pachli/shared"
	"sync"
)

const schemaVer = 3

//go:embed scripts/*
var scripts embed.FS

type IRepo interface {
	IQueries
	InitUpdateDb()
	// Transaction runs fn with all-or-nothing visibility, retrying if the database is busy.
	Transaction(ctx context.Context, fn func(q IQueries) error) error
	// TransactionOnce is Transaction without the retry, for fn that has effects outside the database.
	TransactionOnce(ctx context.Context, fn func(q IQueries) error) error
	// Cleanup keeps the newest keepMax statuses of the account and removes orphaned authors.
	Cleanup(ctx context.Context, timelineUserId int64, keepMax int) error
	Close() error
}

type Repo struct {
	*queries
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// https://github.com/mattn/go-sqlite3/issues/1022#issuecomment-1067353980
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000&_foreign_keys=1"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}
	repo.queries = &queries{db: db, mu: &repo.muDb}

	return &repo
}

func (repo *Repo) Close() error {
	return repo.db.Close()
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", nextVer, err)
			panic(err)
		}
	}
}

func (repo *Repo) Transaction(ctx context.Context, fn func(q IQueries) error) error {
	return withRetry(ctx, defaultRetryAttempts, defaultRetryBackoff, func() error {
		return repo.runTx(ctx, fn)
	})
}

func (repo *Repo) TransactionOnce(ctx context.Context, fn func(q IQueries) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return repo.runTx(ctx, fn)
}

func (repo *Repo) runTx(ctx context.Context, fn func(q IQueries) error) (err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var tx *sql.Tx
	if tx, err = repo.db.BeginTx(ctx, nil); err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(&queries{db: tx})
	return
}

func (repo *Repo) Cleanup(ctx context.Context, timelineUserId int64, keepMax int) error {
	return repo.Transaction(ctx, func(q IQueries) error {
		if err := q.CleanupStatuses(timelineUserId, keepMax); err != nil {
			return err
		}
		return q.CleanupAccounts(timelineUserId)
	})
}
