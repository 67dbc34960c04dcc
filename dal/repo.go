package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	_ "github.com/mattn/go-sqlite3"
	"mood_parrot/shared"
	"sync"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../mocks/mock_repo.go -package mocks mood_parrot/dal IRepo

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

type IRepo interface {
	InitUpdateDb()
	GetValue(key string) (val string, found bool, err error)
	SetValue(key, val string) error
	AddTickRecord(rec *TickRecord) error
	GetRecentTicks(limit int) ([]*TickRecord, error)
	PruneTickHistory(keep int) error
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
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

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

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

func (repo *Repo) GetValue(key string) (val string, found bool, err error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT kv_val FROM kv_pairs WHERE kv_key=?`, key)
	if err = row.Scan(&val); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}
	return val, true, nil
}

func (repo *Repo) SetValue(key, val string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO kv_pairs (kv_key, kv_val, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(kv_key) DO UPDATE SET kv_val=excluded.kv_val, updated_at=excluded.updated_at`,
		key, val, time.Now().UTC())
	return err
}

func (repo *Repo) AddTickRecord(rec *TickRecord) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO tick_history
    	(tick_id, started_at, finished_at, outcome, mood_key, avatar_hash, image_fingerprint, error)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.TickId, rec.StartedAt, rec.FinishedAt, rec.Outcome, rec.MoodKey, rec.AvatarHash,
		rec.ImageFingerprint, rec.Error)
	return err
}

func (repo *Repo) GetRecentTicks(limit int) ([]*TickRecord, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT id, tick_id, started_at, finished_at, outcome, mood_key, avatar_hash,
		image_fingerprint, error
		FROM tick_history ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := make([]*TickRecord, 0, limit)
	for rows.Next() {
		rec := TickRecord{}
		err = rows.Scan(&rec.Id, &rec.TickId, &rec.StartedAt, &rec.FinishedAt, &rec.Outcome, &rec.MoodKey,
			&rec.AvatarHash, &rec.ImageFingerprint, &rec.Error)
		if err != nil {
			return nil, err
		}
		res = append(res, &rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) PruneTickHistory(keep int) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM tick_history WHERE id NOT IN
		(SELECT id FROM tick_history ORDER BY id DESC LIMIT ?)`, keep)
	return err
}
