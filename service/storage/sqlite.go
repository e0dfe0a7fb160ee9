package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.cmake-release/history.db"

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db}, nil
}

type service struct {
	db *sql.DB
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
	}
	return filepath.Clean(p), nil
}

func (s *service) SaveRelease(ctx context.Context, input SaveReleaseInput) (releaseID int64, err error) {
	if input.Tag == "" {
		return 0, errors.New("tag is required")
	}
	if input.Status == "" {
		return 0, errors.New("status is required")
	}
	if input.RunUUID == "" {
		input.RunUUID = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	if input.StartedAt.IsZero() {
		input.StartedAt = time.Now()
	}
	if input.FinishedAt.IsZero() {
		input.FinishedAt = input.StartedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO releases (
			run_uuid, tag, version, project, os_name, generator, build_type,
			artifact_path, artifact_name, artifact_sha256, artifact_size,
			mirror_uri, aws_account, status, failed_stage, error_message,
			cli_version, started_at, finished_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.RunUUID, input.Tag, input.Version, input.Project, input.OSName, input.Generator, input.BuildType,
		input.ArtifactPath, input.ArtifactName, input.ArtifactSHA256, input.ArtifactSize,
		input.MirrorURI, input.AWSAccount, input.Status, input.FailedStage, input.ErrorMessage,
		input.CLIVersion, input.StartedAt.UTC(), input.FinishedAt.UTC())
	if err != nil {
		return 0, err
	}
	releaseID, err = res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for i, st := range input.Stages {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO release_stages(release_id, position, stage, status) VALUES (?, ?, ?, ?)
		`, releaseID, i, st.Stage, st.Status)
		if err != nil {
			return 0, err
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return releaseID, nil
}

const summaryColumns = `
	release_id, run_uuid, tag, project, COALESCE(os_name, ''), COALESCE(artifact_name, ''),
	COALESCE(artifact_sha256, ''), COALESCE(mirror_uri, ''), status, COALESCE(failed_stage, ''),
	COALESCE(error_message, ''), started_at, finished_at
`

func (s *service) GetRecentReleases(limit int) ([]ReleaseSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.querySummaries(`SELECT `+summaryColumns+` FROM releases
		ORDER BY started_at DESC, release_id DESC LIMIT ?`, limit)
}

func (s *service) GetReleasesByTag(tag string) ([]ReleaseSummary, error) {
	return s.querySummaries(`SELECT `+summaryColumns+` FROM releases
		WHERE tag=? ORDER BY started_at DESC, release_id DESC`, tag)
}

func (s *service) querySummaries(query string, args ...any) ([]ReleaseSummary, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ReleaseSummary{}
	for rows.Next() {
		var r ReleaseSummary
		if err := rows.Scan(&r.ReleaseID, &r.RunUUID, &r.Tag, &r.Project, &r.OSName, &r.ArtifactName,
			&r.ArtifactSHA256, &r.MirrorURI, &r.Status, &r.FailedStage, &r.ErrorMessage,
			&r.StartedAt, &r.FinishedAt); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *service) ListStages(releaseID int64) ([]StageEvent, error) {
	rows, err := s.db.Query(`
		SELECT stage, status FROM release_stages WHERE release_id=? ORDER BY position ASC
	`, releaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StageEvent{}
	for rows.Next() {
		var e StageEvent
		if err := rows.Scan(&e.Stage, &e.Status); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be > 0")
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	res, err := s.db.ExecContext(ctx, `DELETE FROM releases WHERE started_at < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Close() error {
	return s.db.Close()
}
