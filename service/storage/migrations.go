package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS releases (
    release_id      INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid        TEXT UNIQUE NOT NULL,
    tag             TEXT NOT NULL,
    version         TEXT NOT NULL,
    project         TEXT NOT NULL,
    os_name         TEXT,
    generator       TEXT,
    build_type      TEXT,
    artifact_path   TEXT,
    artifact_name   TEXT,
    artifact_sha256 TEXT,
    artifact_size   INTEGER DEFAULT 0,
    mirror_uri      TEXT,
    aws_account     TEXT,
    status          TEXT NOT NULL,
    failed_stage    TEXT,
    error_message   TEXT,
    cli_version     TEXT,
    started_at      DATETIME NOT NULL,
    finished_at     DATETIME NOT NULL,
    created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_releases_tag ON releases(tag);
CREATE INDEX IF NOT EXISTS idx_releases_started ON releases(started_at DESC);

CREATE TABLE IF NOT EXISTS release_stages (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    release_id  INTEGER NOT NULL,
    position    INTEGER NOT NULL,
    stage       TEXT NOT NULL,
    status      TEXT NOT NULL,
    FOREIGN KEY (release_id) REFERENCES releases(release_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_release_stages_release ON release_stages(release_id);
`
