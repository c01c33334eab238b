package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/genricoloni/screend/internal/domain"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// schemaVersion is bumped when the screens table changes incompatibly
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS screens (
    id INTEGER PRIMARY KEY,           -- ScreenID (bit pattern of the uint64)
    name TEXT NOT NULL,
    is_virtual INTEGER NOT NULL,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    phy_width INTEGER NOT NULL,
    phy_height INTEGER NOT NULL,
    offset_x INTEGER NOT NULL,
    offset_y INTEGER NOT NULL,
    refresh_rate INTEGER NOT NULL,
    power_status INTEGER NOT NULL,
    color_gamut INTEGER NOT NULL,
    gamut_map INTEGER NOT NULL,
    hdr_format INTEGER NOT NULL,
    pixel_format INTEGER NOT NULL,
    rotation INTEGER NOT NULL,
    updated_at INTEGER NOT NULL       -- UnixNano
);
`

const upsertScreen = `
INSERT INTO screens (id, name, is_virtual, width, height, phy_width, phy_height,
    offset_x, offset_y, refresh_rate, power_status, color_gamut, gamut_map,
    hdr_format, pixel_format, rotation, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    is_virtual = excluded.is_virtual,
    width = excluded.width,
    height = excluded.height,
    phy_width = excluded.phy_width,
    phy_height = excluded.phy_height,
    offset_x = excluded.offset_x,
    offset_y = excluded.offset_y,
    refresh_rate = excluded.refresh_rate,
    power_status = excluded.power_status,
    color_gamut = excluded.color_gamut,
    gamut_map = excluded.gamut_map,
    hdr_format = excluded.hdr_format,
    pixel_format = excluded.pixel_format,
    rotation = excluded.rotation,
    updated_at = excluded.updated_at
`

const selectScreen = `
SELECT name, is_virtual, width, height, phy_width, phy_height, offset_x, offset_y,
    refresh_rate, power_status, color_gamut, gamut_map, hdr_format, pixel_format, rotation
FROM screens WHERE id = ?
`

// SQLiteStore keeps the last confirmed state of every screen in SQLite
type SQLiteStore struct {
	logger *zap.Logger
	db     *sql.DB
}

var _ domain.StateStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (creating if needed) the state database
func NewSQLiteStore(logger *zap.Logger, cfg domain.Config) (*SQLiteStore, error) {
	return Open(logger, cfg.StateDBPath())
}

// Open opens the database at path and applies the schema
func Open(logger *zap.Logger, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)" +
		"&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// Writes come from a single debounced loop
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &SQLiteStore{logger: logger, db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("State database opened", zap.String("path", path))
	return s, nil
}

// migrate creates the schema and drops the screens table on a version change
func (s *SQLiteStore) migrate() error {
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var version int
	err := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", schemaVersion)
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	case version != schemaVersion:
		s.logger.Warn("State schema changed, discarding stored screens",
			zap.Int("stored", version),
			zap.Int("current", schemaVersion))
		_, err = s.db.Exec("DROP TABLE screens; DELETE FROM schema_version;")
		if err == nil {
			return s.migrate()
		}
	}
	if err != nil {
		return fmt.Errorf("failed to record schema version: %w", err)
	}
	return nil
}

// Save records the screen state, replacing any earlier one for the same id
func (s *SQLiteStore) Save(ctx context.Context, info domain.ScreenInfo) error {
	_, err := s.db.ExecContext(ctx, upsertScreen,
		int64(info.ID), info.Name, info.IsVirtual,
		info.Width, info.Height, info.PhyWidth, info.PhyHeight,
		info.OffsetX, info.OffsetY, info.RefreshRate,
		uint32(info.PowerStatus), int32(info.ColorGamut), uint32(info.GamutMap),
		uint32(info.HDRFormat), int32(info.PixelFormat), uint32(info.Rotation),
		time.Now().UnixNano())
	if err != nil {
		return fmt.Errorf("failed to save screen %d: %w", info.ID, err)
	}
	s.logger.Debug("Screen state saved", zap.Uint64("id", uint64(info.ID)))
	return nil
}

// Load returns the stored state of id; ok is false when nothing was stored
func (s *SQLiteStore) Load(ctx context.Context, id domain.ScreenID) (domain.ScreenInfo, bool, error) {
	info := domain.ScreenInfo{ID: id}
	var (
		powerStatus, gamutMap, hdrFormat, rotation uint32
		colorGamut, pixelFormat                    int32
	)
	err := s.db.QueryRowContext(ctx, selectScreen, int64(id)).Scan(
		&info.Name, &info.IsVirtual,
		&info.Width, &info.Height, &info.PhyWidth, &info.PhyHeight,
		&info.OffsetX, &info.OffsetY, &info.RefreshRate,
		&powerStatus, &colorGamut, &gamutMap, &hdrFormat, &pixelFormat, &rotation)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ScreenInfo{}, false, nil
	}
	if err != nil {
		return domain.ScreenInfo{}, false, fmt.Errorf("failed to load screen %d: %w", id, err)
	}

	info.PowerStatus = domain.PowerStatus(powerStatus)
	info.ColorGamut = domain.ColorGamut(colorGamut)
	info.GamutMap = domain.GamutMap(gamutMap)
	info.HDRFormat = domain.HDRFormat(hdrFormat)
	info.PixelFormat = domain.PixelFormat(pixelFormat)
	info.Rotation = domain.ScreenRotation(rotation)
	return info, true, nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
