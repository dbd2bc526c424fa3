package accelerator

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/cursors/internal/logger"
)

// DeviceFileName is the database file SQLiteDevice creates in its data dir.
const DeviceFileName = "device.db"

// Schema DDL. One row per allocation, one row per cell.
const (
	createAllocations = `CREATE TABLE IF NOT EXISTS allocations (
    alloc_id TEXT PRIMARY KEY,
    count INTEGER NOT NULL,
    width INTEGER NOT NULL
);`

	createCells = `CREATE TABLE IF NOT EXISTS cells (
    alloc_id TEXT NOT NULL,
    idx INTEGER NOT NULL,
    data BLOB NOT NULL,
    PRIMARY KEY (alloc_id, idx),
    FOREIGN KEY (alloc_id) REFERENCES allocations(alloc_id)
);`
)

// SQLiteDevice keeps allocations in a SQLite database, so that every transfer
// crosses a real storage boundary.
type SQLiteDevice struct {
	mu     sync.RWMutex
	db     *sql.DB
	path   string
	shapes map[uuid.UUID]shape
}

// OpenSQLite creates dataDir if needed and opens a fresh device database in
// it. Any database left by a previous run is removed, since device memory
// does not outlive the device.
func OpenSQLite(dataDir string) (*SQLiteDevice, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dataDir, DeviceFileName)
	_ = os.Remove(path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open device db: %w", err)
	}
	db.SetMaxOpenConns(1)

	for _, ddl := range []string{createAllocations, createCells} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	logger.L().Debug("device.open", "device", "sqlite", "path", path)
	return &SQLiteDevice{db: db, path: path, shapes: make(map[uuid.UUID]shape)}, nil
}

// Name returns "sqlite".
func (d *SQLiteDevice) Name() string { return "sqlite" }

// Path returns the database file path.
func (d *SQLiteDevice) Path() string { return d.path }

// Alloc reserves count zeroed cells of width bytes inside one transaction.
func (d *SQLiteDevice) Alloc(count, width int) (uuid.UUID, error) {
	if count < 0 || width <= 0 {
		return uuid.Nil, fmt.Errorf("alloc %d x %d: %w", count, width, ErrOutOfRange)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.db == nil {
		return uuid.Nil, ErrDeviceClosed
	}

	id := newAllocationID()
	tx, err := d.db.Begin()
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin alloc: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO allocations (alloc_id, count, width) VALUES (?, ?, ?)`, id.String(), count, width); err != nil {
		return uuid.Nil, fmt.Errorf("insert allocation: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO cells (alloc_id, idx, data) VALUES (?, ?, ?)`)
	if err != nil {
		return uuid.Nil, fmt.Errorf("prepare cells: %w", err)
	}
	defer stmt.Close()

	zero := make([]byte, width)
	for i := 0; i < count; i++ {
		if _, err := stmt.Exec(id.String(), i, zero); err != nil {
			return uuid.Nil, fmt.Errorf("insert cell %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit alloc: %w", err)
	}

	d.shapes[id] = shape{count: count, width: width}
	logger.L().Debug("device.alloc", "device", d.Name(), "id", id, "count", count, "width", width)
	return id, nil
}

// Load reads one cell into dst.
func (d *SQLiteDevice) Load(id uuid.UUID, index int, dst []byte) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if err := d.check(id, index, dst); err != nil {
		return fmt.Errorf("load %s[%d]: %w", id, index, err)
	}

	var data []byte
	err := d.db.QueryRow(`SELECT data FROM cells WHERE alloc_id = ? AND idx = ?`, id.String(), index).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("load %s[%d]: %w", id, index, ErrOutOfRange)
	}
	if err != nil {
		return fmt.Errorf("load %s[%d]: %w", id, index, err)
	}
	if len(data) != len(dst) {
		return fmt.Errorf("load %s[%d]: %w", id, index, ErrWidthMismatch)
	}
	copy(dst, data)
	return nil
}

// Store writes src into one cell.
func (d *SQLiteDevice) Store(id uuid.UUID, index int, src []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.check(id, index, src); err != nil {
		return fmt.Errorf("store %s[%d]: %w", id, index, err)
	}

	res, err := d.db.Exec(`UPDATE cells SET data = ? WHERE alloc_id = ? AND idx = ?`, src, id.String(), index)
	if err != nil {
		return fmt.Errorf("store %s[%d]: %w", id, index, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("store %s[%d]: %w", id, index, ErrOutOfRange)
	}
	return nil
}

// Free deletes an allocation and its cells.
func (d *SQLiteDevice) Free(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.db == nil {
		return ErrDeviceClosed
	}
	if _, ok := d.shapes[id]; !ok {
		return fmt.Errorf("%s: %w", id, ErrUnknownAllocation)
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("begin free: %w", err)
	}
	defer tx.Rollback()
	if _, err := tx.Exec(`DELETE FROM cells WHERE alloc_id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete cells: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM allocations WHERE alloc_id = ?`, id.String()); err != nil {
		return fmt.Errorf("delete allocation: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit free: %w", err)
	}
	delete(d.shapes, id)
	return nil
}

// Close closes the database. Idempotent.
func (d *SQLiteDevice) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	d.shapes = nil
	logger.L().Debug("device.close", "device", "sqlite", "path", d.path)
	return err
}

// check validates a transfer against the cached allocation geometry. The
// caller holds d.mu.
func (d *SQLiteDevice) check(id uuid.UUID, index int, buf []byte) error {
	if d.db == nil {
		return ErrDeviceClosed
	}
	s, ok := d.shapes[id]
	if !ok {
		return ErrUnknownAllocation
	}
	return s.check(index, buf)
}
