package feedback

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// #endregion

// #region schema
const historySchema = `
CREATE TABLE IF NOT EXISTS route_log (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	route_id        TEXT NOT NULL,
	cluster         TEXT NOT NULL,
	dominant_layer  INTEGER NOT NULL,
	priority        REAL NOT NULL,
	coherence       REAL NOT NULL,
	platforms_total INTEGER NOT NULL,
	platforms_ok    INTEGER NOT NULL,
	engagement      INTEGER NOT NULL,
	created_at      TEXT NOT NULL
);
`

// #endregion schema

// #region entry

// RouteEntry is one row of the route log.
type RouteEntry struct {
	RouteID        string
	Cluster        string
	DominantLayer  int
	Priority       float64
	Coherence      float64
	PlatformsTotal int
	PlatformsOK    int
	Engagement     int
	CreatedAt      time.Time
}

// #endregion entry

// #region history

// History appends every routing call to a SQLite log.
type History struct {
	db *sql.DB
}

// NewHistory opens the route log database and runs migrations.
func NewHistory(dbPath string) (*History, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(historySchema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &History{db: db}, nil
}

// Close closes the underlying database connection.
func (h *History) Close() error {
	return h.db.Close()
}

// LogRoute appends one routing call to the log.
func (h *History) LogRoute(e RouteEntry) error {
	_, err := h.db.Exec(
		`INSERT INTO route_log (route_id, cluster, dominant_layer, priority, coherence,
		                        platforms_total, platforms_ok, engagement, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.RouteID, e.Cluster, e.DominantLayer, e.Priority, e.Coherence,
		e.PlatformsTotal, e.PlatformsOK, e.Engagement, e.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert route: %w", err)
	}
	return nil
}

// Recent returns the latest n entries, newest first.
func (h *History) Recent(n int) ([]RouteEntry, error) {
	rows, err := h.db.Query(
		`SELECT route_id, cluster, dominant_layer, priority, coherence,
		        platforms_total, platforms_ok, engagement, created_at
		 FROM route_log ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	var entries []RouteEntry
	for rows.Next() {
		var e RouteEntry
		var createdStr string
		if err := rows.Scan(&e.RouteID, &e.Cluster, &e.DominantLayer, &e.Priority, &e.Coherence,
			&e.PlatformsTotal, &e.PlatformsOK, &e.Engagement, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// #endregion history
