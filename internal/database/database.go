package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/dmkang/berthwatch/internal/models"
	_ "modernc.org/sqlite"
)

// DBPath returns the path to the single shared roster database
func DBPath() string {
	return filepath.Join("data", "berthwatch.db")
}

// Open opens the roster database, applies the usual pragmas and ensures
// the schema exists. The caller owns the returned handle.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening roster database: %w", err)
	}
	_, _ = db.Exec("PRAGMA journal_mode=WAL")
	_, _ = db.Exec("PRAGMA synchronous=NORMAL")

	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema ensures the bookings table exists. Safe to call on a
// database that already holds rosters.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS bookings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			port TEXT NOT NULL,
			terminal TEXT NOT NULL,
			berth TEXT NOT NULL,
			vessel TEXT NOT NULL,
			voyage TEXT,
			line TEXT,
			route TEXT,
			eta TEXT NOT NULL,
			etd TEXT NOT NULL,
			extra TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_bookings_port ON bookings(port);
	`)
	if err != nil {
		return fmt.Errorf("creating bookings table: %w", err)
	}
	return nil
}

// SaveRoster replaces the stored roster for one port. The write is
// transactional: a failed insert leaves the previous roster intact.
func SaveRoster(db *sql.DB, port string, bookings []*models.Booking) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("saving roster for %s: %w", port, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM bookings WHERE port = ?`, port); err != nil {
		return fmt.Errorf("clearing roster for %s: %w", port, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO bookings (port, terminal, berth, vessel, voyage, line, route, eta, etd, extra)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing roster insert: %w", err)
	}
	defer stmt.Close()

	for _, b := range bookings {
		terminal := b.Terminal()
		berth := ""
		if len(terminal) < len(b.Berth) {
			berth = b.Berth[len(terminal)+1:]
		}

		extra := ""
		if len(b.Extra) > 0 {
			raw, err := json.Marshal(b.Extra)
			if err != nil {
				return fmt.Errorf("encoding extra fields for %s: %w", b.ID().Display(), err)
			}
			extra = string(raw)
		}

		_, err = stmt.Exec(port, terminal, berth, b.Vessel, b.Voyage, b.Line, b.Route,
			models.FormatDate(b.ETA), models.FormatDate(b.ETD), extra)
		if err != nil {
			return fmt.Errorf("inserting booking %s: %w", b.ID().Display(), err)
		}
	}

	return tx.Commit()
}

// LoadRoster reads one port's stored roster in insertion order.
func LoadRoster(db *sql.DB, port string) ([]*models.Booking, error) {
	rows, err := db.Query(`
		SELECT terminal, berth, vessel, voyage, line, route, eta, etd, extra
		FROM bookings
		WHERE port = ?
		ORDER BY id
	`, port)
	if err != nil {
		return nil, fmt.Errorf("querying roster for %s: %w", port, err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		var terminal, berth, vessel, voyage, line, route, eta, etd, extra string
		if err := rows.Scan(&terminal, &berth, &vessel, &voyage, &line, &route, &eta, &etd, &extra); err != nil {
			return nil, fmt.Errorf("scanning roster row: %w", err)
		}

		lane := terminal
		if berth != "" {
			lane = terminal + "-" + berth
		}
		b := &models.Booking{
			Vessel: vessel,
			Voyage: voyage,
			Berth:  lane,
			Line:   line,
			Route:  route,
		}
		if b.ETA, err = models.ParseDate(eta); err != nil {
			return nil, fmt.Errorf("roster row %s: %w", vessel, err)
		}
		if b.ETD, err = models.ParseDate(etd); err != nil {
			return nil, fmt.Errorf("roster row %s: %w", vessel, err)
		}
		if extra != "" {
			if err := json.Unmarshal([]byte(extra), &b.Extra); err != nil {
				return nil, fmt.Errorf("decoding extra fields for %s: %w", vessel, err)
			}
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// Ports lists the port codes with a stored roster.
func Ports(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT DISTINCT port FROM bookings ORDER BY port`)
	if err != nil {
		return nil, fmt.Errorf("listing ports: %w", err)
	}
	defer rows.Close()

	var ports []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scanning port row: %w", err)
		}
		ports = append(ports, p)
	}
	return ports, rows.Err()
}
