// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package ftl reads the Pi-hole FTL query-log database. The database is
// owned and written exclusively by FTL; this package only runs read-only
// analytical queries against it.
package ftl

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Status codes FTL assigns to answered queries. Everything else (blocked,
// unknown, retried) is excluded from warming candidates.
const (
	StatusForwarded = 2
	StatusCached    = 3
)

// Store handles read access to the FTL query database.
type Store struct {
	db *sql.DB
}

// Open opens the query database read-only.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open query database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// TopDomains returns up to max distinct domains answered within the last
// daysBack days, most-queried first. Reverse-DNS names and localhost
// variants are never candidates.
func (s *Store) TopDomains(daysBack, max int) ([]string, error) {
	cutoff := time.Now().AddDate(0, 0, -daysBack).Unix()

	rows, err := s.db.Query(`
		SELECT domain
		FROM queries
		WHERE timestamp >= ?
		  AND status IN (?, ?)
		  AND domain NOT LIKE '%.in-addr.arpa'
		  AND domain NOT LIKE 'localhost%'
		GROUP BY domain
		ORDER BY COUNT(*) DESC
		LIMIT ?
	`, cutoff, StatusForwarded, StatusCached, max)
	if err != nil {
		return nil, fmt.Errorf("failed to query top domains: %w", err)
	}
	defer rows.Close()

	var domains []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		domains = append(domains, d)
	}
	return domains, rows.Err()
}
