package storage

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned by Read when no value is stored under a key.
var ErrNotFound = errors.New("storage: slot not found")

// Slot is a named durable key-value slot. Each collection serializes
// to exactly one slot; writes replace the whole value.
type Slot interface {
	Read(key string) ([]byte, error)
	Write(key string, value []byte) error
}

// SQLSlot stores slots in the portal database
type SQLSlot struct {
	db *sql.DB
}

// NewSQLSlot creates a slot store over an open database
func NewSQLSlot(db *sql.DB) *SQLSlot {
	return &SQLSlot{db: db}
}

func (s *SQLSlot) Read(key string) ([]byte, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM slots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(value), nil
}

func (s *SQLSlot) Write(key string, value []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, string(value), time.Now())
	return err
}

//   This project is the monolithic backend API for the Smart Campus portal. Announcements, events, dining menus, course schedules, transport, file sharing, notifications and the campus chatbot webhook for our apps.
//   API Copyright (C) 2025 Smart Campus
//       This program is free software: you can redistribute it and/or modify
//       it under the terms of the GNU General Public License as published by
//       the Free Software Foundation, either version 3 of the License, or
//       (at your option) any later version.

//       This program is distributed in the hope that it will be useful,
//       but WITHOUT ANY WARRANTY; without even the implied warranty of
//       MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//       GNU General Public License for more details.

//       You should have received a copy of the GNU General Public License
//       along with this program.  If not, see <https://www.gnu.org/licenses/>.
