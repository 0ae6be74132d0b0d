package storage

import (
	"strconv"
	"time"
)

// NextID returns the next numeric id for a collection: one past the
// largest existing id. An empty collection starts at 1.
func NextID[T any](items []T, id func(T) int) int {
	next := 1
	for _, item := range items {
		if v := id(item); v >= next {
			next = v + 1
		}
	}
	return next
}

// TimestampID returns the current epoch milliseconds as a string id.
// Two calls within the same millisecond collide, so this is only
// suitable for collections with a single interactive writer.
func TimestampID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// TimestampNumericID is TimestampID for collections with numeric ids
func TimestampNumericID() int64 {
	return time.Now().UnixMilli()
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
