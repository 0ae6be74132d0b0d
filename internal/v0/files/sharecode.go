package files

import (
	"crypto/rand"
	"crypto/sha256"

	"github.com/mr-tron/base58"
)

const (
	// ShareCodePrefix is the prefix for all generated share codes
	ShareCodePrefix = "cmp_"

	shareCodeLength = 10
)

// GenerateShareCode creates a short opaque code for sharing a file.
// Format: cmp_ + Base58(SHA256(random_bytes)) truncated.
func GenerateShareCode() (string, error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", err
	}

	hash := sha256.Sum256(randomBytes)
	encoded := base58.Encode(hash[:])

	return ShareCodePrefix + encoded[:shareCodeLength], nil
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
