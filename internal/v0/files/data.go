package files

import (
	"sort"
	"time"

	"campus/internal/storage"
)

// StorageKey is the slot the shared files are persisted under
const StorageKey = "courseFiles"

// Seed returns the files served before anyone shares a new one
func Seed() []CourseFile {
	return []CourseFile{
		{
			ID: "1705300000000", Title: "Hafta 3 - Türev Kuralları",
			Description: "Türev alma kuralları ve çözümlü örnekler",
			FileName:    "hafta3-turev-kurallari.pdf", FileSize: "2.4 MB", FileType: "pdf",
			Category: CategoryLectureNotes, CourseCode: "MAT101", CourseName: "Matematik I",
			UploadedBy: "Prof. Dr. Ahmet Yılmaz", UploadDate: "2024-01-15",
			DownloadCount: 42, IsVisible: true, ShareCode: "cmp_8fKq2ZnR4w",
		},
		{
			ID: "1705386400000", Title: "Lab 2 - Döngüler",
			Description: "Döngü alıştırmaları ve başlangıç kodları",
			FileName:    "lab2-donguler.zip", FileSize: "860 KB", FileType: "zip",
			Category: CategoryLab, CourseCode: "BIL101", CourseName: "Programlamaya Giriş",
			UploadedBy: "Dr. Öğr. Üyesi Mehmet Demir", UploadDate: "2024-01-16",
			DownloadCount: 17, IsVisible: true, ShareCode: "cmp_Tz5mWx1pQa",
		},
	}
}

// Store keeps the shared files on a durable slot
type Store struct {
	coll *storage.Collection[CourseFile]
}

func NewStore(slot storage.Slot) *Store {
	return &Store{coll: storage.NewCollection(slot, StorageKey, Seed)}
}

// All returns every file, newest first
func (s *Store) All() []CourseFile {
	return s.coll.Items()
}

// Create prepends a newly shared file with a timestamp id and a fresh share code
func (s *Store) Create(req CreateRequest) (CourseFile, error) {
	code, err := GenerateShareCode()
	if err != nil {
		return CourseFile{}, err
	}
	file := CourseFile{
		ID:          storage.TimestampID(),
		Title:       req.Title,
		Description: req.Description,
		FileName:    req.FileName,
		FileSize:    req.FileSize,
		FileType:    req.FileType,
		Category:    req.Category,
		CourseCode:  req.CourseCode,
		CourseName:  req.CourseName,
		UploadedBy:  req.UploadedBy,
		UploadDate:  time.Now().Format("2006-01-02"),
		IsVisible:   true,
		ShareCode:   code,
	}
	if file.Category == "" {
		file.Category = CategoryLectureNotes
	}
	if file.UploadedBy == "" {
		file.UploadedBy = "Anonim"
	}
	s.coll.Prepend(file)
	return file, nil
}

func (s *Store) Delete(id string) bool {
	return s.coll.Delete(func(f CourseFile) bool { return f.ID == id })
}

// IncrementDownload bumps the download counter. Missing ids are a no-op.
func (s *Store) IncrementDownload(id string) bool {
	return s.coll.Update(
		func(f CourseFile) bool { return f.ID == id },
		func(f *CourseFile) { f.DownloadCount++ },
	)
}

// ToggleVisible flips a file in or out of the shared listing
func (s *Store) ToggleVisible(id string) bool {
	return s.coll.Update(
		func(f CourseFile) bool { return f.ID == id },
		func(f *CourseFile) { f.IsVisible = !f.IsVisible },
	)
}

// ByShareCode resolves a share code to its file
func (s *Store) ByShareCode(code string) (CourseFile, bool) {
	for _, f := range s.coll.Items() {
		if f.ShareCode == code {
			return f, true
		}
	}
	return CourseFile{}, false
}

// CourseCodes returns the distinct course codes present, sorted
func (s *Store) CourseCodes() []string {
	seen := map[string]bool{}
	var codes []string
	for _, f := range s.coll.Items() {
		if !seen[f.CourseCode] {
			seen[f.CourseCode] = true
			codes = append(codes, f.CourseCode)
		}
	}
	sort.Strings(codes)
	return codes
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
