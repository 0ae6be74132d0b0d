package storage

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
)

// Collection holds one ordered set of entities and keeps it
// synchronized with a durable slot. Loading falls back to the seed
// dataset when the slot is missing or unreadable; the seed is not
// written back until the first mutation. Persistence failures are
// logged and swallowed, so the in-memory collection stays usable for
// the rest of the session even when writes keep failing.
type Collection[T any] struct {
	mu    sync.Mutex
	slot  Slot
	key   string
	seed  func() []T
	items []T
}

// NewCollection loads the collection stored under key, or seeds it
func NewCollection[T any](slot Slot, key string, seed func() []T) *Collection[T] {
	c := &Collection[T]{slot: slot, key: key, seed: seed}
	c.items = c.load()
	return c
}

func (c *Collection[T]) load() []T {
	raw, err := c.slot.Read(c.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("storage: reading slot %q: %v", c.key, err)
		}
		return c.seed()
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("storage: slot %q holds unreadable data, using defaults: %v", c.key, err)
		return c.seed()
	}
	return items
}

// Items returns a copy of the current collection. The copy is
// shallow: slice and map fields inside the items still point at the
// stored data, so callers must treat the returned items as read-only
// and go through Update or Mutate to change them.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of entities in the collection
func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// persist overwrites the slot with the full collection. Must be
// called with the lock held. A write failure does not roll back the
// in-memory mutation.
func (c *Collection[T]) persist() {
	raw, err := json.Marshal(c.items)
	if err != nil {
		log.Printf("storage: encoding slot %q: %v", c.key, err)
		return
	}
	if err := c.slot.Write(c.key, raw); err != nil {
		log.Printf("storage: persisting slot %q: %v", c.key, err)
	}
}

// Append adds an entity at the end of the collection
func (c *Collection[T]) Append(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
	c.persist()
}

// Prepend adds an entity at the front of the collection
func (c *Collection[T]) Prepend(item T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]T{item}, c.items...)
	c.persist()
}

// Update applies apply to the first entity matched by match and
// persists. A missing entity is a silent no-op; the return value
// reports whether anything matched.
func (c *Collection[T]) Update(match func(T) bool, apply func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if match(c.items[i]) {
			apply(&c.items[i])
			c.persist()
			return true
		}
	}
	return false
}

// Delete removes every entity matched by match. A missing entity is
// a silent no-op and does not trigger a write.
func (c *Collection[T]) Delete(match func(T) bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if !match(item) {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(c.items) {
		return false
	}
	c.items = kept
	c.persist()
	return true
}

// Mutate swaps the collection for the result of fn and persists.
// Used for mutations that need the current contents atomically, like
// id allocation on create and bulk edits.
func (c *Collection[T]) Mutate(fn func(items []T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = fn(c.items)
	c.persist()
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
