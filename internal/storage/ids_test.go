package storage

import "testing"

type routeStub struct{ ID int }

func TestNextID(t *testing.T) {
	id := func(r routeStub) int { return r.ID }

	tests := []struct {
		name  string
		items []routeStub
		want  int
	}{
		{name: "empty collection starts at 1", items: nil, want: 1},
		{name: "max plus one", items: []routeStub{{1}, {2}, {3}}, want: 4},
		{name: "unordered ids", items: []routeStub{{7}, {2}}, want: 8},
		{name: "gap does not get reused", items: []routeStub{{1}, {5}}, want: 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextID(tt.items, id); got != tt.want {
				t.Errorf("NextID() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNextIDNotInCollection(t *testing.T) {
	items := []routeStub{{3}, {1}, {9}}
	next := NextID(items, func(r routeStub) int { return r.ID })
	for _, item := range items {
		if item.ID == next {
			t.Fatalf("NextID() = %d collides with an existing id", next)
		}
	}
}

func TestTimestampID(t *testing.T) {
	id := TimestampID()
	if len(id) != 13 {
		t.Errorf("TimestampID() = %q, want 13 digit epoch millis", id)
	}
}
