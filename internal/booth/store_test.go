package booth

import (
	"testing"
)

func newTestPhoto(id string) *Photo {
	return &Photo{ID: id, Style: "daisy", Scale: 1.0}
}

func TestAddAssignsIncreasingZ(t *testing.T) {
	s := NewStore()
	a := s.Add(newTestPhoto("a"))
	b := s.Add(newTestPhoto("b"))
	c := s.Add(newTestPhoto("c"))

	if !(a.ZIndex < b.ZIndex && b.ZIndex < c.ZIndex) {
		t.Fatalf("z indexes not increasing: %d %d %d", a.ZIndex, b.ZIndex, c.ZIndex)
	}
}

func TestRaiseAlwaysOnTop(t *testing.T) {
	s := NewStore()
	s.Add(newTestPhoto("a"))
	s.Add(newTestPhoto("b"))
	s.Add(newTestPhoto("c"))

	seen := 0
	for _, id := range []string{"a", "c", "b", "a", "a"} {
		p, err := s.Raise(id)
		if err != nil {
			t.Fatalf("raise %s: %v", id, err)
		}
		if p.ZIndex <= seen {
			t.Fatalf("raise %s gave z=%d, previous max %d", id, p.ZIndex, seen)
		}
		seen = p.ZIndex
	}

	// last raised must be last in list order
	list := s.List()
	if list[len(list)-1].ID != "a" {
		t.Fatalf("top entity = %s, want a", list[len(list)-1].ID)
	}
}

func TestListSortedByZ(t *testing.T) {
	s := NewStore()
	s.Add(newTestPhoto("a"))
	s.Add(newTestPhoto("b"))
	s.Raise("a")

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("len = %d", len(list))
	}
	if list[0].ID != "b" || list[1].ID != "a" {
		t.Fatalf("order = %s, %s", list[0].ID, list[1].ID)
	}
}

func TestSetPlacementClampsScale(t *testing.T) {
	s := NewStore()
	s.Add(newTestPhoto("a"))

	p, err := s.SetPlacement("a", 5, 6, 45, 99)
	if err != nil {
		t.Fatal(err)
	}
	if p.Scale != MaxScale {
		t.Fatalf("scale = %v, want %v", p.Scale, MaxScale)
	}

	p, _ = s.SetPlacement("a", 5, 6, 45, 0.0001)
	if p.Scale != MinScale {
		t.Fatalf("scale = %v, want %v", p.Scale, MinScale)
	}
	if p.PosX != 5 || p.PosY != 6 || p.Rotation != 45 {
		t.Fatalf("placement lost: %+v", p)
	}
}

func TestPlacementDoesNotTouchIdentity(t *testing.T) {
	s := NewStore()
	orig := newTestPhoto("a")
	orig.Image = []byte{1, 2, 3}
	s.Add(orig)

	s.SetPlacement("a", 10, 20, 30, 2)
	p, _ := s.Get("a")
	if p.ID != "a" || len(p.Image) != 3 {
		t.Fatalf("identity or payload changed: %+v", p)
	}
}

func TestSetDetails(t *testing.T) {
	s := NewStore()
	s.Add(newTestPhoto("a"))

	name := "Alex"
	p, err := s.SetDetails("a", &name, nil)
	if err != nil {
		t.Fatal(err)
	}
	if p.Name != "Alex" || p.Style != "daisy" {
		t.Fatalf("got %+v", p)
	}

	style := "polka"
	p, _ = s.SetDetails("a", nil, &style)
	if p.Name != "Alex" || p.Style != "polka" {
		t.Fatalf("got %+v", p)
	}
}

func TestDeleteAndNotFound(t *testing.T) {
	s := NewStore()
	s.Add(newTestPhoto("a"))

	if err := s.Delete("a"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("a"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := s.Get("a"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := s.Raise("a"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	s := NewStore()
	var events []Event
	s.Subscribe(func(ev Event) { events = append(events, ev) })

	s.Add(newTestPhoto("a"))
	s.SetPlacement("a", 1, 2, 3, 1)
	s.Raise("a")
	s.Delete("a")

	want := []EventType{EventCreated, EventUpdated, EventRaised, EventDeleted}
	if len(events) != len(want) {
		t.Fatalf("got %d events, want %d", len(events), len(want))
	}
	var seq int64
	for i, ev := range events {
		if ev.Type != want[i] {
			t.Fatalf("event %d = %s, want %s", i, ev.Type, want[i])
		}
		if ev.Photo.ID != "a" {
			t.Fatalf("event %d photo = %s", i, ev.Photo.ID)
		}
		if ev.Seq <= seq {
			t.Fatalf("event %d seq = %d, previous %d", i, ev.Seq, seq)
		}
		seq = ev.Seq
	}
}

func TestClampScale(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, MinScale},
		{0.3, 0.3},
		{1, 1},
		{3, 3},
		{3.01, MaxScale},
		{-5, MinScale},
	}
	for _, c := range cases {
		if got := ClampScale(c.in); got != c.want {
			t.Errorf("ClampScale(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}
