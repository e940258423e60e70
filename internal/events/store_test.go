package events

import (
	"testing"
	"time"
)

func TestAppendAndRead(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	store := NewStore()

	evts := []Event{
		{Action: ActionAdd, Alias: "web", Target: "10.0.0.1"},
		{Action: ActionAdd, Alias: "db", Target: "db.internal"},
		{Action: ActionRemove, Alias: "web"},
	}
	for _, evt := range evts {
		if err := store.Append(evt); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	all, err := store.Read(Query{})
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].Timestamp.IsZero() {
		t.Fatal("append should stamp events")
	}

	byAlias, err := store.Read(Query{Alias: "web"})
	if err != nil {
		t.Fatal(err)
	}
	if len(byAlias) != 2 {
		t.Fatalf("expected 2 web events, got %d", len(byAlias))
	}

	byAction, err := store.Read(Query{Action: ActionRemove})
	if err != nil {
		t.Fatal(err)
	}
	if len(byAction) != 1 || byAction[0].Alias != "web" {
		t.Fatalf("unexpected remove events: %+v", byAction)
	}
}

func TestRead_LimitKeepsMostRecent(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	store := NewStore()

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, alias := range []string{"a", "b", "c"} {
		if err := store.Append(Event{Timestamp: base.Add(time.Duration(i) * time.Minute), Action: ActionAdd, Alias: alias}); err != nil {
			t.Fatal(err)
		}
	}

	out, err := store.Read(Query{Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 2 || out[0].Alias != "b" || out[1].Alias != "c" {
		t.Fatalf("expected two most recent events, got %+v", out)
	}
}

func TestRead_MissingJournal(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	out, err := NewStore().Read(Query{})
	if err != nil {
		t.Fatal(err)
	}
	if out != nil {
		t.Fatalf("expected nil for missing journal, got %+v", out)
	}
}
