package store

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestMemory_GetSetRemove(t *testing.T) {
	s := NewMemory()
	if s.Contains("pedestal:0") {
		t.Fatal("new store contains key")
	}

	s.Set("pedestal:0", "(O)68")
	if v, ok := s.Get("pedestal:0"); !ok || v != "(O)68" {
		t.Errorf("Get = (%q, %v), want (\"(O)68\", true)", v, ok)
	}

	s.Remove("pedestal:0")
	s.Remove("pedestal:0")
	if s.Contains("pedestal:0") {
		t.Error("key still present after Remove")
	}
}

func TestMemory_ZeroValueSet(t *testing.T) {
	var s Memory
	s.Set("k", "v")
	if !s.Contains("k") {
		t.Error("zero Memory did not accept Set")
	}
}

func TestMemory_Keys(t *testing.T) {
	s := NewMemory()
	s.Set("spawn:2,1", "b")
	s.Set("pedestal:0", "x")
	s.Set("spawn:1,1", "a")

	got := s.Keys("spawn:")
	want := []string{"spawn:1,1", "spawn:2,1"}
	if !slices.Equal(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
}

func TestPrefixed(t *testing.T) {
	inner := NewMemory()
	p := Prefixed{Prefix: "spawn:", Inner: inner}
	p.Set("3,4", "id")

	if !inner.Contains("spawn:3,4") {
		t.Error("prefixed Set did not reach inner store with prefix")
	}
	if v, ok := p.Get("3,4"); !ok || v != "id" {
		t.Errorf("Get = (%q, %v), want (\"id\", true)", v, ok)
	}
	p.Remove("3,4")
	if p.Contains("3,4") {
		t.Error("prefixed Remove left the key")
	}
}

func TestBook_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saves", "slot1.json")

	b := NewBook()
	b.Location("Whispers_DesertCavern").Set("pedestal:solved", "1")
	b.Location("Whispers_DesertCavern").Set("pedestal:2", "(O)64")
	b.Location("Empty")

	if err := b.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cavern := loaded.Location("Whispers_DesertCavern")
	if v, _ := cavern.Get("pedestal:2"); v != "(O)64" {
		t.Errorf("pedestal:2 = %q, want (O)64", v)
	}
	if v, _ := cavern.Get("pedestal:solved"); v != "1" {
		t.Errorf("pedestal:solved = %q, want 1", v)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) err = %v, want os.ErrNotExist", err)
	}
	if b == nil || len(b.Names()) != 0 {
		t.Errorf("Load(missing) book = %v, want empty book", b)
	}
}

func TestLoad_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load(corrupt) err = nil, want error")
	}
}
