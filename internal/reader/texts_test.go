package reader

import "testing"

func TestDefaultTexts(t *testing.T) {
	texts := DefaultTexts()
	if len(texts) != 5 {
		t.Fatalf("expected 5 built-in texts, got %d", len(texts))
	}
	for i, txt := range texts {
		if txt.ID != i+1 {
			t.Errorf("text %d has id %d", i, txt.ID)
		}
		if txt.Title == "" || txt.Body == "" {
			t.Errorf("text %d is missing title or body", txt.ID)
		}
	}
}

func TestRegistryOrderAndLookup(t *testing.T) {
	reg := NewRegistry(
		SampleText{ID: 7, Title: "seven", Body: "x"},
		SampleText{ID: 3, Title: "three", Body: "y"},
		SampleText{ID: 7, Title: "dup", Body: "z"},
		SampleText{ID: 9, Title: "empty"},
	)

	if reg.Len() != 2 {
		t.Fatalf("expected 2 texts, got %d", reg.Len())
	}
	if reg.First().ID != 7 {
		t.Errorf("expected first id 7, got %d", reg.First().ID)
	}
	if got, ok := reg.Get(7); !ok || got.Title != "seven" {
		t.Errorf("duplicate id should keep first occurrence, got %+v", got)
	}
	if _, ok := reg.Get(9); ok {
		t.Error("text without body should be skipped")
	}
	if _, ok := reg.Get(100); ok {
		t.Error("unexpected text for unknown id")
	}
}

func TestRegistryListIsCopy(t *testing.T) {
	reg := NewRegistry(DefaultTexts()...)
	list := reg.List()
	list[0].Title = "changed"

	if reg.First().Title == "changed" {
		t.Error("List must not expose registry storage")
	}
}

func TestRegistryNextPrevWrap(t *testing.T) {
	reg := NewRegistry(
		SampleText{ID: 1, Body: "a"},
		SampleText{ID: 2, Body: "b"},
		SampleText{ID: 3, Body: "c"},
	)

	tests := []struct {
		name string
		got  int
		want int
	}{
		{"next", reg.Next(1).ID, 2},
		{"next wraps", reg.Next(3).ID, 1},
		{"prev", reg.Prev(2).ID, 1},
		{"prev wraps", reg.Prev(1).ID, 3},
		{"unknown", reg.Next(42).ID, 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestEmptyRegistry(t *testing.T) {
	reg := NewRegistry()
	if reg.First() != (SampleText{}) || reg.Next(1) != (SampleText{}) {
		t.Error("empty registry should return zero texts")
	}
}

func TestRegistryAdd(t *testing.T) {
	reg := NewRegistry(SampleText{ID: 1, Body: "a"}, SampleText{ID: 4, Body: "b"})

	added, ok := reg.Add(SampleText{Title: "new", Body: "c d"})
	if !ok || added.ID != 5 {
		t.Fatalf("expected id 5, got %+v %v", added, ok)
	}
	dup, ok := reg.Add(SampleText{ID: 1, Body: "e"})
	if !ok || dup.ID != 6 {
		t.Errorf("taken id should be replaced, got %d", dup.ID)
	}
	kept, _ := reg.Add(SampleText{ID: 20, Body: "f"})
	if kept.ID != 20 {
		t.Errorf("free id should be kept, got %d", kept.ID)
	}
	if _, ok := reg.Add(SampleText{Body: " \n"}); ok {
		t.Error("blank body should be rejected")
	}

	if reg.Len() != 5 {
		t.Errorf("expected 5 texts, got %d", reg.Len())
	}
	if got, _ := reg.Get(5); got.Title != "new" {
		t.Errorf("Get(5) = %+v", got)
	}
	if reg.Next(4).ID != 5 || reg.Prev(1).ID != 20 {
		t.Error("added texts should join the wrap order")
	}
}
