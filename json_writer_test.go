package invest

import "testing"

func TestJsonObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("b", 2)
	w.Append("a", "one")
	w.Optional("empty", "")
	w.Optional("zero", 0)
	w.Optional("set", 3)

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error: %v", err)
	}
	// Keys appear in insertion order, zero-valued optionals are dropped.
	want := `{"b":2,"a":"one","set":3}`
	if string(got) != want {
		t.Errorf("MarshalJSON() = %s, want %s", got, want)
	}
}

func TestJsonObjectWriter_Empty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error: %v", err)
	}
	if string(got) != "{}" {
		t.Errorf("MarshalJSON() = %s, want {}", got)
	}
}
