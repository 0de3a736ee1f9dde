package date

import "testing"

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-15", want: New(2024, 1, 15)},
		{in: "2024-1-5", want: New(2024, 1, 5)},
		{in: "2024-02-30", want: New(2024, 3, 1)}, // normalized like time.Date
		{in: "15/01/2024", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected an error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDays(t *testing.T) {
	testCases := []struct {
		from, to string
		want     int
	}{
		{"2024-01-01", "2024-01-01", 0},
		{"2024-01-01", "2024-01-08", 7},
		{"2024-01-08", "2024-01-01", -7},
		{"2024-02-28", "2024-03-01", 2}, // 2024 is a leap year
		{"2023-02-28", "2023-03-01", 1},
		{"2023-12-31", "2024-01-01", 1},
	}
	for _, tc := range testCases {
		got := Days(MustParse(tc.from), MustParse(tc.to))
		if got != tc.want {
			t.Errorf("Days(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestYearDay(t *testing.T) {
	if got := New(2023, 2, 1).YearDay(); got != 32 {
		t.Errorf("YearDay(2023-02-01) = %d, want 32", got)
	}
	// Leap-year drift: the same calendar day lands on a different year-day
	// after February 29th.
	if got := New(2023, 3, 1).YearDay(); got != 60 {
		t.Errorf("YearDay(2023-03-01) = %d, want 60", got)
	}
	if got := New(2024, 3, 1).YearDay(); got != 61 {
		t.Errorf("YearDay(2024-03-01) = %d, want 61", got)
	}
}

func TestAddNormalizes(t *testing.T) {
	if got := New(2024, 1, 31).Add(1); got != New(2024, 2, 1) {
		t.Errorf("Add(1) = %v, want 2024-02-01", got)
	}
}
