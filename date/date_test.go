package date

import (
	"testing"
	"time"
)

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

func TestParse_ledgerFormats(t *testing.T) {
	want := New(2001, time.November, 1)
	cases := []string{
		"2001-11-01",
		"2001-11-1",
		"01-Nov-01",
		"1-Nov-01",
		"01-Nov-2001",
		"01-November-01",
		"01 Nov 2001",
		"01 November 2001",
		"01/11/2001",
		"1/11/2001",
	}
	for _, str := range cases {
		got, err := Parse(str)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", str, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %s, want %s", str, got, want)
		}
	}
}

func TestParse_invalid(t *testing.T) {
	for _, str := range []string{"", "yesterday", "2001-13-01", "32-Nov-01"} {
		if _, err := Parse(str); err == nil {
			t.Errorf("Parse(%q) expected error, got none", str)
		}
	}
}

func TestAddYears(t *testing.T) {
	tests := []struct {
		name string
		in   Date
		want Date
	}{
		{"plain", New(2001, time.February, 1), New(2002, time.February, 1)},
		{"leap day normalizes", New(2000, time.February, 29), New(2001, time.March, 1)},
		{"year end", New(2001, time.December, 31), New(2002, time.December, 31)},
	}
	for _, tt := range tests {
		if got := tt.in.AddYears(1); got != tt.want {
			t.Errorf("%s: %s.AddYears(1) = %s, want %s", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestCompare(t *testing.T) {
	a := New(2001, time.November, 1)
	b := New(2001, time.November, 2)
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare ordering broken for %s vs %s", a, b)
	}
	if !a.Before(b) || !b.After(a) {
		t.Errorf("Before/After ordering broken for %s vs %s", a, b)
	}
}

func TestStartOf(t *testing.T) {
	d := New(2001, time.November, 17)
	if got := d.StartOf(Monthly); got != New(2001, time.November, 1) {
		t.Errorf("StartOf(Monthly) = %s", got)
	}
	if got := d.StartOf(Yearly); got != New(2001, time.January, 1) {
		t.Errorf("StartOf(Yearly) = %s", got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2001, time.November, 1)
	b, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() error = %v", err)
	}
	if string(b) != `"2001-11-01"` {
		t.Errorf("MarshalJSON() = %s", b)
	}
	var back Date
	if err := back.UnmarshalJSON(b); err != nil {
		t.Fatalf("UnmarshalJSON() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %s, want %s", back, d)
	}
}
