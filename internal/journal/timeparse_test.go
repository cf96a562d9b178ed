package journal

import (
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHour   int
		wantMinute int
		wantOK     bool
	}{
		{"24-hour", "09:00", 9, 0, true},
		{"24-hour evening", "17:30", 17, 30, true},
		{"single-digit hour", "9:00", 9, 0, true},
		{"12-hour with space", "9:00 AM", 9, 0, true},
		{"12-hour PM with space", "5:30 PM", 17, 30, true},
		{"12-hour no space", "9:00AM", 9, 0, true},
		{"12-hour PM no space", "5:30PM", 17, 30, true},
		{"lowercase meridiem", "9:00 am", 9, 0, true},
		{"dot separator", "09.30", 9, 30, true},
		{"bare hour", "9", 9, 0, true},
		{"bare two-digit hour", "17", 17, 0, true},
		{"bare hour with meridiem", "9 AM", 9, 0, true},
		{"bare hour PM", "5 PM", 17, 0, true},
		{"midnight 12-hour", "12:00 AM", 0, 0, true},
		{"noon 12-hour", "12:00 PM", 12, 0, true},
		{"surrounding whitespace", "  10:15  ", 10, 15, true},
		{"empty", "", 0, 0, false},
		{"junk", "soon", 0, 0, false},
		{"out of range hour", "25:00", 0, 0, false},
		{"bare meridiem no space", "9AM", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseClock(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseClock(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Hour() != tt.wantHour || got.Minute() != tt.wantMinute {
				t.Errorf("ParseClock(%q) = %02d:%02d, want %02d:%02d",
					tt.input, got.Hour(), got.Minute(), tt.wantHour, tt.wantMinute)
			}
		})
	}
}

func TestComputeWorkedHours(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		extra string
		want  string
	}{
		{"standard day", "09:00", "17:00", "", "7h"},
		{"overnight shift", "22:00", "02:00", "", "3h"},
		{"extra hours added", "09:00", "17:00", "1.5", "8.5h"},
		{"extra with trailing h", "09:00", "17:00", "2h", "9h"},
		{"extra with junk suffix", "09:00", "17:00", "1.5 on call", "8.5h"},
		{"unparseable extra ignored", "09:00", "17:00", "a bit", "7h"},
		{"short day floors at zero", "09:00", "09:30", "", "0h"},
		{"exactly one hour floors at zero", "09:00", "10:00", "", "0h"},
		{"fractional result", "09:00", "17:20", "", "7.3h"},
		{"mixed formats", "9:00 AM", "17.30", "", "7.5h"},
		{"missing start", "", "17:00", "2", "-"},
		{"missing end", "09:00", "", "2", "-"},
		{"both missing", "", "", "", "-"},
		{"unparseable start", "sunrise", "17:00", "", "-"},
		{"unparseable end", "09:00", "late", "", "-"},
		{"extra only never counts", "", "", "3", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWorkedHours(tt.start, tt.end, tt.extra)
			if got != tt.want {
				t.Errorf("ComputeWorkedHours(%q, %q, %q) = %q, want %q",
					tt.start, tt.end, tt.extra, got, tt.want)
			}
		})
	}
}

func TestParseWorkedHours(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"8h", 8, true},
		{"7.5h", 7.5, true},
		{"1.5", 1.5, true},
		{"0h", 0, true},
		{"2h 30m", 2, true},
		{"-", 0, false},
		{"", 0, false},
		{"none", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseWorkedHours(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseWorkedHours(%q) = (%v, %v), want (%v, %v)",
					tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		input float64
		want  string
	}{
		{0, "0h"},
		{3, "3h"},
		{8.5, "8.5h"},
		{7.333333, "7.3h"},
		{102, "102h"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatHours(tt.input); got != tt.want {
				t.Errorf("FormatHours(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Round-trip: every value ComputeWorkedHours can produce parses back to
// the number it was formatted from.
func TestWorkedHoursRoundTrip(t *testing.T) {
	for _, want := range []float64{0, 3, 7.5, 8.3} {
		s := FormatHours(want)
		got, ok := ParseWorkedHours(s)
		if !ok || got != want {
			t.Errorf("ParseWorkedHours(FormatHours(%v)) = (%v, %v), want (%v, true)", want, got, ok, want)
		}
	}
}
