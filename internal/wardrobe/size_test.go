package wardrobe

import "testing"

func TestParseSizeToMaxMonths(t *testing.T) {
	tests := []struct {
		label      string
		wantMonths int
		wantOK     bool
	}{
		{"2T", 24, true},
		{"6-9M", 9, true},
		{"3M", 3, true},
		{"0-3 m", 3, true},
		{"12-18M", 18, true},
		{"3Y", 36, true},
		{"4T-5T", 48, true},
		{"4", 48, true},
		{" 13 ", 156, true},
		{"0", 0, true},
		{"NB", 1, true},
		{"newborn", 1, true},
		{"New Born", 1, true},
		{"XL", 0, false},
		{"14", 0, false},
		{"", 0, false},
		{"MEDIUM", 0, false},
		{"-3", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseSizeToMaxMonths(tt.label)
			if ok != tt.wantOK {
				t.Fatalf("ParseSizeToMaxMonths(%q) ok = %v, want %v", tt.label, ok, tt.wantOK)
			}
			if ok && got != tt.wantMonths {
				t.Errorf("ParseSizeToMaxMonths(%q) = %d, want %d", tt.label, got, tt.wantMonths)
			}
		})
	}
}

func TestParseSizeToMaxMonths_NeverNegative(t *testing.T) {
	labels := []string{"2T", "6-9M", "4", "NB", "0M", "0T", "-4T", "M-6", "Y-2", "3-6-9M", "99999999999999999999M", "5Y",
		"800000000000000000T", "9223372036854775807M", "9223372036854775807"}
	for _, label := range labels {
		if got, ok := ParseSizeToMaxMonths(label); ok && got < 0 {
			t.Errorf("ParseSizeToMaxMonths(%q) = %d, want >= 0", label, got)
		}
	}
}

func TestParseSizeToMaxMonths_LongNumbersIgnored(t *testing.T) {
	tests := []struct {
		label      string
		wantMonths int
		wantOK     bool
	}{
		{"800000000000000000T", 0, false},
		{"9223372036854775807M", 0, false},
		{"1000M", 0, false},
		{"999M", 999, true},
		// The long run is dropped, the real size survives.
		{"12345-24M", 24, true},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseSizeToMaxMonths(tt.label)
			if ok != tt.wantOK || (ok && got != tt.wantMonths) {
				t.Errorf("ParseSizeToMaxMonths(%q) = %d, %v, want %d, %v", tt.label, got, ok, tt.wantMonths, tt.wantOK)
			}
		})
	}
}
