package findopt

import (
	"errors"
	"testing"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeSpec
		wantErr bool
	}{
		// Upper, with and without sign
		{name: "plain seconds", input: "1111", want: TimeSpec{TimeUpper, 1111}},
		{name: "minutes", input: "10m", want: TimeSpec{TimeUpper, 600}},
		{name: "positive seconds", input: "+1111", want: TimeSpec{TimeUpper, 1111}},
		{name: "positive minutes", input: "+10m", want: TimeSpec{TimeUpper, 600}},
		{name: "seconds suffix", input: "30s", want: TimeSpec{TimeUpper, 30}},
		{name: "hours", input: "2h", want: TimeSpec{TimeUpper, 7200}},
		{name: "days", input: "+5d", want: TimeSpec{TimeUpper, 5 * 86400}},
		{name: "weeks", input: "1w", want: TimeSpec{TimeUpper, 604800}},

		// Lower
		{name: "negative minutes", input: "-10m", want: TimeSpec{TimeLower, 600}},
		{name: "negative seconds", input: "-1111", want: TimeSpec{TimeLower, 1111}},
		{name: "negative weeks", input: "-2w", want: TimeSpec{TimeLower, 2 * 604800}},

		// Error cases
		{name: "bare minus", input: "-", wantErr: true},
		{name: "bare plus", input: "+", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "negative invalid unit", input: "-10t", wantErr: true},
		{name: "positive invalid unit", input: "+10t", wantErr: true},
		{name: "size unit", input: "10k", wantErr: true},
		{name: "long unit", input: "10days", wantErr: true},
		{name: "unit only", input: "d", wantErr: true},
		{name: "overflow", input: "99999999999999w", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTime(tt.input)

			if tt.wantErr {
				if !errors.Is(err, ErrTimeParse) {
					t.Errorf("ParseTime(%q) error = %v, want %v", tt.input, err, ErrTimeParse)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseTime(%q) unexpected error: %v", tt.input, err)
				return
			}

			if got != tt.want {
				t.Errorf("ParseTime(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimeSpecStringRoundTrip(t *testing.T) {
	for _, input := range []string{"1111", "-1111", "+10m", "-10m", "3d", "0"} {
		ts, err := ParseTime(input)
		if err != nil {
			t.Fatalf("ParseTime(%q) unexpected error: %v", input, err)
		}

		again, err := ParseTime(ts.String())
		if err != nil {
			t.Fatalf("ParseTime(%q) unexpected error: %v", ts.String(), err)
		}
		if again != ts {
			t.Errorf("ParseTime(%q) = %+v, want %+v", ts.String(), again, ts)
		}
	}
}
