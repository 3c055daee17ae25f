package cmd

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jparise/s3find/internal/findopt"
)

func TestColorMode(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
		want    colorMode
	}{
		{name: "auto", value: "auto", want: colorAuto},
		{name: "always", value: "always", want: colorAlways},
		{name: "never", value: "never", want: colorNever},
		{name: "invalid value", value: "invalid", wantErr: true},
		{name: "empty string", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c colorMode
			err := c.Set(tt.value)

			if tt.wantErr {
				if err == nil {
					t.Errorf("colorMode.Set(%q) expected error, got nil", tt.value)
				}
				return
			}

			if err != nil {
				t.Errorf("colorMode.Set(%q) unexpected error: %v", tt.value, err)
				return
			}

			if c != tt.want {
				t.Errorf("colorMode.Set(%q) = %v, want %v", tt.value, c, tt.want)
			}
			if c.String() != tt.value {
				t.Errorf("colorMode.String() = %q, want %q", c.String(), tt.value)
			}
			if c.Type() != "colorMode" {
				t.Errorf("colorMode.Type() = %q, want %q", c.Type(), "colorMode")
			}
		})
	}
}

func TestColorModeEnabled(t *testing.T) {
	always, never := colorAlways, colorNever
	if !always.enabled() {
		t.Errorf("colorAlways.enabled() = false, want true")
	}
	if never.enabled() {
		t.Errorf("colorNever.enabled() = true, want false")
	}
}

func TestSizeFlag(t *testing.T) {
	var f sizeFlag
	for _, v := range []string{"+5k", "-1M", "100"} {
		if err := f.Set(v); err != nil {
			t.Fatalf("sizeFlag.Set(%q) unexpected error: %v", v, err)
		}
	}

	want := sizeFlag{
		{Op: findopt.SizeBigger, Bytes: 5 << 10},
		{Op: findopt.SizeLower, Bytes: 1 << 20},
		{Op: findopt.SizeEqual, Bytes: 100},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("sizeFlag mismatch (-want +got):\n%s", diff)
	}

	if got := f.String(); got != "[+5120,-1048576,100]" {
		t.Errorf("sizeFlag.String() = %q", got)
	}
	if f.Type() != "size" {
		t.Errorf("sizeFlag.Type() = %q, want %q", f.Type(), "size")
	}

	if err := f.Set("10x"); err == nil {
		t.Error("sizeFlag.Set(\"10x\") expected error, got nil")
	}
	if len(f) != 3 {
		t.Errorf("failed Set changed the flag: %v", f)
	}
}

func TestTimeFlag(t *testing.T) {
	var f timeFlag
	for _, v := range []string{"-2d", "5m"} {
		if err := f.Set(v); err != nil {
			t.Fatalf("timeFlag.Set(%q) unexpected error: %v", v, err)
		}
	}

	want := timeFlag{
		{Op: findopt.TimeLower, Seconds: 2 * 86400},
		{Op: findopt.TimeUpper, Seconds: 300},
	}
	if diff := cmp.Diff(want, f); diff != "" {
		t.Errorf("timeFlag mismatch (-want +got):\n%s", diff)
	}
	if got := f.String(); got != "[-172800,300]" {
		t.Errorf("timeFlag.String() = %q", got)
	}
	if err := f.Set("10t"); err == nil {
		t.Error("timeFlag.Set(\"10t\") expected error, got nil")
	}
}

func TestPatternFlag(t *testing.T) {
	tests := []struct {
		name     string
		kind     findopt.PatternKind
		values   []string
		wantType string
		wantErr  bool
	}{
		{
			name:     "glob",
			kind:     findopt.PatternGlob,
			values:   []string{"*.go", "*.md"},
			wantType: "glob",
		},
		{
			name:     "case-insensitive glob",
			kind:     findopt.PatternCaseInsensitiveGlob,
			values:   []string{"README*"},
			wantType: "glob",
		},
		{
			name:     "regex",
			kind:     findopt.PatternRegex,
			values:   []string{`^a`, `b$`},
			wantType: "regex",
		},
		{
			name:    "bad glob",
			kind:    findopt.PatternGlob,
			values:  []string{"[abc"},
			wantErr: true,
		},
		{
			name:    "bad regex",
			kind:    findopt.PatternRegex,
			values:  []string{"(abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPatternFlag(tt.kind)

			var err error
			for _, v := range tt.values {
				if err = f.Set(v); err != nil {
					break
				}
			}

			if tt.wantErr {
				if err == nil {
					t.Errorf("patternFlag.Set(%q) expected error, got nil", tt.values)
				}
				return
			}

			if err != nil {
				t.Fatalf("patternFlag.Set unexpected error: %v", err)
			}
			if f.Type() != tt.wantType {
				t.Errorf("patternFlag.Type() = %q, want %q", f.Type(), tt.wantType)
			}
			if len(f.patterns) != len(tt.values) {
				t.Fatalf("patternFlag has %d patterns, want %d", len(f.patterns), len(tt.values))
			}
			for i, p := range f.patterns {
				if p.Kind != tt.kind || p.Source != tt.values[i] {
					t.Errorf("patterns[%d] = %+v, want kind %v source %q", i, p, tt.kind, tt.values[i])
				}
			}
			if got, want := f.String(), "["+strings.Join(tt.values, ",")+"]"; got != want {
				t.Errorf("patternFlag.String() = %q, want %q", got, want)
			}
		})
	}
}

func TestRegionFlag(t *testing.T) {
	var f regionFlag
	if err := f.Set("eu-west-1"); err != nil {
		t.Fatalf("regionFlag.Set unexpected error: %v", err)
	}
	if f.String() != "eu-west-1" {
		t.Errorf("regionFlag.String() = %q, want %q", f.String(), "eu-west-1")
	}
	if err := f.Set("mars"); err == nil {
		t.Error("regionFlag.Set(\"mars\") expected error, got nil")
	}
	if f.String() != "eu-west-1" {
		t.Errorf("failed Set changed the flag to %q", f.String())
	}
}
