package maxsized

import (
	"errors"
	"testing"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want Policy
	}{
		{"access", AccessTouches},
		{"Access-Touches", AccessTouches},
		{"lru", AccessTouches},
		{" write ", WriteOnlyTouches},
		{"write-only", WriteOnlyTouches},
		{"write-only-touches", WriteOnlyTouches},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePolicy(tt.in)
			if err != nil {
				t.Fatalf("ParsePolicy(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePolicy(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePolicy_Unknown(t *testing.T) {
	_, err := ParsePolicy("fifo")
	if !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("ParsePolicy(fifo) error = %v, want ErrUnknownPolicy", err)
	}
}

func TestPolicy_String(t *testing.T) {
	for _, p := range Policies() {
		back, err := ParsePolicy(p.String())
		if err != nil || back != p {
			t.Errorf("ParsePolicy(%q) = %v, %v; want %v", p.String(), back, err, p)
		}
	}
	if got := Policy(9).String(); got != "Policy(9)" {
		t.Errorf("Policy(9).String() = %q", got)
	}
}
