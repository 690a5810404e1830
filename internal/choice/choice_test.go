package choice

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Choice
		wantErr bool
	}{
		{"any", Any, false},
		{"ANY", Any, false},
		{"", Any, false},
		{"  7 ", ID(7), false},
		{"0", ID(0), false},
		{"-3", ID(-3), false},
		{"seven", Any, true},
		{"1.5", Any, true},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAnyNeverEqualsAnID(t *testing.T) {
	if Any == ID(0) {
		t.Fatal("Any must not collide with id 0")
	}
	if !Any.IsAny() || ID(0).IsAny() {
		t.Fatal("IsAny mismatch")
	}
	if _, ok := Any.Value(); ok {
		t.Error("Any.Value() should report false")
	}
	if id, ok := ID(42).Value(); !ok || id != 42 {
		t.Errorf("ID(42).Value() = %d, %v", id, ok)
	}
}

func TestString(t *testing.T) {
	if Any.String() != "any" {
		t.Errorf("Any.String() = %q", Any.String())
	}
	if ID(12).String() != "12" {
		t.Errorf("ID(12).String() = %q", ID(12).String())
	}
}
