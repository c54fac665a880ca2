package settings

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	s := Default()

	if !s.Use24Hour {
		t.Error("Use24Hour should default to true")
	}
	if s.MondayFirst {
		t.Error("MondayFirst should default to false")
	}
	if s.DateOrder != [3]DateField{Day, Month, Year} {
		t.Errorf("DateOrder = %v, want [Day Month Year]", s.DateOrder)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		order [3]DateField
		valid bool
	}{
		{"DMY", [3]DateField{Day, Month, Year}, true},
		{"YMD", [3]DateField{Year, Month, Day}, true},
		{"MDY", [3]DateField{Month, Day, Year}, true},
		{"duplicate", [3]DateField{Day, Day, Year}, false},
		{"out of range", [3]DateField{Day, Month, 3}, false},
		{"negative", [3]DateField{-1, Month, Year}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Settings{DateOrder: tt.order}
			err := s.Validate()
			if tt.valid && err != nil {
				t.Errorf("Validate() error = %v, want nil", err)
			}
			if !tt.valid && !errors.Is(err, ErrInvalidOrder) {
				t.Errorf("Validate() error = %v, want ErrInvalidOrder", err)
			}
		})
	}
}

func TestSwapDateFields(t *testing.T) {
	s := Default()

	s.SwapDateFields(1, 2)
	if s.DateOrder != [3]DateField{Day, Year, Month} {
		t.Errorf("DateOrder = %v, want [Day Year Month]", s.DateOrder)
	}

	s.SwapDateFields(2, 3) // ignored
	if s.DateOrder != [3]DateField{Day, Year, Month} {
		t.Errorf("out-of-range swap changed DateOrder to %v", s.DateOrder)
	}
}

func TestParse(t *testing.T) {
	input := "FormatFull 0\nMondayFirst 1\nDateOrderA 2\nDateOrderB 1\nDateOrderC 0\n"

	s, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := Settings{Use24Hour: false, MondayFirst: true, DateOrder: [3]DateField{Year, Month, Day}}
	if s != want {
		t.Errorf("Parse() = %+v, want %+v", s, want)
	}
}

func TestParseIgnoresUnknownAndMalformed(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"Volume 5",
		"FormatFull",
		"MondayFirst yes",
		"",
		"   MondayFirst   1   ",
	}, "\n")

	s, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	want := Default()
	want.MondayFirst = true
	if s != want {
		t.Errorf("Parse() = %+v, want %+v", s, want)
	}
}

func TestParseInvalidOrderFallsBack(t *testing.T) {
	s, err := Parse(strings.NewReader("FormatFull 0\nDateOrderA 1\n"))
	if !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("Parse() error = %v, want ErrInvalidOrder", err)
	}
	if s.DateOrder != Default().DateOrder {
		t.Errorf("DateOrder = %v, want default", s.DateOrder)
	}
	if s.Use24Hour {
		t.Error("valid keys should still be applied")
	}
}

func TestWriteTo(t *testing.T) {
	s := Settings{Use24Hour: true, MondayFirst: false, DateOrder: [3]DateField{Month, Day, Year}}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	want := "FormatFull 1\nMondayFirst 0\nDateOrderA 1\nDateOrderB 0\nDateOrderC 2\n"
	if buf.String() != want {
		t.Errorf("WriteTo() wrote %q, want %q", buf.String(), want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing", "settings.ini"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s != Default() {
		t.Errorf("Load() = %+v, want defaults", s)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".odclock", "settings.ini")
	s := Settings{Use24Hour: false, MondayFirst: true, DateOrder: [3]DateField{Year, Day, Month}}

	if err := Save(path, s); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != s {
		t.Errorf("Load() = %+v, want %+v", got, s)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only settings.ini", len(entries))
	}
}
