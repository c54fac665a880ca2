package settings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Keys used in settings.ini.
const (
	keyFormatFull  = "FormatFull"
	keyMondayFirst = "MondayFirst"
	keyDateOrderA  = "DateOrderA"
	keyDateOrderB  = "DateOrderB"
	keyDateOrderC  = "DateOrderC"
)

// Parse reads key-per-line settings from r on top of the defaults.
//
// Each line is "Key value" with an integer value. Unknown keys, malformed
// lines and unparsable values are skipped. A resulting date order that is not
// a permutation falls back to the default order.
func Parse(r io.Reader) (Settings, error) {
	s := Default()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		val, err := strconv.Atoi(fields[1])
		if err != nil {
			continue
		}

		switch fields[0] {
		case keyFormatFull:
			s.Use24Hour = val != 0
		case keyMondayFirst:
			s.MondayFirst = val != 0
		case keyDateOrderA:
			s.DateOrder[0] = DateField(val)
		case keyDateOrderB:
			s.DateOrder[1] = DateField(val)
		case keyDateOrderC:
			s.DateOrder[2] = DateField(val)
		}
	}

	if err := s.Validate(); err != nil {
		s.DateOrder = Default().DateOrder
		return s, err
	}

	return s, scanner.Err()
}

// WriteTo writes s as key-per-line text.
func (s Settings) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d\n", keyFormatFull, boolToInt(s.Use24Hour))
	fmt.Fprintf(&b, "%s %d\n", keyMondayFirst, boolToInt(s.MondayFirst))
	fmt.Fprintf(&b, "%s %d\n", keyDateOrderA, int(s.DateOrder[0]))
	fmt.Fprintf(&b, "%s %d\n", keyDateOrderB, int(s.DateOrder[1]))
	fmt.Fprintf(&b, "%s %d\n", keyDateOrderC, int(s.DateOrder[2]))

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Load reads settings from path.
//
// A missing file yields the defaults with no error. Any other failure yields
// usable settings (defaults, or whatever was parsed) together with the error
// so the caller can log it.
func Load(path string) (Settings, error) {
	f, err := os.Open(path) // #nosec G304 - path comes from the command line
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to open settings: %w", err)
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return s, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path, creating the parent directory. The file is written
// to a temporary name and renamed into place.
func Save(path string, s Settings) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create settings file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := s.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	return os.Rename(tmpName, path)
}

// DefaultPath returns the settings location under the user's home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".odclock", "settings.ini")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
