package migrate

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var sqlFileRe = regexp.MustCompile(`^(\d{14})_([a-z0-9_]+)\.sql$`)

const (
	upMarker   = "-- +goose Up"
	downMarker = "-- +goose Down"
)

// ValidateDir checks that dir holds at least one migration, that every .sql
// file is named <YYYYMMDDHHMMSS>_<snake_name>.sql with a unique version and
// name, and that each file declares an Up section before its Down section.
func ValidateDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("dir is required")
	}
	paths, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return fmt.Errorf("list migrations in %q: %w", dir, err)
	}
	if len(paths) == 0 {
		return fmt.Errorf("no migrations found in %q", dir)
	}

	versions := make(map[string]string, len(paths))
	names := make(map[string]string, len(paths))
	for _, path := range paths {
		file := filepath.Base(path)
		m := sqlFileRe.FindStringSubmatch(file)
		if m == nil {
			return fmt.Errorf("invalid migration filename %q (expected YYYYMMDDHHMMSS_name.sql)", file)
		}
		if prev, ok := versions[m[1]]; ok {
			return fmt.Errorf("duplicate migration version %s in %q and %q", m[1], prev, file)
		}
		if prev, ok := names[m[2]]; ok {
			return fmt.Errorf("duplicate migration name %q in %q and %q", m[2], prev, file)
		}
		versions[m[1]] = file
		names[m[2]] = file

		if err := checkSections(path); err != nil {
			return err
		}
	}
	return nil
}

func checkSections(path string) error {
	body, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	text := string(body)
	up := strings.Index(text, upMarker)
	down := strings.Index(text, downMarker)
	switch {
	case up < 0:
		return fmt.Errorf("migration %q missing %q", filepath.Base(path), upMarker)
	case down < 0:
		return fmt.Errorf("migration %q missing %q", filepath.Base(path), downMarker)
	case down < up:
		return fmt.Errorf("migration %q declares Down before Up", filepath.Base(path))
	}
	return nil
}
