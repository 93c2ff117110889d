package migrate

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"
	"time"
)

var nameSanitizeRe = regexp.MustCompile(`[^a-z0-9]+`)

var migrationTmpl = template.Must(template.New("migration").Parse(`-- +goose Up
-- +goose StatementBegin
-- {{.Name}}: reporting tables are written upstream; keep this migration additive.
-- +goose StatementEnd

-- +goose Down
-- +goose StatementBegin
-- rollback {{.Name}}
-- +goose StatementEnd
`))

// CreateSQLMigration writes an empty goose migration named
// <dir>/<YYYYMMDDHHMMSS>_<snake_name>.sql and returns its path.
func CreateSQLMigration(dir string, name string) (string, error) {
	return createAt(dir, name, time.Now().UTC())
}

func createAt(dir, name string, now time.Time) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("dir is required")
	}
	safe := strings.Trim(nameSanitizeRe.ReplaceAllString(strings.ToLower(name), "_"), "_")
	if safe == "" {
		return "", fmt.Errorf("name %q results in empty sanitized filename", name)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("mkdir %q: %w", dir, err)
	}
	existing, err := filepath.Glob(filepath.Join(dir, "*_"+safe+".sql"))
	if err != nil {
		return "", fmt.Errorf("scan %q: %w", dir, err)
	}
	if len(existing) > 0 {
		return "", fmt.Errorf("migration named %q already exists: %s", safe, existing[0])
	}

	var body bytes.Buffer
	if err := migrationTmpl.Execute(&body, struct{ Name string }{Name: safe}); err != nil {
		return "", fmt.Errorf("render migration: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_%s.sql", now.Format("20060102150405"), safe))
	if err := os.WriteFile(path, body.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write migration %q: %w", path, err)
	}
	return path, nil
}
