package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/annolab/crowdtask/internal/config"
)

const configScaffold = `# crowdtask project configuration
access_key: ""
secret_key: ""
localhost: "http://localhost:8080"
sandbox: true
database_url: "postgres://localhost/crowdtask?sslmode=disable"
`

// InitProject scaffolds project configuration in the target directory
// (first argument, default current directory). It refuses to overwrite an
// existing file.
func InitProject(args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	path := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(configScaffold), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("Wrote %s. Fill in your requester credentials, then run setupdb.\n", path)
	return nil
}
