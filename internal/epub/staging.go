package epub

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// newStagingDir creates a uniquely named working directory under the system
// temp dir. The random name keeps concurrent calls from colliding. Callers
// must remove the directory on every exit path, normally via defer.
func newStagingDir(prefix string) (string, error) {
	dir := filepath.Join(os.TempDir(), fmt.Sprintf("%s-%s", prefix, uuid.New().String()))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create staging directory: %w", err)
	}
	return dir, nil
}
