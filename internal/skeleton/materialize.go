package skeleton

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/stencil-labs/stencil/internal/platform"
)

// Materialize walks the skeleton descriptor and creates each node under
// root, printing a progress line per node to w. Existing directories are
// reused and existing files are never overwritten. The first I/O error
// aborts the walk; already-created nodes are left in place.
func Materialize(w io.Writer, root string) error {
	for _, node := range Nodes() {
		path := filepath.Join(root, node.Path)
		switch node.Kind {
		case KindDir:
			if err := ensureDir(w, path); err != nil {
				return err
			}
		case KindFile:
			if err := ensureFile(w, path, node.Body); err != nil {
				return err
			}
		}
	}
	return nil
}

// Missing returns the descriptor paths that do not exist under root, with
// the correct kind. Used by the doctor command.
func Missing(root string) []Node {
	var missing []Node
	for _, node := range Nodes() {
		info, err := os.Stat(filepath.Join(root, node.Path))
		if err != nil {
			missing = append(missing, node)
			continue
		}
		if node.Kind == KindDir && !info.IsDir() {
			missing = append(missing, node)
		}
	}
	return missing
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if parent dirs needed creation.
	if err := platform.Chmod(path, 0o755); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates a file with content if it doesn't exist.
func ensureFile(w io.Writer, path, content string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	if err := platform.Chmod(path, 0o644); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}
