package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON encodes s to w as indented JSON.
func WriteJSON(s Scene, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Export writes s as JSON to the file at path, replacing it if present.
func Export(s Scene, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteJSON(s, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
