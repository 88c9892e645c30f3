package gen

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// debugName maps an output file to its unformatted sidecar. Keep it a .go
// file so editors can syntax highlight it.
func debugName(filename string) string {
	return strings.TrimSuffix(filename, ".go") + ".unformatted.go"
}

// writeDebugUnformatted writes unformatted code to a sidecar file next to the
// intended output. This is best-effort and should never make generation fail
// harder.
func writeDebugUnformatted(outDir, filename string, content []byte) error {
	if outDir == "" || filename == "" {
		return nil
	}

	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(outDir, debugName(filename)), content, filePerm)
}

// removeDebugUnformatted deletes a stale sidecar once the file formats again.
func removeDebugUnformatted(outDir, filename string) error {
	err := os.Remove(filepath.Join(outDir, debugName(filename)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	return nil
}
