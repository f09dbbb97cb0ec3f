package engine

import (
	"fmt"
	"io"
	"log"
	"os"
)

var debugLog = log.New(io.Discard, "", log.Ltime|log.Lmicroseconds)

// EnableDebugLog sends engine debug output to the file at path, creating or
// truncating it. The returned file should be closed when the program exits.
func EnableDebugLog(path string) (io.Closer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create debug log: %w", err)
	}
	debugLog.SetOutput(f)
	return f, nil
}

// SetDebugOutput redirects debug output, mostly for tests.
func SetDebugOutput(w io.Writer) {
	debugLog.SetOutput(w)
}
