package convert

import (
	"fmt"
	"os"
)

// Scratch lands image bytes in a temp file for a converter run. Converters
// take a path, not a stream. The returned cleanup removes the file and is
// safe to call more than once.
func Scratch(data []byte) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", "oeuvre-*.img")
	if err != nil {
		return "", nil, fmt.Errorf("create scratch file: %w", err)
	}
	_, werr := f.Write(data)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		os.Remove(f.Name())
		return "", nil, fmt.Errorf("write scratch file: %w", werr)
	}
	return f.Name(), func() { os.Remove(f.Name()) }, nil
}
