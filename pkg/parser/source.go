package parser

import (
	"context"
	"fmt"
	"os"
)

// ReadFile returns the full text of a detection log.
func ReadFile(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	data, err := os.ReadFile(path) // #nosec G304 -- paths come from walking the user's root
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
