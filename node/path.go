package node

import (
	"errors"
	"fmt"
	"strings"
)

// ParsePath splits a dotted field path such as "next.next.value" into its segments.
func ParsePath(path string) ([]string, error) {
	if path == "" {
		return nil, errors.New("empty path")
	}

	segments := strings.Split(path, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf("invalid path %q: empty segment", path)
		}
	}

	return segments, nil
}
