package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// IsBlankPattern reports whether expr should be treated as "no pattern configured".
func IsBlankPattern(expr string) bool {
	return strings.TrimSpace(expr) == ""
}

// CompileSingleGroupPattern compiles expr and checks that it has exactly one capture group.
func CompileSingleGroupPattern(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	if n := re.NumSubexp(); n != 1 {
		return nil, fmt.Errorf("url pattern %q must have exactly one capture group, got %d", expr, n)
	}
	return re, nil
}
