package util

import (
	"strconv"
)

// MustParseUint parses s as an unsigned integer, returning 0 on failure.
func MustParseUint(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}

// ParseOptionalUint parses an optional id query/body value.
// Empty input yields nil; malformed input is a validation error.
func ParseOptionalUint(s string) (*uint, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil || v == 0 {
		return nil, Validation("invalid id: " + s)
	}
	id := uint(v)
	return &id, nil
}

// ParsePage reads 1-based page and limit values, falling back to defaultLimit.
func ParsePage(pageStr, limitStr string, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(limitStr)
	if limit < 1 || limit > 100 {
		limit = defaultLimit
	}
	return page, limit
}
