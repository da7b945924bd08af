// Copyright 2024 The Monokle Authors.
// SPDX-License-Identifier: Apache-2.0

package nodepath

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads the textual form of a path. Both "a[*].b" and "a.*.b"
// denote a wildcard over the elements of sequence a.
func Parse(str string) (Path, error) {
	if len(strings.TrimSpace(str)) == 0 {
		return nil, fmt.Errorf("Expected path to be non-empty")
	}

	var result Path
	rest := str

	if strings.HasPrefix(rest, "$") {
		result = append(result, Root())
		rest = rest[1:]
		if len(rest) == 0 {
			return nil, fmt.Errorf("Expected path '%s' to have steps after root", str)
		}
		if rest[0] != '.' && rest[0] != '[' {
			return nil, fmt.Errorf("Expected '.' or '[' after root in path '%s'", str)
		}
		rest = strings.TrimPrefix(rest, ".")
	}

	expectKey := true

	for len(rest) > 0 {
		switch {
		case rest[0] == '[':
			end := closingBracket(rest)
			if end < 0 {
				return nil, fmt.Errorf("Expected closing ']' in path '%s'", str)
			}
			step, err := parseBracket(rest[1:end])
			if err != nil {
				return nil, fmt.Errorf("Parsing path '%s': %s", str, err)
			}
			result = append(result, step)
			rest = rest[end+1:]
			expectKey = false

		case rest[0] == '.':
			if expectKey {
				return nil, fmt.Errorf("Expected key before '.' in path '%s'", str)
			}
			rest = rest[1:]
			if len(rest) == 0 {
				return nil, fmt.Errorf("Expected key after trailing '.' in path '%s'", str)
			}
			expectKey = true

		default:
			if !expectKey {
				return nil, fmt.Errorf("Expected '.' or '[' before '%s' in path '%s'", rest, str)
			}
			end := strings.IndexAny(rest, ".[")
			if end < 0 {
				end = len(rest)
			}
			key := rest[:end]
			if key == "*" {
				result = append(result, Wildcard())
			} else {
				result = append(result, Key(key))
			}
			rest = rest[end:]
			expectKey = false
		}
	}

	return result, nil
}

// MustParse is Parse for paths known at compile time.
func MustParse(str string) Path {
	path, err := Parse(str)
	if err != nil {
		panic(err)
	}
	return path
}

func parseBracket(content string) (Step, error) {
	switch {
	case content == "*":
		return Wildcard(), nil

	case strings.HasPrefix(content, `"`):
		key, err := strconv.Unquote(content)
		if err != nil {
			return Step{}, fmt.Errorf("Unquoting key %s: %s", content, err)
		}
		return Key(key), nil

	default:
		idx, err := strconv.Atoi(content)
		if err != nil || idx < 0 {
			return Step{}, fmt.Errorf("Expected index '%s' to be a non-negative integer", content)
		}
		return Index(idx), nil
	}
}

// closingBracket returns the offset of the ']' closing the '[' at
// str[0], skipping over quoted keys.
func closingBracket(str string) int {
	inQuotes := false
	for i := 1; i < len(str); i++ {
		switch str[i] {
		case '\\':
			if inQuotes {
				i++
			}
		case '"':
			inQuotes = !inQuotes
		case ']':
			if !inQuotes {
				return i
			}
		}
	}
	return -1
}
