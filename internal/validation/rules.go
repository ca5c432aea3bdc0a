package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Required fails on nil value
func Required[V any](message string) Rule[*V] {
	return Must(func(v *V) bool {
		return v != nil
	}, message)
}

// NotBlank fails on empty or whitespace-only string, nil passes
func NotBlank(message string) Rule[*string] {
	return Must(func(s *string) bool {
		return s == nil || !IsBlank(*s)
	}, message)
}

// MaxLength fails when string is longer than max characters, nil passes.
// The format receives max as its only argument.
func MaxLength(max int, format string) Rule[*string] {
	return Must(func(s *string) bool {
		return s == nil || utf8.RuneCountInString(*s) <= max
	}, fmt.Sprintf(format, max))
}

// Matches fails when string doesn't match pattern, nil passes
func Matches(pattern *regexp.Regexp, message string) Rule[*string] {
	return Must(func(s *string) bool {
		return s == nil || pattern.MatchString(*s)
	}, message)
}

// OneOf fails when string is not one of allowed values, nil passes.
// The format receives comma-separated allowed values as its only argument.
func OneOf(allowed []string, format string) Rule[*string] {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}

	return Must(func(s *string) bool {
		if s == nil {
			return true
		}
		_, ok := set[*s]
		return ok
	}, fmt.Sprintf(format, strings.Join(allowed, ", ")))
}

// NotEmpty fails on nil or empty list
func NotEmpty[E any](message string) Rule[[]E] {
	return Must(func(list []E) bool {
		return len(list) > 0
	}, message)
}

// IsBlank reports whether s is empty or consists of whitespace only
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
