package config

import "strings"

// resolve returns the last non-nil layer value, or def when every layer is unset.
func resolve[T any](def T, values ...*T) T {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func ResolveString(def string, values ...*string) string { return resolve(def, values...) }

func ResolveInt(def int, values ...*int) int { return resolve(def, values...) }

func ResolveBool(def bool, values ...*bool) bool { return resolve(def, values...) }

// ResolveStrings is resolve for lists; an explicitly empty layer clears the list.
func ResolveStrings(def []string, values ...*[]string) []string {
	result := cloneStrings(def)
	for _, v := range values {
		if v == nil {
			continue
		}
		if len(*v) == 0 {
			result = []string{}
			continue
		}
		result = cloneStrings(*v)
	}
	return result
}

func ResolveAndTrim(def string, values ...*string) string {
	return strings.TrimSpace(ResolveString(def, values...))
}
