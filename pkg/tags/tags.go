// Package tags maintains ordered, duplicate-free lists of free-text tags such
// as seed keywords. Functions never mutate their input; callers always receive
// a fresh slice so previously captured snapshots stay stable.
package tags

import "strings"

// Add trims candidate and appends it to list unless it is empty or already
// present (exact, case-sensitive match). It reports whether the list changed.
func Add(list []string, candidate string) ([]string, bool) {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" || Contains(list, trimmed) {
		return clone(list), false
	}
	out := make([]string, 0, len(list)+1)
	out = append(out, list...)
	out = append(out, trimmed)
	return out, true
}

// RemoveAt drops the element at index. Out-of-range indices leave the list
// unchanged.
func RemoveAt(list []string, index int) ([]string, bool) {
	if index < 0 || index >= len(list) {
		return clone(list), false
	}
	out := make([]string, 0, len(list)-1)
	out = append(out, list[:index]...)
	out = append(out, list[index+1:]...)
	return out, true
}

// Contains reports whether value is already in list.
func Contains(list []string, value string) bool {
	for _, existing := range list {
		if existing == value {
			return true
		}
	}
	return false
}

func clone(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}
