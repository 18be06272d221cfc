package utils

// Duplicates returns the values that occur more than once in slice, in the
// order of their second occurrence. Each value is reported once.
func Duplicates[T comparable](slice []T) []T {
	seen := make(map[T]int, len(slice))
	var dups []T
	for _, item := range slice {
		seen[item]++
		if seen[item] == 2 {
			dups = append(dups, item)
		}
	}
	return dups
}
