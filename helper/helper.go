package helper

// RemoveDuplicate removes duplicates entries in a list, first occurrence wins
func RemoveDuplicate(s []string) []string {
	keys := make(map[string]bool, len(s))
	result := make([]string, 0, len(s))
	for _, i := range s {
		if keys[i] {
			continue
		}
		keys[i] = true
		result = append(result, i)
	}
	return result
}

// RemoveItem returns the list without any occurrence of item
func RemoveItem(s []string, item string) []string {
	result := make([]string, 0, len(s))
	for _, i := range s {
		if i != item {
			result = append(result, i)
		}
	}
	return result
}
