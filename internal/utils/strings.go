package utils

import "strings"

// Contains reports a case-insensitive substring match.
func Contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// NormalizeIC strips spaces and dashes from an identity card number.
func NormalizeIC(ic string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(ic))
}

func Has(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// AppendUnique appends the values not already present, keeping order.
func AppendUnique(list []string, vs ...string) ([]string, []string) {
	added := make([]string, 0, len(vs))
	for _, v := range vs {
		if v == "" || Has(list, v) {
			continue
		}
		list = append(list, v)
		added = append(added, v)
	}
	return list, added
}
