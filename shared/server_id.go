package shared

// CompareIds orders Mastodon status IDs. IDs are numeric strings without leading zeros,
// so a longer ID is always newer; IDs of equal length compare lexically.
func CompareIds(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// IsIdInRange is true if minId <= id <= maxId.
func IsIdInRange(id, minId, maxId string) bool {
	return CompareIds(id, minId) >= 0 && CompareIds(id, maxId) <= 0
}
