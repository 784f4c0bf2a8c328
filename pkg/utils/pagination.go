package utils

// CalculateTotalPages rounds up; zero totals yield zero pages.
func CalculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}

// CalculateOffset works on zero-indexed pages. Negative pages clamp to
// the first page.
func CalculateOffset(page, perPage int) int {
	if page < 0 {
		return 0
	}
	return page * perPage
}
