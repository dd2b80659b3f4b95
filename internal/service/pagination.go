package service

const defaultPerPage = 50

// Page is one page of an admin listing.
type Page[T any] struct {
	Items      []T
	Total      int64
	TotalPages int
	Page       int
	PerPage    int
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func normalizePerPage(perPage, fallback int) int {
	if perPage <= 0 {
		return fallback
	}
	if perPage > 200 {
		return 200
	}
	return perPage
}

func calculateTotalPages(total int64, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	if total == 0 {
		return 1
	}
	return int((total + int64(perPage) - 1) / int64(perPage))
}
