package service

import "github.com/lensdistro/lens-backend/internal/response"

// normalizePage clamps page/per_page to sane bounds and returns the SQL
// limit and offset.
func normalizePage(page, perPage int) (p, pp, limit, offset int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	if perPage > 100 {
		perPage = 100
	}
	return page, perPage, perPage, (page - 1) * perPage
}

// buildPagination assembles the response pagination block.
func buildPagination(page, perPage, total int) *response.Pagination {
	return &response.Pagination{
		Page:       page,
		PerPage:    perPage,
		TotalItems: total,
		TotalPages: (total + perPage - 1) / perPage,
	}
}
