package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePage(t *testing.T) {
	page, perPage, limit, offset := normalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, perPage)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)

	_, perPage, limit, _ = normalizePage(1, 500)
	assert.Equal(t, 100, perPage)
	assert.Equal(t, 100, limit)

	page, _, _, offset = normalizePage(3, 20)
	assert.Equal(t, 3, page)
	assert.Equal(t, 40, offset)
}

func TestBuildPagination(t *testing.T) {
	p := buildPagination(2, 10, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.PerPage)
	assert.Equal(t, 25, p.TotalItems)
	assert.Equal(t, 3, p.TotalPages)

	assert.Equal(t, 0, buildPagination(1, 10, 0).TotalPages)
}
