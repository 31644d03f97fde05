package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int
		want  Pagination
	}{
		{
			name: "first of three pages", page: 1, limit: 2, total: 5,
			want: Pagination{Page: 1, Limit: 2, TotalItems: 5, TotalPages: 3, HasNext: true, HasPrev: false},
		},
		{
			name: "last partial page", page: 3, limit: 2, total: 5,
			want: Pagination{Page: 3, Limit: 2, TotalItems: 5, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name: "empty collection", page: 1, limit: 10, total: 0,
			want: Pagination{Page: 1, Limit: 10, TotalItems: 0, TotalPages: 0, HasNext: false, HasPrev: false},
		},
		{
			name: "page past the end", page: 5, limit: 2, total: 5,
			want: Pagination{Page: 5, Limit: 2, TotalItems: 5, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			name: "exact division", page: 2, limit: 5, total: 10,
			want: Pagination{Page: 2, Limit: 5, TotalItems: 10, TotalPages: 2, HasNext: false, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.limit, tt.total))
		})
	}
}
