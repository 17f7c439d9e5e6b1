package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMeta(t *testing.T) {
	tests := []struct {
		name       string
		params     *Params
		total      int64
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{name: "first page of many", params: &Params{Page: 1, Limit: 20}, total: 45, totalPages: 3, hasNext: true, hasPrev: false},
		{name: "middle page", params: &Params{Page: 2, Limit: 20}, total: 45, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last page", params: &Params{Page: 3, Limit: 20}, total: 45, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "exact fit", params: &Params{Page: 1, Limit: 20}, total: 40, totalPages: 2, hasNext: true, hasPrev: false},
		{name: "empty result", params: &Params{Page: 1, Limit: 20}, total: 0, totalPages: 0, hasNext: false, hasPrev: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := GetMeta(tt.params, tt.total)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
			assert.Equal(t, tt.hasNext, meta.HasNext)
			assert.Equal(t, tt.hasPrev, meta.HasPrev)
			assert.Equal(t, tt.total, meta.Total)
		})
	}
}

func TestNewResponse(t *testing.T) {
	data := []string{"a", "b"}
	resp := NewResponse(data, &Params{Page: 1, Limit: 2}, 5)

	assert.Equal(t, data, resp.Data)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
