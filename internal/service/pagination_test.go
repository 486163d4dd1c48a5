package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePaging(t *testing.T) {
	cases := []struct {
		name                  string
		page, perPage         int
		wantPage, wantPerPage int
	}{
		{"defaults kept", 1, 20, 1, 20},
		{"zero page clamped", 0, 20, 1, 20},
		{"negative page clamped", -3, 20, 1, 20},
		{"zero per_page defaulted", 2, 0, 2, 20},
		{"oversized per_page defaulted", 2, 101, 2, 20},
		{"max per_page allowed", 2, 100, 2, 100},
		{"min per_page allowed", 2, 1, 2, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			page, perPage := normalizePaging(tc.page, tc.perPage)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantPerPage, perPage)
		})
	}
}

func TestPagePointers(t *testing.T) {
	t.Run("45 items per_page 20", func(t *testing.T) {
		// 第 1 页：20 条，有下一页没上一页
		next, prev := pagePointers(1, 0, 20, 45)
		assert.NotNil(t, next)
		assert.Equal(t, 2, *next)
		assert.Nil(t, prev)

		// 第 2 页：20 条，前后都有
		next, prev = pagePointers(2, 20, 20, 45)
		assert.NotNil(t, next)
		assert.Equal(t, 3, *next)
		assert.NotNil(t, prev)
		assert.Equal(t, 1, *prev)

		// 第 3 页：5 条，没有下一页
		next, prev = pagePointers(3, 40, 5, 45)
		assert.Nil(t, next)
		assert.NotNil(t, prev)
		assert.Equal(t, 2, *prev)
	})

	t.Run("page far beyond end still has prev", func(t *testing.T) {
		next, prev := pagePointers(9999, 9998*20, 0, 45)
		assert.Nil(t, next)
		assert.NotNil(t, prev)
		assert.Equal(t, 9998, *prev)
	})

	t.Run("single page collection", func(t *testing.T) {
		next, prev := pagePointers(1, 0, 5, 5)
		assert.Nil(t, next)
		assert.Nil(t, prev)
	})

	t.Run("empty collection", func(t *testing.T) {
		next, prev := pagePointers(1, 0, 0, 0)
		assert.Nil(t, next)
		assert.Nil(t, prev)
	})
}
