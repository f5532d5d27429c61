package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	t.Run("Zero Items", func(t *testing.T) {
		assert.Equal(t, 0, TotalPages(0, 10), "zero items must yield zero pages, not one")
	})

	t.Run("Exact Multiple", func(t *testing.T) {
		assert.Equal(t, 2, TotalPages(20, 10))
	})

	t.Run("Remainder Rounds Up", func(t *testing.T) {
		assert.Equal(t, 3, TotalPages(25, 10))
	})

	t.Run("Single Partial Page", func(t *testing.T) {
		assert.Equal(t, 1, TotalPages(1, 10))
	})

	t.Run("Invalid Page Size", func(t *testing.T) {
		assert.Equal(t, 0, TotalPages(25, 0))
	})
}

func TestPage(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i + 1
	}

	t.Run("Last Partial Page", func(t *testing.T) {
		got := Page(items, 3, 10)
		assert.Equal(t, []int{21, 22, 23, 24, 25}, got)
	})

	t.Run("Full Page", func(t *testing.T) {
		got := Page(items, 1, 10)
		assert.Len(t, got, 10)
		assert.Equal(t, 1, got[0])
		assert.Equal(t, 10, got[9])
	})

	t.Run("Beyond Last Page", func(t *testing.T) {
		assert.Empty(t, Page(items, 4, 10))
	})

	t.Run("Zero Page Number", func(t *testing.T) {
		assert.Empty(t, Page(items, 0, 10))
	})
}

func TestWindow(t *testing.T) {
	t.Run("No Pages", func(t *testing.T) {
		assert.Nil(t, Window(1, 0))
	})

	t.Run("Small Set Has No Gaps", func(t *testing.T) {
		got := Window(2, 5)
		assert.Equal(t, []PageItem{
			{Number: 1}, {Number: 2}, {Number: 3}, {Number: 4}, {Number: 5},
		}, got)
	})

	t.Run("Middle Page Collapses Both Sides", func(t *testing.T) {
		got := Window(10, 20)
		assert.Equal(t, []PageItem{
			{Number: 1},
			{Gap: true},
			{Number: 8}, {Number: 9}, {Number: 10}, {Number: 11}, {Number: 12},
			{Gap: true},
			{Number: 20},
		}, got)
	})

	t.Run("First Page Collapses Right Side Only", func(t *testing.T) {
		got := Window(1, 20)
		assert.Equal(t, []PageItem{
			{Number: 1}, {Number: 2}, {Number: 3},
			{Gap: true},
			{Number: 20},
		}, got)
	})

	t.Run("Adjacent Pages Never Produce A Gap", func(t *testing.T) {
		got := Window(4, 7)
		for _, item := range got {
			assert.False(t, item.Gap, "7 pages around page 4 are all within the window")
		}
	})

	t.Run("Current Clamped To Range", func(t *testing.T) {
		got := Window(99, 3)
		assert.Equal(t, []PageItem{{Number: 1}, {Number: 2}, {Number: 3}}, got)
	})
}
