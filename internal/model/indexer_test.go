package model

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexAndAttributesRoundTrip(t *testing.T) {
	for range 10 {
		// Arrange
		var Entities uint64 = uint64(rand.Intn(5) + 1)
		var Rows uint64 = uint64(rand.Intn(15) + 1)
		var Cols uint64 = uint64(rand.Intn(15) + 1)
		var Steps uint64 = uint64(rand.Intn(20) + 1)

		// Act
		indexer := NewIndexer(Entities, Rows, Cols, Steps)

		// Assert
		for entity := range Entities {
			for row := range Rows {
				for col := range Cols {
					for step := range Steps {
						index := indexer.Index(entity, row, col, step)

						gotEntity, gotRow, gotCol, gotStep := indexer.Attributes(index)
						assert.Equal(t, entity, gotEntity)
						assert.Equal(t, row, gotRow)
						assert.Equal(t, col, gotCol)
						assert.Equal(t, step, gotStep)
					}
				}
			}
		}
	}
}

func TestIndexInjective(t *testing.T) {
	// Two-digit bounds on every attribute: the case where decimal-place
	// packing of attributes silently collides.
	scenarios := [][4]uint64{
		{11, 12, 13, 14},
		{2, 10, 10, 25},
		{1, 20, 20, 1},
		{5, 3, 30, 12},
	}

	for _, scenario := range scenarios {
		// Arrange
		Entities, Rows, Cols, Steps := scenario[0], scenario[1], scenario[2], scenario[3]
		indexer := NewIndexer(Entities, Rows, Cols, Steps)

		// Act
		indices := make([]int64, 0, Entities*Rows*Cols*Steps)
		for entity := range Entities {
			for row := range Rows {
				for col := range Cols {
					for step := range Steps {
						indices = append(indices, indexer.Index(entity, row, col, step))
					}
				}
			}
		}

		slices.Sort(indices)

		// Assert: indices are exactly 1..Variables with no collisions nor gaps
		assert.Equal(t, Entities*Rows*Cols*Steps, indexer.Variables())
		for i, index := range indices {
			assert.Equal(t, int64(i+1), index)
		}
	}
}
