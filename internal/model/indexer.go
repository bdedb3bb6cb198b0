package model

// Indexer gives a unique SAT variable to a combination of proposition
// attributes and vice versa. Variables are 1-based, dense and collision-free
// over the declared bounds: (attributes count) variables exactly cover
// [1, entities*rows*cols*steps]. The bounds-derived flattening is what makes
// the mapping safe once any attribute reaches two digits, unlike a
// decimal-place packing scheme.
type Indexer interface {
	// Returns a unique SAT variable for a combination of proposition attributes
	Index(entity, row, col, step uint64) int64
	// Returns the combination of proposition attributes behind a SAT variable
	Attributes(index int64) (entity, row, col, step uint64)
	// Returns the total number of variables covered by the declared bounds
	Variables() uint64
}

func NewIndexer(entities, rows, cols, steps uint64) Indexer {
	return &denseIndexer{
		entities: entities,
		rows:     rows,
		cols:     cols,
		steps:    steps,
	}
}

type denseIndexer struct {
	entities uint64
	rows     uint64
	cols     uint64
	steps    uint64
}

func (indexer *denseIndexer) Index(entity, row, col, step uint64) int64 {
	return int64(1 + entity + indexer.entities*row + indexer.entities*indexer.rows*col + indexer.entities*indexer.rows*indexer.cols*step)
}

func (indexer *denseIndexer) Attributes(index int64) (entity, row, col, step uint64) {
	value := uint64(index - 1)

	entity = value % indexer.entities
	value = value / indexer.entities

	row = value % indexer.rows
	value = value / indexer.rows

	col = value % indexer.cols
	value = value / indexer.cols

	step = value

	return entity, row, col, step
}

func (indexer *denseIndexer) Variables() uint64 {
	return indexer.entities * indexer.rows * indexer.cols * indexer.steps
}
