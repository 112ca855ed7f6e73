package termtable

import "iter"

// AddRowsSeq appends every row produced by seq.
func (t *Table) AddRowsSeq(seq iter.Seq[[]any]) {
	for row := range seq {
		t.AddRow(row...)
	}
}

// AddRowsChan appends rows received from ch until it is closed.
// It is a thin wrapper around [Table.AddRowsSeq].
func (t *Table) AddRowsChan(ch <-chan []any) {
	t.AddRowsSeq(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}
