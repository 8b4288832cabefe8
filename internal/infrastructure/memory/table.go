package memory

import (
	"maps"
	"slices"
)

// table guarda copias de filas indexadas por id con un serial propio.
type table[T any] struct {
	rows map[int64]T
	seq  int64
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[int64]T)}
}

func (t *table[T]) nextID() int64 {
	t.seq++
	return t.seq
}

func (t *table[T]) get(id int64) *T {
	row, ok := t.rows[id]
	if !ok {
		return nil
	}
	return &row
}

func (t *table[T]) has(id int64) bool {
	_, ok := t.rows[id]
	return ok
}

func (t *table[T]) put(id int64, row T) { t.rows[id] = row }

func (t *table[T]) remove(id int64) { delete(t.rows, id) }

// find devuelve la primera fila (por id ascendente) que cumple match.
func (t *table[T]) find(match func(*T) bool) *T {
	for _, id := range slices.Sorted(maps.Keys(t.rows)) {
		row := t.rows[id]
		if match(&row) {
			return &row
		}
	}
	return nil
}

// filter devuelve las filas que cumplen keep, por id ascendente, paginadas.
// limit <= 0 devuelve todas.
func (t *table[T]) filter(keep func(*T) bool, limit, offset int) []*T {
	out := make([]*T, 0)
	skipped := 0
	for _, id := range slices.Sorted(maps.Keys(t.rows)) {
		row := t.rows[id]
		if keep != nil && !keep(&row) {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		out = append(out, &row)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func (t *table[T]) clone() *table[T] {
	return &table[T]{rows: maps.Clone(t.rows), seq: t.seq}
}
