package option

// Iter walks the elements of an option: one for Some, none for None.
// it is *not* thread safe; call Next from a single goroutine.
type Iter[T any] struct {
	idx   int
	items []T
}

func (i *Iter[T]) Next() (T, bool) {
	var none T
	if i.idx >= len(i.items) {
		return none, false
	}

	oldIdx := i.idx
	i.idx++

	return i.items[oldIdx], true
}

func (i *Iter[T]) HasNext() bool {
	return i.idx < len(i.items)
}

// Collect drains the remaining elements into a slice.
func (i *Iter[T]) Collect() []T {
	out := make([]T, 0, len(i.items)-i.idx)
	for {
		v, ok := i.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Stream converts the option to its element sequence. Every call returns a
// fresh iterator over the same elements, so the conversion is restartable.
func (o Option[T]) Stream() *Iter[T] {
	if !o.present {
		return &Iter[T]{}
	}

	return &Iter[T]{items: []T{o.value}}
}
