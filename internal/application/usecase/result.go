package usecase

// Result resultado de una operación de escritura: o bien un valor, o bien la lista
// completa de violaciones de negocio. Los fallos de almacenamiento viajan como error aparte.
type Result[T any] struct {
	Value      T
	Violations []string
}

// OK informa si la operación no tuvo violaciones.
func (r Result[T]) OK() bool {
	return len(r.Violations) == 0
}

func success[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

func rejected[T any](violations []string) Result[T] {
	return Result[T]{Violations: violations}
}
