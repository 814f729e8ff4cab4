package configs

import "errors"

var ErrValueNotFound = errors.New("value not found")

// Configurable values name their own config path.
type Configurable interface {
	ConfigExpr() string
}

// Lookup returns First at the path T names.
func Lookup[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}

// TryLookup returns TryFirst at the path T names.
func TryLookup[T Configurable](loader Loader) (T, error) {
	var zero T
	return TryFirst[T](loader, zero.ConfigExpr())
}
