package configs

import "errors"

// TryFirst returns the value at path in the highest precedence source that defines it.
// A missing value is the zero value and no error.
func TryFirst[T any](loader Loader, path string) (ret T, err error) {
	err = loader.AssignFirst(path, &ret)
	if errors.Is(err, ErrValueNotFound) {
		return ret, nil
	}
	return
}

// First is TryFirst that panics on errors, for sources known to be valid.
func First[T any](loader Loader, path string) T {
	ret, err := TryFirst[T](loader, path)
	if err != nil {
		panic(err)
	}
	return ret
}
