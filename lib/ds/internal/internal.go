package internal

func Zero[T any]() (zero T) { return }
