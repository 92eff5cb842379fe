package retsu

// Select returns a view over the first field of c holding values of T.
// It panics if c has no such field.
func Select[T any](c Container) View[T] {
	s := c.fields()
	return View[T]{p: s.find(SpecOf[T]()), n: s.size}
}

// Project returns a view over field k of c. It panics if field k does not
// hold values of T.
func Project[T any](c Container, k int) View[T] {
	s := c.fields()
	return View[T]{p: s.column(k, SpecOf[T]()), n: s.size}
}

// Column returns the live elements of field k of c as a slice aliasing the
// field buffer. It panics if field k does not hold values of T.
func Column[T any](c Container, k int) []T {
	s := c.fields()
	return live[T](s.column(k, SpecOf[T]()), s.size)
}

// DataOf returns the live elements of the first field of c holding values
// of T.
func DataOf[T any](c Container) []T {
	s := c.fields()
	return live[T](s.find(SpecOf[T]()), s.size)
}
