package retsu

import "unsafe"

// Select2 returns a view over the fields of c holding T1, T2, in that
// order. A type may be given more than once; each resolves to the first field
// of c holding it. It panics if c has no field of one of the types.
func Select2[T1, T2 any](c Container) View2[T1, T2] {
	s := c.fields()
	return View2[T1, T2]{p: [2]unsafe.Pointer{s.find(SpecOf[T1]()), s.find(SpecOf[T2]())}, n: s.size}
}

// Project2 returns a view over fields k1, k2 of c. Indices may repeat and
// appear in any order. It panics if a field does not hold the matching type.
func Project2[T1, T2 any](c Container, k1, k2 int) View2[T1, T2] {
	s := c.fields()
	return View2[T1, T2]{p: [2]unsafe.Pointer{s.column(k1, SpecOf[T1]()), s.column(k2, SpecOf[T2]())}, n: s.size}
}

// Select3 returns a view over the fields of c holding T1, T2, T3, in that
// order. A type may be given more than once; each resolves to the first field
// of c holding it. It panics if c has no field of one of the types.
func Select3[T1, T2, T3 any](c Container) View3[T1, T2, T3] {
	s := c.fields()
	return View3[T1, T2, T3]{p: [3]unsafe.Pointer{s.find(SpecOf[T1]()), s.find(SpecOf[T2]()), s.find(SpecOf[T3]())}, n: s.size}
}

// Project3 returns a view over fields k1, k2, k3 of c. Indices may repeat and
// appear in any order. It panics if a field does not hold the matching type.
func Project3[T1, T2, T3 any](c Container, k1, k2, k3 int) View3[T1, T2, T3] {
	s := c.fields()
	return View3[T1, T2, T3]{p: [3]unsafe.Pointer{s.column(k1, SpecOf[T1]()), s.column(k2, SpecOf[T2]()), s.column(k3, SpecOf[T3]())}, n: s.size}
}

// Select4 returns a view over the fields of c holding T1, T2, T3, T4, in that
// order. A type may be given more than once; each resolves to the first field
// of c holding it. It panics if c has no field of one of the types.
func Select4[T1, T2, T3, T4 any](c Container) View4[T1, T2, T3, T4] {
	s := c.fields()
	return View4[T1, T2, T3, T4]{p: [4]unsafe.Pointer{s.find(SpecOf[T1]()), s.find(SpecOf[T2]()), s.find(SpecOf[T3]()), s.find(SpecOf[T4]())}, n: s.size}
}

// Project4 returns a view over fields k1, k2, k3, k4 of c. Indices may repeat and
// appear in any order. It panics if a field does not hold the matching type.
func Project4[T1, T2, T3, T4 any](c Container, k1, k2, k3, k4 int) View4[T1, T2, T3, T4] {
	s := c.fields()
	return View4[T1, T2, T3, T4]{p: [4]unsafe.Pointer{s.column(k1, SpecOf[T1]()), s.column(k2, SpecOf[T2]()), s.column(k3, SpecOf[T3]()), s.column(k4, SpecOf[T4]())}, n: s.size}
}

// Select5 returns a view over the fields of c holding T1, T2, T3, T4, T5, in that
// order. A type may be given more than once; each resolves to the first field
// of c holding it. It panics if c has no field of one of the types.
func Select5[T1, T2, T3, T4, T5 any](c Container) View5[T1, T2, T3, T4, T5] {
	s := c.fields()
	return View5[T1, T2, T3, T4, T5]{p: [5]unsafe.Pointer{s.find(SpecOf[T1]()), s.find(SpecOf[T2]()), s.find(SpecOf[T3]()), s.find(SpecOf[T4]()), s.find(SpecOf[T5]())}, n: s.size}
}

// Project5 returns a view over fields k1, k2, k3, k4, k5 of c. Indices may repeat and
// appear in any order. It panics if a field does not hold the matching type.
func Project5[T1, T2, T3, T4, T5 any](c Container, k1, k2, k3, k4, k5 int) View5[T1, T2, T3, T4, T5] {
	s := c.fields()
	return View5[T1, T2, T3, T4, T5]{p: [5]unsafe.Pointer{s.column(k1, SpecOf[T1]()), s.column(k2, SpecOf[T2]()), s.column(k3, SpecOf[T3]()), s.column(k4, SpecOf[T4]()), s.column(k5, SpecOf[T5]())}, n: s.size}
}

// Select6 returns a view over the fields of c holding T1, T2, T3, T4, T5, T6, in that
// order. A type may be given more than once; each resolves to the first field
// of c holding it. It panics if c has no field of one of the types.
func Select6[T1, T2, T3, T4, T5, T6 any](c Container) View6[T1, T2, T3, T4, T5, T6] {
	s := c.fields()
	return View6[T1, T2, T3, T4, T5, T6]{p: [6]unsafe.Pointer{s.find(SpecOf[T1]()), s.find(SpecOf[T2]()), s.find(SpecOf[T3]()), s.find(SpecOf[T4]()), s.find(SpecOf[T5]()), s.find(SpecOf[T6]())}, n: s.size}
}

// Project6 returns a view over fields k1, k2, k3, k4, k5, k6 of c. Indices may repeat and
// appear in any order. It panics if a field does not hold the matching type.
func Project6[T1, T2, T3, T4, T5, T6 any](c Container, k1, k2, k3, k4, k5, k6 int) View6[T1, T2, T3, T4, T5, T6] {
	s := c.fields()
	return View6[T1, T2, T3, T4, T5, T6]{p: [6]unsafe.Pointer{s.column(k1, SpecOf[T1]()), s.column(k2, SpecOf[T2]()), s.column(k3, SpecOf[T3]()), s.column(k4, SpecOf[T4]()), s.column(k5, SpecOf[T5]()), s.column(k6, SpecOf[T6]())}, n: s.size}
}
