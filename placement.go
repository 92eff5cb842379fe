package retsu

// Constructor is implemented (with a pointer receiver) by field types whose
// zero value is not a valid default. Construct runs on the zeroed slot each
// time an element is default-constructed: Resize growth, PushBackZero,
// NewArrayN, and Emplace with a nil initializer.
type Constructor interface {
	Construct()
}

// Destructor is implemented (with a pointer receiver) by field types that
// own something beyond memory. Destroy runs when a live element is removed:
// Erase, PopBack, shrinking Resize, Clear and Release. Relocation during
// growth and shifting during Insert/Erase move values and do not call it.
type Destructor interface {
	Destroy()
}

// placeDefault default-constructs the zeroed slot p.
func placeDefault[T any](p *T) {
	if c, ok := any(p).(Constructor); ok {
		c.Construct()
	}
}

// placeWith constructs slot p in place: init receives the zeroed slot, a nil
// init falls back to default construction.
func placeWith[T any](p *T, init func(*T)) {
	var zero T
	*p = zero
	if init == nil {
		placeDefault(p)
		return
	}
	init(p)
}

func placeDestroy[T any](p *T) {
	if d, ok := any(p).(Destructor); ok {
		d.Destroy()
	}
}
