package internal

// ordered checks that cmp holds between each adjacent pair of arguments.
func ordered(c *Call, cmp func(x, y int64) bool) (SExpression, error) {
	if err := c.Arity(1, -1); err != nil {
		return nil, err
	}
	x, err := c.IntArgAt(0)
	if err != nil {
		return nil, err
	}
	ok := true
	for i := 1; i < c.Args.Length(); i++ {
		y, err := c.IntArgAt(i)
		if err != nil {
			return nil, err
		}
		// Keep converting after a failure so that bad arguments still error.
		ok = ok && cmp(x, y)
		x = y
	}
	return NewBoolean(ok), nil
}

// CompareLess is a core primitive.
//
// LESSP, or <, returns T if its arguments are in strictly increasing order.
// A single argument is trivially ordered.
func CompareLess(c *Call) (SExpression, error) {
	return ordered(c, func(x, y int64) bool { return x < y })
}

// CompareGreater is a core primitive.
//
// GREATERP, or >, returns T if its arguments are in strictly decreasing order.
func CompareGreater(c *Call) (SExpression, error) {
	return ordered(c, func(x, y int64) bool { return x > y })
}

// CompareEql is a core primitive.
//
// EQL returns T if its two arguments are atoms of the same variant with the
// same value, or are both empty. Non-empty lists are never EQL.
func CompareEql(c *Call) (SExpression, error) {
	if err := c.Arity(2, 2); err != nil {
		return nil, err
	}
	return NewBoolean(Eql(c.ArgAt(0), c.ArgAt(1))), nil
}

// CompareEqual is a core primitive.
//
// EQUAL returns T if its two arguments are structurally equal.
func CompareEqual(c *Call) (SExpression, error) {
	if err := c.Arity(2, 2); err != nil {
		return nil, err
	}
	return NewBoolean(Equal(c.ArgAt(0), c.ArgAt(1))), nil
}
