package internal

// ListCar is a core primitive.
//
// CAR returns the first element of its list argument. The CAR of the empty
// list is the empty list.
func ListCar(c *Call) (SExpression, error) {
	if err := c.Arity(1, 1); err != nil {
		return nil, err
	}
	l, err := c.ListArgAt(0)
	if err != nil {
		return nil, err
	}
	return l.Car(), nil
}

// ListCdr is a core primitive.
//
// CDR returns everything after the first element of its list argument. The
// CDR of a single-element list is the empty list.
func ListCdr(c *Call) (SExpression, error) {
	if err := c.Arity(1, 1); err != nil {
		return nil, err
	}
	l, err := c.ListArgAt(0)
	if err != nil {
		return nil, err
	}
	return l.Cdr(), nil
}

// ListCons is a core primitive.
//
// CONS folds its arguments left to right into a new list. Atoms become
// elements; the elements of list arguments are spliced in rather than nested.
// NIL counts as the empty list and contributes nothing.
func ListCons(c *Call) (SExpression, error) {
	if err := c.Arity(1, -1); err != nil {
		return nil, err
	}
	r := NewList()
	for _, v := range c.Args.Elements() {
		switch v := v.(type) {
		case *Atom:
			if !v.IsNil() {
				r.AddAtom(v)
			}
		case *List:
			for _, e := range v.Refs() {
				r.Add(e)
			}
		}
	}
	return r, nil
}

// ListList is a core primitive.
//
// LIST returns its arguments as a list. List arguments are nested, not
// spliced.
func ListList(c *Call) (SExpression, error) {
	return ListOf(c.Args.Elements()...), nil
}

// ListAtom is a core primitive.
//
// ATOM returns T if its argument is an atom or the empty list and F
// otherwise.
func ListAtom(c *Call) (SExpression, error) {
	if err := c.Arity(1, 1); err != nil {
		return nil, err
	}
	switch v := c.ArgAt(0).(type) {
	case *List:
		return NewBoolean(v.IsEmpty()), nil
	}
	return T, nil
}

// ListNull is a core primitive.
//
// NULL returns T if its argument is NIL or the empty list and F otherwise.
func ListNull(c *Call) (SExpression, error) {
	if err := c.Arity(1, 1); err != nil {
		return nil, err
	}
	return NewBoolean(isNilExpr(c.ArgAt(0))), nil
}

// ListLength is a core primitive.
//
// LENGTH returns the number of top-level elements in its list argument.
func ListLength(c *Call) (SExpression, error) {
	if err := c.Arity(1, 1); err != nil {
		return nil, err
	}
	l, err := c.ListArgAt(0)
	if err != nil {
		return nil, err
	}
	return NewInteger(int64(l.Length())), nil
}
