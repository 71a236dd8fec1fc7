package internal

import "math"

// overflow reports an int64 overflow in the named primitive.
func overflow(c *Call) error {
	return EvaluationError("%s: integer overflow", c.Name)
}

// numberFold applies op across the integer arguments of c from left to right.
// There must be at least one argument.
func numberFold(c *Call, op func(acc, x int64) (int64, error)) (SExpression, error) {
	if err := c.Arity(1, -1); err != nil {
		return nil, err
	}
	acc, err := c.IntArgAt(0)
	if err != nil {
		return nil, err
	}
	for i := 1; i < c.Args.Length(); i++ {
		x, err := c.IntArgAt(i)
		if err != nil {
			return nil, err
		}
		if acc, err = op(acc, x); err != nil {
			return nil, err
		}
	}
	return NewInteger(acc), nil
}

// NumberPlus is a core primitive.
//
// PLUS, or +, returns the sum of its arguments. A sum outside the int64 range
// is an evaluation error.
func NumberPlus(c *Call) (SExpression, error) {
	return numberFold(c, func(acc, x int64) (int64, error) {
		r := acc + x
		if (x > 0 && r < acc) || (x < 0 && r > acc) {
			return 0, overflow(c)
		}
		return r, nil
	})
}

// NumberMinus is a core primitive.
//
// MINUS, or -, subtracts each argument after the first from the first. With
// exactly one argument, it returns the negation.
func NumberMinus(c *Call) (SExpression, error) {
	if c.Args.Length() == 1 {
		x, err := c.IntArgAt(0)
		if err != nil {
			return nil, err
		}
		if x == math.MinInt64 {
			return nil, overflow(c)
		}
		return NewInteger(-x), nil
	}
	return numberFold(c, func(acc, x int64) (int64, error) {
		r := acc - x
		if (x > 0 && r > acc) || (x < 0 && r < acc) {
			return 0, overflow(c)
		}
		return r, nil
	})
}

// NumberTimes is a core primitive.
//
// TIMES, or *, returns the product of its arguments. A product outside the
// int64 range is an evaluation error.
func NumberTimes(c *Call) (SExpression, error) {
	return numberFold(c, func(acc, x int64) (int64, error) {
		if acc == 0 || x == 0 {
			return 0, nil
		}
		r := acc * x
		if r/x != acc || (acc == -1 && x == math.MinInt64) || (x == -1 && acc == math.MinInt64) {
			return 0, overflow(c)
		}
		return r, nil
	})
}

// NumberQuotient is a core primitive.
//
// QUOTIENT, or /, divides the first argument by each later argument in turn,
// truncating toward zero.
func NumberQuotient(c *Call) (SExpression, error) {
	return numberFold(c, func(acc, x int64) (int64, error) {
		if x == 0 {
			return 0, EvaluationError("%s: division by zero", c.Name)
		}
		if acc == math.MinInt64 && x == -1 {
			return 0, overflow(c)
		}
		return acc / x, nil
	})
}

// NumberRemainder is a core primitive.
//
// REMAINDER, or %, folds the truncated remainder across its arguments. The
// result has the sign of the dividend.
func NumberRemainder(c *Call) (SExpression, error) {
	return numberFold(c, func(acc, x int64) (int64, error) {
		if x == 0 {
			return 0, EvaluationError("%s: division by zero", c.Name)
		}
		return acc % x, nil
	})
}

// NumberP is a core primitive.
//
// NUMBERP returns T if its argument is an integer atom and F otherwise.
func NumberP(c *Call) (SExpression, error) {
	if err := c.Arity(1, 1); err != nil {
		return nil, err
	}
	a, ok := c.ArgAt(0).(*Atom)
	return NewBoolean(ok && a.IsNumber()), nil
}
