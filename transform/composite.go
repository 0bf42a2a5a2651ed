// Package transform - the composite combinator.
package transform

import "github.com/katalvlaran/coordspace/coord"

// composite chains two transformations: first A→B, then second B→C.
type composite struct {
	first  Transformation
	second Transformation
}

// Compose chains first (A→B) and second (B→C) into one A→C transformation.
//
// Behavior highlights:
//   - Apply(p) = second.Apply(first.Apply(p)).
//   - Inverse() = Compose(second.Inverse(), first.Inverse()) — a direct
//     structural reversal, O(1), no inverse formulas are re-derived.
//   - Associative: Compose(Compose(t1,t2),t3) and
//     Compose(t1,Compose(t2,t3)) expand to the same three sequential
//     applications and agree on every input within floating tolerance.
//
// Compose never fails: its operands were already validated by their own
// constructors. Nil operands are a programmer error and panic on Apply.
func Compose(first, second Transformation) Transformation {
	return composite{first: first, second: second}
}

func (c composite) Apply(p coord.Point) coord.Point {
	return c.second.Apply(c.first.Apply(p))
}

func (c composite) Inverse() Transformation {
	return composite{first: c.second.Inverse(), second: c.first.Inverse()}
}
