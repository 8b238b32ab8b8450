// Package symbolic implements the dual numeric/symbolic arithmetic used to
// build unitaries from parameters.
//
// An Expr is a small immutable tree over complex constants and parameter
// variables, closed under +, ×, sin, cos, exp and sqrt. Smart constructors
// fold constants eagerly, so an expression built only from bound parameters
// collapses to a single Const, and identity/zero entries of embedded blocks
// never grow the tree.
//
// Evaluation is fail-fast: Eval returns ErrUnbound (wrapped with the parameter
// name) on the first free variable. Of(p) captures a bound parameter as a
// constant and a free one as a Var, which keeps the symbolic path equivalent
// to the numeric one whenever everything is bound.
//
//	theta := param.MustNew("theta")
//	e := symbolic.Cos(symbolic.Of(theta))
//	_, err := e.Eval()      // ErrUnbound
//	_ = theta.SetValue(0)
//	v, _ := e.Eval()        // 1
package symbolic
