package rollup

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Aggregator defines the reduce semantics of a fold operator.
type Aggregator interface {
	// Initial returns the aggregate after the first contribution.
	// count → 1; sum → the incoming value itself.
	Initial(incoming decimal.Decimal) decimal.Decimal

	// Apply folds an incoming value into an existing aggregate.
	Apply(current, incoming decimal.Decimal) decimal.Decimal
}

// Operators is the registry of fold operators used by the aggregators.
var Operators = map[string]Aggregator{
	OpCount: countAgg{},
	OpSum:   sumAgg{},
}

func validOperator(op string) bool {
	_, ok := Operators[op]
	return ok
}

// countAgg increments by 1 per contribution. The incoming value is ignored.
type countAgg struct{}

func (countAgg) Initial(_ decimal.Decimal) decimal.Decimal    { return decimal.NewFromInt(1) }
func (countAgg) Apply(cur, _ decimal.Decimal) decimal.Decimal { return cur.Add(decimal.NewFromInt(1)) }

// sumAgg accumulates the sum of incoming values.
type sumAgg struct{}

func (sumAgg) Initial(v decimal.Decimal) decimal.Decimal      { return v }
func (sumAgg) Apply(cur, inc decimal.Decimal) decimal.Decimal { return cur.Add(inc) }

// accumulator holds one running aggregate. An accumulator that saw nothing
// reads as zero.
type accumulator struct {
	agg   Aggregator
	value decimal.Decimal
	seen  bool
}

// newAccumulator panics on an unregistered operator; operators are fixed at
// compile time, never taken from input.
func newAccumulator(op string) *accumulator {
	if !validOperator(op) {
		panic(fmt.Sprintf("rollup: unknown operator %q", op))
	}
	return &accumulator{agg: Operators[op]}
}

func (a *accumulator) add(v decimal.Decimal) {
	if !a.seen {
		a.value = a.agg.Initial(v)
		a.seen = true
		return
	}
	a.value = a.agg.Apply(a.value, v)
}

func (a *accumulator) decimal() decimal.Decimal {
	if !a.seen {
		return decimal.Zero
	}
	return a.value
}

func (a *accumulator) count() int {
	return int(a.decimal().IntPart())
}
