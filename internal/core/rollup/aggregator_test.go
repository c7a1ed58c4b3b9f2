package rollup

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestOperators_InitialAndApply(t *testing.T) {
	tests := []struct {
		name        string
		op          string
		incoming    decimal.Decimal
		current     decimal.Decimal
		next        decimal.Decimal
		wantInitial decimal.Decimal
		wantApply   decimal.Decimal
	}{
		{
			name:        "count ignores the value",
			op:          OpCount,
			incoming:    decimal.NewFromInt(123),
			current:     decimal.NewFromInt(9),
			next:        decimal.NewFromInt(456),
			wantInitial: decimal.NewFromInt(1),
			wantApply:   decimal.NewFromInt(10),
		},
		{
			name:        "sum",
			op:          OpSum,
			incoming:    decimal.RequireFromString("99.90"),
			current:     decimal.NewFromInt(9),
			next:        decimal.RequireFromString("0.10"),
			wantInitial: decimal.RequireFromString("99.9"),
			wantApply:   decimal.RequireFromString("9.1"),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			agg, ok := Operators[tc.op]
			require.True(t, ok)
			require.True(t, tc.wantInitial.Equal(agg.Initial(tc.incoming)))
			require.True(t, tc.wantApply.Equal(agg.Apply(tc.current, tc.next)))
		})
	}
}

func TestValidOperator(t *testing.T) {
	require.True(t, validOperator(OpCount))
	require.True(t, validOperator(OpSum))
	require.False(t, validOperator("avg"))
	require.False(t, validOperator(""))

	require.PanicsWithValue(t, `rollup: unknown operator "avg"`, func() { newAccumulator("avg") })
}

func TestAccumulator(t *testing.T) {
	t.Run("empty reads as zero", func(t *testing.T) {
		require.True(t, newAccumulator(OpSum).decimal().IsZero())
		require.Equal(t, 0, newAccumulator(OpCount).count())
	})

	t.Run("sum keeps exact cents", func(t *testing.T) {
		acc := newAccumulator(OpSum)
		for i := 0; i < 10; i++ {
			acc.add(decimal.RequireFromString("0.1"))
		}
		require.Equal(t, "1", acc.decimal().String())
	})

	t.Run("count", func(t *testing.T) {
		acc := newAccumulator(OpCount)
		acc.add(decimal.Zero)
		acc.add(decimal.NewFromInt(50))
		acc.add(decimal.Zero)
		require.Equal(t, 3, acc.count())
	})
}
