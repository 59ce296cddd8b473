package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Share returns one participant's portion when amount is split equally n ways.
// The division is not rounded to whole currency units; rounding only happens
// when transfers are emitted.
func Share(amount int64, n int) (decimal.Decimal, error) {
	if n <= 0 {
		return decimal.Zero, fmt.Errorf("must split between at least one participant")
	}
	return decimal.NewFromInt(amount).Div(decimal.NewFromInt(int64(n))), nil
}
