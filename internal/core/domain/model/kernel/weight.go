package kernel

import (
	"fmt"
	"math"

	"luggage/internal/pkg/errs"
	"luggage/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when a zero Weight is used.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight")

// Weight is a strictly positive amount in kilograms.
type Weight struct {
	kg    float64
	guard guard.ConstructorGuard
}

func NewWeight(paramName string, kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) || kg <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%v is not a positive number", kg),
		)
	}
	return Weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
}

func (w Weight) Kilograms() float64 {
	return w.kg
}

// Fits reports whether a package of weight pkg fits into this capacity.
func (w Weight) Fits(pkg Weight) bool {
	return pkg.kg <= w.kg
}

func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}
