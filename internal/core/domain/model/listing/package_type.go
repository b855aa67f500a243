package listing

import (
	"fmt"

	"luggage/internal/pkg/errs"
)

// PackageType describes how a package may travel.
type PackageType int

const (
	UnknownPackageType PackageType = iota
	CarryOn
	Checked
	Either
)

func getPackageTypeStrings() map[PackageType]string {
	return map[PackageType]string{
		CarryOn: "carry-on",
		Checked: "checked",
		Either:  "either",
	}
}

// ParsePackageType maps the API spelling onto a PackageType.
func ParsePackageType(s string) (PackageType, error) {
	for t, str := range getPackageTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return UnknownPackageType, errs.NewValueIsInvalidErrorWithCause(
		"packageType",
		fmt.Errorf("%q must be carry-on, checked, or either", s),
	)
}

func (t PackageType) String() string {
	if str, ok := getPackageTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

func (t PackageType) Validate() error {
	if _, ok := getPackageTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("packageType", fmt.Errorf("%d is not a valid package type", t))
	}
	return nil
}
