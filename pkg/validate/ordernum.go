package validate

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/ShiraazMoollatjie/goluhn"
)

// Business order numbers are numeric with a trailing Luhn check digit, so a
// mistyped number is rejected before it ever reaches a lookup.

func IsOrderNo(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}

var rnd = rand.New(rand.NewSource(time.Now().UnixNano()))

// NewOrderNo returns a fresh 16-digit order number: a timestamp prefix, a
// random tail and the Luhn check digit.
func NewOrderNo() string {
	base := strconv.FormatInt(time.Now().Unix(), 10) + strconv.Itoa(10000+rnd.Intn(90000))
	return base + strconv.Itoa(checkDigit(base))
}

func checkDigit(digits string) int {
	sum := 0
	double := true
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return (10 - sum%10) % 10
}
