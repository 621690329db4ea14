package hedgefolio

import "fmt"

// Percent is a percentage value: 3.25 means 3.25%. Rates, APYs and hedge
// ratios are all carried as Percent.
type Percent float64

func (p Percent) IsZero() bool { return p == 0 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
