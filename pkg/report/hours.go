package report

import "strconv"

// Hours is a column value that may be absent. An absent value renders as an
// empty cell and counts as zero in the totals row.
type Hours struct {
	value   float64
	present bool
}

func SomeHours(value float64) Hours {
	return Hours{value: value, present: true}
}

func NoHours() Hours {
	return Hours{}
}

// OptionalHours marks zero as absent.
func OptionalHours(value float64) Hours {
	if value == 0 {
		return NoHours()
	}
	return SomeHours(value)
}

func (h Hours) Get() (float64, bool) {
	return h.value, h.present
}

func (h Hours) OrZero() float64 {
	if !h.present {
		return 0
	}
	return h.value
}

func (h Hours) String() string {
	if !h.present {
		return ""
	}
	return strconv.FormatFloat(h.value, 'f', -1, 64)
}
