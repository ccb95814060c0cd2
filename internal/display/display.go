// README: Display helpers render dates, money, distances and durations the way the app shows them.
package display

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const dateTimeOutput = "02/01/2006 - 15:04"

var dateTimeInputs = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
}

// DateTime renders a ride date as "dd/MM/yyyy - HH:mm". Unparsable input is returned as is.
func DateTime(s string) string {
	for _, layout := range dateTimeInputs {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(dateTimeOutput)
		}
	}
	return s
}

// Money renders a BRL amount, e.g. "R$ 1.234,50".
func Money(v float64) string {
	neg := v < 0
	cents := int64(math.Round(math.Abs(v) * 100))
	whole, frac := cents/100, cents%100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if neg && cents > 0 {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), frac)
}

// Kilometres renders a distance given in metres, e.g. "8,0 km" or "850 m".
func Kilometres(metres int) string {
	if metres < 1000 {
		return fmt.Sprintf("%d m", metres)
	}
	return strings.Replace(fmt.Sprintf("%.1f km", float64(metres)/1000), ".", ",", 1)
}

// Duration renders seconds as "19 min" or "1 h 05 min".
func Duration(seconds int) string {
	minutes := int(math.Round(float64(seconds) / 60))
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	return fmt.Sprintf("%d h %02d min", minutes/60, minutes%60)
}
