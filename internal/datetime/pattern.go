package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vjeantet/jodaTime"
)

// momentTokens lists the supported pattern tokens. Tokens sharing a letter
// are ordered longest first.
var momentTokens = []string{
	"YYYY", "YY", "Y",
	"MMMM", "MMM", "MM", "M",
	"DDDD", "DDD", "DD", "Do", "D",
	"dddd", "ddd", "dd", "d",
	"E", "e",
	"HH", "H", "hh", "h", "kk", "k",
	"mm", "m", "ss", "s",
	"SSSSSSSSS", "SSSSSSSS", "SSSSSSS", "SSSSSS", "SSSSS", "SSSS", "SSS", "SS", "S",
	"A", "a",
	"ZZ", "Z", "zz", "z",
	"X", "x", "Q",
	"WW", "W", "GGGG",
}

// jodaTokens maps tokens that have a direct Joda equivalent. Each one is
// rendered by jodaTime on its own; everything else is rendered here.
var jodaTokens = map[string]string{
	"MMMM": "MMMM",
	"MMM":  "MMM",
	"MM":   "MM",
	"M":    "M",
	"DD":   "dd",
	"D":    "d",
	"dddd": "EEEE",
	"ddd":  "EEE",
	"HH":   "HH",
	"H":    "H",
	"hh":   "hh",
	"h":    "h",
	"kk":   "kk",
	"k":    "k",
	"mm":   "mm",
	"m":    "m",
	"ss":   "ss",
	"s":    "s",
}

// FormatPattern renders t in its own location using moment-style tokens.
// Text inside square brackets is copied verbatim, as are characters that
// are not tokens. Repeated letters split into the longest known tokens,
// so "HHH" renders as "HH" followed by "H".
func FormatPattern(t time.Time, pattern string) string {
	var out strings.Builder

	for i := 0; i < len(pattern); {
		if pattern[i] == '[' {
			if end := strings.IndexByte(pattern[i+1:], ']'); end >= 0 {
				out.WriteString(pattern[i+1 : i+1+end])
				i += end + 2
				continue
			}
		}

		token := matchToken(pattern[i:])
		if token == "" {
			r, size := utf8.DecodeRuneInString(pattern[i:])
			out.WriteRune(r)
			i += size
			continue
		}

		if joda, ok := jodaTokens[token]; ok {
			out.WriteString(jodaTime.Format(joda, t))
		} else {
			out.WriteString(renderToken(t, token))
		}
		i += len(token)
	}

	return out.String()
}

func matchToken(s string) string {
	for _, token := range momentTokens {
		if strings.HasPrefix(s, token) {
			return token
		}
	}
	return ""
}

func renderToken(t time.Time, token string) string {
	switch token {
	case "YYYY":
		return fmt.Sprintf("%04d", t.Year())
	case "YY":
		return fmt.Sprintf("%02d", (t.Year()%100+100)%100)
	case "Y":
		return strconv.Itoa(t.Year())
	case "DDDD":
		return fmt.Sprintf("%03d", t.YearDay())
	case "DDD":
		return strconv.Itoa(t.YearDay())
	case "Do":
		return ordinal(t.Day())
	case "dd":
		return t.Weekday().String()[:2]
	case "d", "e":
		return strconv.Itoa(int(t.Weekday()))
	case "E":
		if t.Weekday() == time.Sunday {
			return "7"
		}
		return strconv.Itoa(int(t.Weekday()))
	case "A":
		if t.Hour() < 12 {
			return "AM"
		}
		return "PM"
	case "a":
		if t.Hour() < 12 {
			return "am"
		}
		return "pm"
	case "Z":
		return t.Format("-07:00")
	case "ZZ":
		return t.Format("-0700")
	case "z", "zz":
		return t.Format("MST")
	case "X":
		return strconv.FormatInt(t.Unix(), 10)
	case "x":
		return strconv.FormatInt(t.UnixMilli(), 10)
	case "Q":
		return strconv.Itoa((int(t.Month())-1)/3 + 1)
	case "W":
		_, week := t.ISOWeek()
		return strconv.Itoa(week)
	case "WW":
		_, week := t.ISOWeek()
		return fmt.Sprintf("%02d", week)
	case "GGGG":
		year, _ := t.ISOWeek()
		return fmt.Sprintf("%04d", year)
	}

	if token[0] == 'S' {
		return fraction(t, len(token))
	}
	return token
}

// fraction returns the first digits of the sub-second part, truncated.
func fraction(t time.Time, digits int) string {
	value := t.Nanosecond()
	for i := digits; i < 9; i++ {
		value /= 10
	}
	return fmt.Sprintf("%0*d", digits, value)
}

func ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}
