package isocal

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/helixml/isocal/temporal"
)

var (
	localDatePattern = regexp.MustCompile(`^([+-]?\d{4,10})-(\d{2})-(\d{2})$`)
	yearMonthPattern = regexp.MustCompile(`^([+-]?\d{4,10})-(\d{2})$`)
	monthDayPattern  = regexp.MustCompile(`^--(\d{2})-(\d{2})$`)
	yearPattern      = regexp.MustCompile(`^[+-]?\d{1,10}$`)
)

// FormatYear writes year with at least four digits, such as 0044 or -0044.
// Years beyond 9999 get a plus sign when plus is set.
func FormatYear(year int, plus bool) string {
	switch {
	case year < 0 && year > -1000:
		return fmt.Sprintf("-%04d", -year)
	case year >= 0 && year < 1000:
		return fmt.Sprintf("%04d", year)
	case plus && year > 9999:
		return "+" + strconv.Itoa(year)
	}
	return strconv.Itoa(year)
}

// parseYear reads a year written with at least four digits. More than four
// digits require a sign and exactly four forbid a plus sign.
func parseYear(text, s string) (int, error) {
	digits := len(s)
	if s[0] == '+' || s[0] == '-' {
		digits--
	}
	if digits > 4 && s[0] != '+' && s[0] != '-' {
		return 0, parseError(text, "years beyond four digits need a sign")
	}
	if digits == 4 && s[0] == '+' {
		return 0, parseError(text, "four digit years take no plus sign")
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, parseError(text, err.Error())
	}
	return y, nil
}

func parseError(text, reason string) error {
	return fmt.Errorf("%w: text %q could not be parsed: %s", temporal.ErrDateTime, text, reason)
}

// ParseLocalDate parses uuuu-MM-dd, such as 2007-12-03.
func ParseLocalDate(text string) (LocalDate, error) {
	m := localDatePattern.FindStringSubmatch(text)
	if m == nil {
		return LocalDate{}, parseError(text, "expected uuuu-MM-dd")
	}
	y, err := parseYear(text, m[1])
	if err != nil {
		return LocalDate{}, err
	}
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	d, err := OfDate(y, temporal.Month(month), day)
	if err != nil {
		return LocalDate{}, fmt.Errorf("%w: text %q could not be parsed: %w", temporal.ErrDateTime, text, err)
	}
	return d, nil
}

// ParseYearMonth parses uuuu-MM, such as 2007-12.
func ParseYearMonth(text string) (YearMonth, error) {
	m := yearMonthPattern.FindStringSubmatch(text)
	if m == nil {
		return YearMonth{}, parseError(text, "expected uuuu-MM")
	}
	y, err := parseYear(text, m[1])
	if err != nil {
		return YearMonth{}, err
	}
	month, _ := strconv.Atoi(m[2])
	ym, err := YearMonthOf(y, temporal.Month(month))
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: text %q could not be parsed: %w", temporal.ErrDateTime, text, err)
	}
	return ym, nil
}

// ParseMonthDay parses --MM-dd, such as --12-03.
func ParseMonthDay(text string) (MonthDay, error) {
	m := monthDayPattern.FindStringSubmatch(text)
	if m == nil {
		return MonthDay{}, parseError(text, "expected --MM-dd")
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	md, err := MonthDayOf(temporal.Month(month), day)
	if err != nil {
		return MonthDay{}, fmt.Errorf("%w: text %q could not be parsed: %w", temporal.ErrDateTime, text, err)
	}
	return md, nil
}

// ParseYear parses a signed decimal year, such as 2007 or -44.
func ParseYear(text string) (Year, error) {
	if !yearPattern.MatchString(text) {
		return Year{}, parseError(text, "expected a year")
	}
	v, err := strconv.Atoi(text)
	if err != nil {
		return Year{}, parseError(text, err.Error())
	}
	y, err := YearOf(v)
	if err != nil {
		return Year{}, fmt.Errorf("%w: text %q could not be parsed: %w", temporal.ErrDateTime, text, err)
	}
	return y, nil
}

// MarshalText implements encoding.TextMarshaler.
func (d LocalDate) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *LocalDate) UnmarshalText(text []byte) error {
	v, err := ParseLocalDate(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
// Years beyond 9999 carry a plus sign so the text parses back.
func (ym YearMonth) MarshalText() ([]byte, error) {
	return []byte(FormatYear(ym.year, true) + fmt.Sprintf("-%02d", int(ym.month))), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (ym *YearMonth) UnmarshalText(text []byte) error {
	v, err := ParseYearMonth(string(text))
	if err != nil {
		return err
	}
	*ym = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (md MonthDay) MarshalText() ([]byte, error) { return []byte(md.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (md *MonthDay) UnmarshalText(text []byte) error {
	v, err := ParseMonthDay(string(text))
	if err != nil {
		return err
	}
	*md = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (y Year) MarshalText() ([]byte, error) { return []byte(y.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (y *Year) UnmarshalText(text []byte) error {
	v, err := ParseYear(string(text))
	if err != nil {
		return err
	}
	*y = v
	return nil
}
