// Package locale maps BCP 47 language tags to week definitions using the
// CLDR week data for the tag's region.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/helixml/isocal/temporal"
)

// world is the CLDR region used when a tag has no region data.
const world = "001"

// CLDR supplemental weekData, firstDay by region. Regions not listed start
// on Monday.
var firstDays = regionSet(map[temporal.DayOfWeek]string{
	temporal.Friday:   "MV",
	temporal.Saturday: "AE AF BH DJ DZ EG IQ IR JO KW LY OM QA SD SY",
	temporal.Sunday: "AG AS BD BR BS BT BW BZ CA CO DM DO ET GT GU HK HN ID IL IN JM JP KE KH KR LA " +
		"MH MM MO MT MX MZ NI NP PA PE PH PK PR PT PY SA SG SV TH TT TW UM US VE VI WS YE ZA ZW",
})

// CLDR supplemental weekData, minDays by region. Regions not listed need one day.
var minimalDays = regionSet(map[int]string{
	4: "AD AN AT AX BE BG CH CZ DE DK EE ES FI FJ FO FR GB GF GG GI GP GR HU IE IM IS IT JE LI LT " +
		"LU MC MQ NL NO PL PT RE RU SE SJ SK SM VA",
})

func regionSet[V comparable](lists map[V]string) map[string]V {
	m := make(map[string]V)
	for v, list := range lists {
		for _, region := range strings.Fields(list) {
			m[region] = v
		}
	}
	return m
}

// FirstDayOfWeek returns the first day of the week for a CLDR region code.
func FirstDayOfWeek(region string) temporal.DayOfWeek {
	if dow, ok := firstDays[strings.ToUpper(region)]; ok {
		return dow
	}
	return temporal.Monday
}

// MinimalDaysInFirstWeek returns the minimal days in the first week for a
// CLDR region code.
func MinimalDaysInFirstWeek(region string) int {
	if days, ok := minimalDays[strings.ToUpper(region)]; ok {
		return days
	}
	return 1
}

// Region returns the region code used for tag. Tags without an explicit
// region use the most likely one; tags with no likely region use the world.
func Region(tag language.Tag) string {
	region, conf := tag.Region()
	if conf == language.No || !region.IsCountry() {
		return world
	}
	return region.String()
}

// WeekFields returns the week definition of the region of tag.
func WeekFields(tag language.Tag) *temporal.WeekFields {
	region := Region(tag)
	return temporal.MustWeekFieldsOf(FirstDayOfWeek(region), MinimalDaysInFirstWeek(region))
}

// Parse parses a BCP 47 tag such as "en-US" or "de" and returns its week
// definition.
func Parse(s string) (*temporal.WeekFields, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %w", temporal.ErrInvalidArgument, s, err)
	}
	return WeekFields(tag), nil
}
