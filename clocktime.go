package dial

import (
	"strconv"
	"strings"
)

// TimeValue is a time of day. Seconds may carry a fraction for smooth
// second-hand sweep.
type TimeValue struct {
	Hours   int
	Minutes int
	Seconds float64
}

// ParseClockTime parses a "H:MM:SS" or "HH:MM:SS" time string, optionally
// with fractional seconds ("9:45:15.25"). Hours are in the 24-hour range
// [0, 23]. Malformed input fails with ConfigError.
func ParseClockTime(s string) (TimeValue, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return TimeValue{}, configErrorf("time %q must be in H:MM:SS format", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeValue{}, configErrorf("time %q: bad hours: %v", s, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeValue{}, configErrorf("time %q: bad minutes: %v", s, err)
	}
	seconds, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return TimeValue{}, configErrorf("time %q: bad seconds: %v", s, err)
	}

	tv := TimeValue{Hours: hours, Minutes: minutes, Seconds: seconds}
	if err := tv.validate(); err != nil {
		return TimeValue{}, err
	}
	return tv, nil
}

func (t TimeValue) validate() error {
	if t.Hours < 0 || t.Hours > 23 {
		return configErrorf("hours %d out of range [0, 23]", t.Hours)
	}
	if t.Minutes < 0 || t.Minutes > 59 {
		return configErrorf("minutes %d out of range [0, 59]", t.Minutes)
	}
	if t.Seconds < 0 || t.Seconds >= 60 {
		return configErrorf("seconds %g out of range [0, 60)", t.Seconds)
	}
	return nil
}

// HandAngles returns the hour, minute, and second hand clock angles in
// degrees. Every hand moves continuously: the minute hand advances with
// seconds and the hour hand with minutes and seconds, so 3:15:30 places
// the hour hand exactly 15.5/60 of the way from the 3 mark to the 4 mark.
//
// In 24-hour mode the hour hand completes one revolution per 24 hours
// instead of 12; the minute and second hands are unaffected.
func (t TimeValue) HandAngles(twentyFourHour bool) (hour, minute, second float64) {
	second = t.Seconds * 6 // 360 / 60
	minute = float64(t.Minutes)*6 + t.Seconds*0.1
	if twentyFourHour {
		hour = float64(t.Hours)*15 + float64(t.Minutes)*0.25 + t.Seconds*(15.0/3600)
	} else {
		hour = float64(t.Hours%12)*30 + float64(t.Minutes)*0.5 + t.Seconds*(30.0/3600)
	}
	return hour, minute, second
}

// String formats the time as "HH:MM:SS", truncating fractional seconds.
func (t TimeValue) String() string {
	return pad2(t.Hours) + ":" + pad2(t.Minutes) + ":" + pad2(int(t.Seconds))
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}
