package validations

import (
	"reflect"
	"regexp"

	"gopkg.in/go-playground/validator.v9"
)

var (
	hhmmPattern     = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	intervalPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]-([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

// Each_HH_MM_time accepts a []string where every item is a zero-padded 24h
// clock time, e.g. "09:30".
func Each_HH_MM_time(fl validator.FieldLevel) bool {
	return eachMatches(fl, hhmmPattern)
}

// Each_HH_MM_HH_MM_time_interval accepts a []string of "HH:MM-HH:MM" items.
// An interval may wrap past midnight, so the endpoints are not ordered.
func Each_HH_MM_HH_MM_time_interval(fl validator.FieldLevel) bool {
	return eachMatches(fl, intervalPattern)
}

func eachMatches(fl validator.FieldLevel, pattern *regexp.Regexp) bool {
	if fl.Field().Type().Kind() != reflect.Slice {
		return false
	}

	items, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}

	for _, item := range items {
		if !pattern.MatchString(item) {
			return false
		}
	}

	return true
}
