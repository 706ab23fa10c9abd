// Package entity contains the core business objects of the project.
// Every constructor and setter validates its input and either succeeds
// completely or leaves the value untouched.
package entity

import (
	"html"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "favorites/internal/domain/errors"

	"github.com/microcosm-cc/bluemonday"
)

// Maximum rune lengths of text fields.
const (
	MaxUsernameLength    = 32
	MaxLocationLength    = 64
	MaxDescriptionLength = 1000
)

// MaxPrice is the largest price a product can carry.
const MaxPrice = 9_999_999_999.99

var (
	datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	textPolicy  = bluemonday.StrictPolicy()

	// nowFunc is swapped in tests.
	nowFunc = time.Now
)

// validateID accepts nil (not yet persisted) or a strictly positive value.
// Once current holds a store-assigned id only that same id is accepted.
func validateID(field string, current, id *int64) (*int64, error) {
	if id != nil && *id <= 0 {
		return nil, domainerrors.OutOfRange("%s is not positive", field)
	}
	if current != nil && (id == nil || *id != *current) {
		return nil, domainerrors.Conflict(field + " cannot change once assigned")
	}
	if id == nil {
		return nil, nil
	}
	v := *id

	return &v, nil
}

func validateForeignID(field string, id int64) (int64, error) {
	if id <= 0 {
		return 0, domainerrors.OutOfRange("%s is not positive", field)
	}

	return id, nil
}

// sanitizeText trims, strips markup and enforces the maximum rune length.
func sanitizeText(field, value string, maxLen int) (string, error) {
	cleaned := strings.TrimSpace(value)
	cleaned = html.UnescapeString(textPolicy.Sanitize(cleaned))
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", domainerrors.Empty("%s is empty or insecure", field)
	}
	if utf8.RuneCountInString(cleaned) > maxLen {
		return "", domainerrors.TooLong("%s is too long", field)
	}

	return cleaned, nil
}

// validatePrice keeps prices within what a NUMERIC(12,2) column holds exactly.
func validatePrice(field string, price float64) (float64, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return 0, domainerrors.OutOfRange("%s is not positive", field)
	}
	if price > MaxPrice {
		return 0, domainerrors.OutOfRange("%s is too large", field)
	}
	// Shortest decimal form, so 5.55 reads as "5.55" and not as its binary expansion.
	if _, frac, found := strings.Cut(strconv.FormatFloat(price, 'f', -1, 64), "."); found && len(frac) > 2 {
		return 0, domainerrors.OutOfRange("%s has more than two decimals", field)
	}

	return price, nil
}

// normalizeTime drops sub-millisecond precision so values survive the wire and the store.
func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// ParseDate converts a date candidate into a timestamp. nil means now; strings
// must be strict YYYY-MM-DD calendar dates.
func ParseDate(field string, value any) (time.Time, error) {
	switch v := value.(type) {
	case nil:
		return normalizeTime(nowFunc()), nil
	case time.Time:
		return normalizeTime(v), nil
	case *time.Time:
		if v == nil {
			return normalizeTime(nowFunc()), nil
		}

		return normalizeTime(*v), nil
	case string:
		return parseDateString(field, v)
	case *string:
		if v == nil {
			return normalizeTime(nowFunc()), nil
		}

		return parseDateString(field, *v)
	default:
		return time.Time{}, domainerrors.InvalidFormat("%s is not a valid date", field)
	}
}

func parseDateString(field, value string) (time.Time, error) {
	matches := datePattern.FindStringSubmatch(value)
	if matches == nil {
		return time.Time{}, domainerrors.InvalidFormat("%s is not a valid date", field)
	}

	year, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	day, _ := strconv.Atoi(matches[3])

	parsed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if parsed.Year() != year || int(parsed.Month()) != month || parsed.Day() != day || year < 1 {
		return time.Time{}, domainerrors.OutOfRange("%s is not a Gregorian date", field)
	}

	return parsed, nil
}

func millis(t time.Time) int64 {
	return t.UnixMilli()
}
