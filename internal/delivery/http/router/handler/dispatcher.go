// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"
	"strings"

	"favorites/internal/delivery/http/validator"
	"favorites/internal/delivery/http/xsrf"
	domainerrors "favorites/internal/domain/errors"
	"favorites/internal/errors"

	"github.com/labstack/echo/v4"
)

// HeaderMethodOverride lets clients limited to GET and POST tunnel other verbs.
const HeaderMethodOverride = "X-HTTP-Method"

const (
	msgInvalidMethod = "Invalid HTTP method request"
	msgInvalidID     = "id cannot be empty or negative"
)

// methodHandlers is the set of verbs a resource answers. Nil entries are 405.
type methodHandlers struct {
	get    echo.HandlerFunc
	post   echo.HandlerFunc
	put    echo.HandlerFunc
	delete echo.HandlerFunc
}

// dispatch resolves the effective method, runs the anti-forgery gate and
// hands off to the matching handler. Reads receive a token; writes must
// present it before anything else happens.
func dispatch(c echo.Context, guard *xsrf.Guard, handlers methodHandlers) error {
	switch method := resolveMethod(c); method {
	case http.MethodGet:
		if handlers.get == nil {
			break
		}
		if _, err := guard.Issue(c); err != nil {
			return err
		}

		return handlers.get(c)
	case http.MethodPost, http.MethodPut, http.MethodDelete:
		next := map[string]echo.HandlerFunc{
			http.MethodPost:   handlers.post,
			http.MethodPut:    handlers.put,
			http.MethodDelete: handlers.delete,
		}[method]
		if next == nil {
			break
		}
		if err := guard.Verify(c); err != nil {
			return err
		}

		return next(c)
	}

	return domainerrors.MethodNotAllowed(msgInvalidMethod)
}

func resolveMethod(c echo.Context) string {
	if override := strings.TrimSpace(c.Request().Header.Get(HeaderMethodOverride)); override != "" {
		return strings.ToUpper(override)
	}

	return c.Request().Method
}

// lookupRule pairs a predicate on the query with the lookup it selects.
type lookupRule struct {
	when   func(c echo.Context) bool
	lookup func(c echo.Context) (any, error)
}

// firstMatch runs the lookup of the first rule whose predicate holds, or
// otherwise when none does.
func firstMatch(c echo.Context, rules []lookupRule, otherwise func(c echo.Context) (any, error)) (any, error) {
	for _, rule := range rules {
		if rule.when(c) {
			return rule.lookup(c)
		}
	}

	return otherwise(c)
}

func hasQuery(names ...string) func(c echo.Context) bool {
	return func(c echo.Context) bool {
		return queryValue(c, names...) != ""
	}
}

// hasIntQuery matches when every named parameter is an integer. Anything else counts as absent.
func hasIntQuery(names ...string) func(c echo.Context) bool {
	return func(c echo.Context) bool {
		for _, name := range names {
			if _, err := strconv.ParseInt(queryValue(c, name), 10, 64); err != nil {
				return false
			}
		}

		return true
	}
}

// queryValue returns the first non-blank query parameter among names.
func queryValue(c echo.Context, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(c.QueryParam(name)); v != "" {
			return v
		}
	}

	return ""
}

// queryInt64 parses the first present parameter among names. Absent is (0, false, nil).
func queryInt64(c echo.Context, names ...string) (int64, bool, error) {
	raw := queryValue(c, names...)
	if raw == "" {
		return 0, false, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, domainerrors.InvalidFormat("%s must be an integer", names[0])
	}

	return v, true, nil
}

// requireQueryID reads the id of the targeted row for PUT and DELETE.
func requireQueryID(c echo.Context) (int64, error) {
	id, ok, err := queryInt64(c, "id")
	if err != nil {
		return 0, err
	}
	if !ok || id <= 0 {
		return 0, domainerrors.MethodNotAllowed(msgInvalidID)
	}

	return id, nil
}

// bindBody decodes the JSON body into dst and validates it. A missing
// required field maps to its message in missing.
func bindBody(c echo.Context, dst any, missing map[string]string) error {
	binder := &echo.DefaultBinder{}
	if err := binder.BindBody(c, dst); err != nil {
		return domainerrors.InvalidFormat("request body is not valid JSON")
	}

	if err := c.Validate(dst); err != nil {
		if fieldErr, ok := errors.AsType[*validator.FieldError](err); ok {
			if msg, found := missing[fieldErr.Field]; found && fieldErr.Tag == "required" {
				return domainerrors.MissingField(msg)
			}

			return domainerrors.InvalidFormat("%s is invalid", fieldErr.Field)
		}

		return errors.WithStack(err)
	}

	return nil
}
