package response

import (
	"net/http"
	"reflect"

	"github.com/labstack/echo/v4"
)

// Reply is the envelope of every API response. The HTTP status always
// equals Status.
type Reply struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Data replies 200 with data. Nil values and empty collections are left out.
func Data(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Reply{
		Status: http.StatusOK,
		Data:   normalize(data),
	})
}

// Message replies 200 with a confirmation message.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Reply{
		Status:  http.StatusOK,
		Message: message,
	})
}

// MessageWithData replies 200 with both a message and data.
func MessageWithData(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, Reply{
		Status:  http.StatusOK,
		Message: message,
		Data:    normalize(data),
	})
}

// Error replies with a failure status and message.
func Error(c echo.Context, status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}

	return c.JSON(status, Reply{
		Status:  status,
		Message: message,
	})
}

func normalize(data any) any {
	if data == nil {
		return nil
	}

	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map:
		if v.IsNil() {
			return nil
		}
		if v.Kind() == reflect.Map && v.Len() == 0 {
			return nil
		}
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 {
			return nil
		}
	}

	return data
}
