package weatherbit

import (
	"errors"
	"fmt"
	"strings"
)

// FallbackMessage is shown when the API gives no usable error text.
const FallbackMessage = "No data returned from API"

// ForecastDay is one day of the /forecast/daily payload. Only Datetime and
// Temp are guaranteed; the rest are zero when the API omits them.
type ForecastDay struct {
	Datetime string   `json:"datetime"`
	Temp     float64  `json:"temp"`
	MaxTemp  float64  `json:"max_temp"`
	MinTemp  float64  `json:"min_temp"`
	Pop      float64  `json:"pop"`
	Weather  *Weather `json:"weather,omitempty"`
}

// Weather is the nested condition summary of a forecast day.
type Weather struct {
	Code        int    `json:"code"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

// Description returns the condition text or "" when absent.
func (d ForecastDay) Description() string {
	if d.Weather == nil {
		return ""
	}
	return strings.TrimSpace(d.Weather.Description)
}

// DailyResponse mirrors /forecast/daily. Data is a pointer so a missing or
// null field can be told apart from an empty list.
type DailyResponse struct {
	Data     *[]ForecastDay `json:"data"`
	Error    string         `json:"error"`
	CityName string         `json:"city_name"`
	Timezone string         `json:"timezone"`
}

// Forecast is a successfully fetched daily forecast.
type Forecast struct {
	Days     []ForecastDay
	CityName string
	Timezone string
}

// APIError reports a response that did not carry the data field.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("weatherbit: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("weatherbit: response missing data (status %d)", e.StatusCode)
}

// AlertText returns the text to show the user for a failed fetch: the
// server-provided message when there is one, FallbackMessage otherwise.
func AlertText(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if msg := strings.TrimSpace(apiErr.Message); msg != "" {
			return msg
		}
	}
	return FallbackMessage
}
