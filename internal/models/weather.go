package models

// WeatherCondition is a coarse description of the sky.
type WeatherCondition string

const (
	ConditionClear        WeatherCondition = "Clear"
	ConditionCloudy       WeatherCondition = "Cloudy"
	ConditionFog          WeatherCondition = "Fog"
	ConditionDrizzle      WeatherCondition = "Drizzle"
	ConditionRain         WeatherCondition = "Rain"
	ConditionSnow         WeatherCondition = "Snow"
	ConditionThunderstorm WeatherCondition = "Thunderstorm"
	ConditionUnknown      WeatherCondition = "Unknown"
)

// WeatherReport is the current weather at a location.
type WeatherReport struct {
	Condition    WeatherCondition `json:"condition"`
	TemperatureC float64          `json:"temperatureC"`
	Description  string           `json:"description"`

	// FetchedAt is the Unix timestamp of the upstream call.
	FetchedAt int64 `json:"fetchedAt"`
}
