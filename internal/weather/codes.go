package weather

import "github.com/mmynk/littlewardrobe/internal/models"

// describe maps a WMO weather interpretation code to a condition and a
// human-readable description.
func describe(code int) (models.WeatherCondition, string) {
	switch code {
	case 0:
		return models.ConditionClear, "Clear sky"
	case 1:
		return models.ConditionClear, "Mainly clear"
	case 2:
		return models.ConditionCloudy, "Partly cloudy"
	case 3:
		return models.ConditionCloudy, "Overcast"
	case 45, 48:
		return models.ConditionFog, "Fog"
	case 51, 53, 55, 56, 57:
		return models.ConditionDrizzle, "Drizzle"
	case 61, 63, 65, 66, 67, 80, 81, 82:
		return models.ConditionRain, "Rain"
	case 71, 73, 75, 77, 85, 86:
		return models.ConditionSnow, "Snow"
	case 95, 96, 99:
		return models.ConditionThunderstorm, "Thunderstorm"
	default:
		return models.ConditionUnknown, "Unknown"
	}
}
