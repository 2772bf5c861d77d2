package convert

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/gorewood/driftwood/internal/dayone"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	tagStrip       = regexp.MustCompile(`[^a-z0-9_-]`)
)

// NormalizeTag lowercases a tag, joins internal whitespace runs with a
// single hyphen, and strips every character outside [a-z0-9_-].
func NormalizeTag(tag string) string {
	normalized := strings.ToLower(strings.TrimSpace(tag))
	normalized = whitespaceRuns.ReplaceAllString(normalized, "-")
	return tagStrip.ReplaceAllString(normalized, "")
}

// NormalizeTags maps tags through NormalizeTag and drops the ones that
// normalize to nothing.
func NormalizeTags(tags []string) []string {
	var normalized []string
	for _, tag := range tags {
		if n := NormalizeTag(tag); n != "" {
			normalized = append(normalized, n)
		}
	}
	return normalized
}

// buildFrontmatter projects an entry into its ordered frontmatter record.
// Optional fields appear only when the export carries data for them; flags
// appear only when true.
func buildFrontmatter(entry *dayone.Entry) *Record {
	record := &Record{}
	record.Set("uuid", entry.UUID)
	record.Set("created", entry.CreationDate.UTC())
	if entry.ModifiedDate != nil {
		record.Set("modified", entry.ModifiedDate.UTC())
	}
	if entry.TimeZone != "" {
		record.Set("timezone", entry.TimeZone)
	}
	if entry.Starred {
		record.Set("starred", true)
	}
	if entry.Pinned {
		record.Set("pinned", true)
	}
	if entry.IsAllDay {
		record.Set("allDay", true)
	}
	if tags := NormalizeTags(entry.Tags); len(tags) > 0 {
		record.Set("tags", tags)
	}
	if location := locationRecord(entry.Location); location != nil {
		record.Set("location", location)
	}
	if weather := weatherRecord(entry.Weather); weather != nil {
		record.Set("weather", weather)
	}
	if activity := activityRecord(entry.UserActivity); activity != nil {
		record.Set("activity", activity)
	}
	if device := deviceRecord(entry); device != nil {
		record.Set("device", device)
	}
	if photos := photoRecords(entry.Photos); len(photos) > 0 {
		record.Set("photos", photos)
	}
	if entry.EditingTime > 0 {
		record.Set("editingTime", int(math.Round(entry.EditingTime)))
	}
	return record
}

func locationRecord(location *dayone.Location) *Record {
	if location == nil {
		return nil
	}
	record := &Record{}
	if location.PlaceName != "" {
		record.Set("name", location.PlaceName)
	}
	if location.LocalityName != "" {
		record.Set("locality", location.LocalityName)
	}
	if location.AdministrativeArea != "" {
		record.Set("region", location.AdministrativeArea)
	}
	if location.Country != "" {
		record.Set("country", location.Country)
	}
	if location.Latitude != nil {
		record.Set("latitude", *location.Latitude)
	}
	if location.Longitude != nil {
		record.Set("longitude", *location.Longitude)
	}
	if record.Len() == 0 {
		return nil
	}
	return record
}

func weatherRecord(weather *dayone.Weather) *Record {
	if weather == nil {
		return nil
	}
	record := &Record{}
	if conditions := weatherConditions(weather); conditions != "" {
		record.Set("conditions", conditions)
	}
	if weather.TemperatureCelsius != nil {
		record.Set("temperature", *weather.TemperatureCelsius)
	}
	// Zero humidity or visibility means the station did not report it.
	if weather.RelativeHumidity > 0 {
		record.Set("humidity", weather.RelativeHumidity)
	}
	if weather.PressureMB != nil {
		record.Set("pressure", *weather.PressureMB)
	}
	if weather.WindSpeedKPH != nil {
		record.Set("windSpeed", *weather.WindSpeedKPH)
	}
	if weather.WindBearing != nil {
		record.Set("windBearing", *weather.WindBearing)
	}
	if weather.VisibilityKM > 0 {
		record.Set("visibility", weather.VisibilityKM)
	}
	if label, ok := moonPhaseLabels[weather.MoonPhaseCode]; ok {
		record.Set("moonPhase", label)
	}
	if record.Len() == 0 {
		return nil
	}
	return record
}

// weatherConditions prefers the export's own description and falls back to
// the label table for a bare weather code.
func weatherConditions(weather *dayone.Weather) string {
	if weather.ConditionsDescription != "" {
		return weather.ConditionsDescription
	}
	return weatherConditionLabels[weather.WeatherCode]
}

func activityRecord(activity *dayone.Activity) *Record {
	if activity == nil {
		return nil
	}
	record := &Record{}
	if activity.ActivityName != "" {
		record.Set("type", activity.ActivityName)
	}
	if activity.StepCount > 0 {
		record.Set("steps", activity.StepCount)
	}
	if record.Len() == 0 {
		return nil
	}
	return record
}

func deviceRecord(entry *dayone.Entry) *Record {
	if !entry.HasDevice() {
		return nil
	}
	record := &Record{}
	if entry.CreationDevice != "" {
		record.Set("name", entry.CreationDevice)
	}
	if entry.CreationDeviceType != "" {
		record.Set("type", entry.CreationDeviceType)
	}
	if entry.CreationDeviceModel != "" {
		record.Set("model", entry.CreationDeviceModel)
	}
	if entry.CreationOSName != "" {
		record.Set("os", entry.CreationOSName)
	}
	if entry.CreationOSVersion != "" {
		record.Set("osVersion", entry.CreationOSVersion)
	}
	return record
}

func photoRecords(photos []dayone.Attachment) []*Record {
	if len(photos) == 0 {
		return nil
	}
	records := make([]*Record, 0, len(photos))
	for i := range photos {
		photo := &photos[i]
		record := &Record{}
		if photo.MD5 != "" {
			record.Set("file", photo.MD5+"."+photo.Kind(kindPhoto))
		}
		if photo.Identifier != "" {
			record.Set("identifier", photo.Identifier)
		}
		if camera := strings.TrimSpace(photo.CameraMake + " " + photo.CameraModel); camera != "" {
			record.Set("camera", camera)
		}
		if photo.LensModel != "" {
			record.Set("lens", photo.LensModel)
		}
		if photo.Date != "" {
			record.Set("date", photo.Date)
		}
		if photo.Width > 0 && photo.Height > 0 {
			record.Set("dimensions", fmt.Sprintf("%dx%d", photo.Width, photo.Height))
		}
		records = append(records, record)
	}
	return records
}
