// Package dayone defines the JSON schema of a Day One export archive and
// decodes its journal blobs into typed records.
package dayone

import "time"

// Entry is a single journal record as it appears in an export's entries array.
type Entry struct {
	UUID         string     `json:"uuid"`
	Text         string     `json:"text"`
	CreationDate time.Time  `json:"creationDate"`
	ModifiedDate *time.Time `json:"modifiedDate,omitempty"`
	TimeZone     string     `json:"timeZone,omitempty"`
	Starred      bool       `json:"starred,omitempty"`
	Pinned       bool       `json:"pinned,omitempty"`
	IsAllDay     bool       `json:"isAllDay,omitempty"`
	Tags         []string   `json:"tags,omitempty"`
	EditingTime  float64    `json:"editingTime,omitempty"`

	CreationDevice      string `json:"creationDevice,omitempty"`
	CreationDeviceType  string `json:"creationDeviceType,omitempty"`
	CreationDeviceModel string `json:"creationDeviceModel,omitempty"`
	CreationOSName      string `json:"creationOSName,omitempty"`
	CreationOSVersion   string `json:"creationOSVersion,omitempty"`

	Location     *Location `json:"location,omitempty"`
	Weather      *Weather  `json:"weather,omitempty"`
	UserActivity *Activity `json:"userActivity,omitempty"`

	Photos         []Attachment `json:"photos,omitempty"`
	Videos         []Attachment `json:"videos,omitempty"`
	Audios         []Attachment `json:"audios,omitempty"`
	PDFAttachments []Attachment `json:"pdfAttachments,omitempty"`
}

// HasDevice reports whether any device field is present on the entry.
func (e *Entry) HasDevice() bool {
	return e.CreationDevice != "" || e.CreationDeviceType != "" ||
		e.CreationDeviceModel != "" || e.CreationOSName != "" ||
		e.CreationOSVersion != ""
}

// Location is the place an entry was written. Latitude and longitude are
// pointers because zero is a valid coordinate.
type Location struct {
	PlaceName          string   `json:"placeName,omitempty"`
	LocalityName       string   `json:"localityName,omitempty"`
	AdministrativeArea string   `json:"administrativeArea,omitempty"`
	Country            string   `json:"country,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
}

// Weather is the weather snapshot captured with an entry. Fields where zero
// is meaningful (temperature, pressure, wind) are pointers so presence stays
// distinguishable; humidity and visibility are gated on strictly positive
// values downstream and decode as plain floats.
type Weather struct {
	ConditionsDescription string   `json:"conditionsDescription,omitempty"`
	WeatherCode           string   `json:"weatherCode,omitempty"`
	TemperatureCelsius    *float64 `json:"temperatureCelsius,omitempty"`
	RelativeHumidity      float64  `json:"relativeHumidity,omitempty"`
	PressureMB            *float64 `json:"pressureMB,omitempty"`
	WindSpeedKPH          *float64 `json:"windSpeedKPH,omitempty"`
	WindBearing           *float64 `json:"windBearing,omitempty"`
	VisibilityKM          float64  `json:"visibilityKM,omitempty"`
	MoonPhaseCode         string   `json:"moonPhaseCode,omitempty"`
}

// Activity is the motion snapshot captured with an entry.
type Activity struct {
	ActivityName string `json:"activityName,omitempty"`
	StepCount    int    `json:"stepCount,omitempty"`
}

// Attachment describes one media file owned by an entry. The identifier is
// the opaque token referenced from the entry body; the md5 is the content
// fingerprint the export names the media file after.
type Attachment struct {
	Identifier  string `json:"identifier"`
	MD5         string `json:"md5"`
	Type        string `json:"type,omitempty"`
	CameraMake  string `json:"cameraMake,omitempty"`
	CameraModel string `json:"cameraModel,omitempty"`
	LensModel   string `json:"lensModel,omitempty"`
	Date        string `json:"date,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}

// Kind returns the attachment's file extension: the explicit type when the
// export recorded one, otherwise the fallback for its category.
func (a *Attachment) Kind(fallback string) string {
	if a.Type != "" {
		return a.Type
	}
	return fallback
}
