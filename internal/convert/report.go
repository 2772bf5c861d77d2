package convert

// Report summarizes one conversion run. Entries counts every record seen;
// converted, skipped and filtered partition it.
type Report struct {
	Journals     int `json:"journals"`
	Entries      int `json:"entries"`
	Converted    int `json:"converted"`
	Skipped      int `json:"skipped"`
	Filtered     int `json:"filtered,omitempty"`
	Attachments  int `json:"attachments"`
	MissingMedia int `json:"missing_media,omitempty"`
	Synthesized  int `json:"synthesized_ids,omitempty"`
}
