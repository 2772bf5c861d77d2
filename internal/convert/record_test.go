package convert

import (
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestRecord_KeepsInsertionOrder(t *testing.T) {
	record := &Record{}
	record.Set("uuid", "4B0C9D4E")
	record.Set("created", time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	record.Set("zeta", "late")
	record.Set("alpha", "early")

	out, err := renderFrontmatter(record)
	if err != nil {
		t.Fatalf("renderFrontmatter() error = %v", err)
	}

	last := -1
	for _, key := range []string{"uuid:", "created:", "zeta:", "alpha:"} {
		idx := strings.Index(out, key)
		if idx < 0 {
			t.Fatalf("frontmatter missing %q:\n%s", key, out)
		}
		if idx < last {
			t.Errorf("key %q out of insertion order:\n%s", key, out)
		}
		last = idx
	}
}

func TestRecord_TimestampsRenderPlain(t *testing.T) {
	record := &Record{}
	record.Set("created", time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))

	out, err := renderFrontmatter(record)
	if err != nil {
		t.Fatalf("renderFrontmatter() error = %v", err)
	}
	if !strings.Contains(out, "created: 2024-01-15T10:00:00Z\n") {
		t.Errorf("timestamp not rendered plain:\n%s", out)
	}
}

func TestRecord_Delimiters(t *testing.T) {
	record := &Record{}
	record.Set("uuid", "ABC")

	out, err := renderFrontmatter(record)
	if err != nil {
		t.Fatalf("renderFrontmatter() error = %v", err)
	}
	if !strings.HasPrefix(out, "---\n") {
		t.Errorf("missing opening delimiter:\n%s", out)
	}
	if !strings.HasSuffix(out, "---\n") {
		t.Errorf("missing closing delimiter:\n%s", out)
	}
}

func TestRecord_NestedRecordsAndLists(t *testing.T) {
	location := &Record{}
	location.Set("name", "Golden Gate Park")
	location.Set("latitude", 37.7694)

	photo := &Record{}
	photo.Set("file", "f00d.jpeg")
	photo.Set("dimensions", "4032x3024")

	record := &Record{}
	record.Set("tags", []string{"travel", "notes"})
	record.Set("location", location)
	record.Set("photos", []*Record{photo})

	out, err := renderFrontmatter(record)
	if err != nil {
		t.Fatalf("renderFrontmatter() error = %v", err)
	}

	if !strings.Contains(out, "- travel") {
		t.Errorf("tags not rendered block style:\n%s", out)
	}

	body := strings.TrimSuffix(strings.TrimPrefix(out, "---\n"), "---\n")
	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(body), &decoded); err != nil {
		t.Fatalf("frontmatter does not parse back: %v\n%s", err, out)
	}

	loc, ok := decoded["location"].(map[string]any)
	if !ok {
		t.Fatalf("location did not round-trip as mapping: %#v", decoded["location"])
	}
	if loc["name"] != "Golden Gate Park" {
		t.Errorf("location.name = %v, want Golden Gate Park", loc["name"])
	}
	if loc["latitude"] != 37.7694 {
		t.Errorf("location.latitude = %v, want 37.7694", loc["latitude"])
	}

	photos, ok := decoded["photos"].([]any)
	if !ok || len(photos) != 1 {
		t.Fatalf("photos did not round-trip as sequence: %#v", decoded["photos"])
	}
	first, ok := photos[0].(map[string]any)
	if !ok || first["file"] != "f00d.jpeg" {
		t.Errorf("photos[0] = %#v, want file f00d.jpeg", photos[0])
	}
}

func TestRecord_AmbiguousStringsStayStrings(t *testing.T) {
	record := &Record{}
	record.Set("osVersion", "17.2")
	record.Set("tags", []string{"true"})

	out, err := renderFrontmatter(record)
	if err != nil {
		t.Fatalf("renderFrontmatter() error = %v", err)
	}

	body := strings.TrimSuffix(strings.TrimPrefix(out, "---\n"), "---\n")
	var decoded map[string]any
	if err := yaml.Unmarshal([]byte(body), &decoded); err != nil {
		t.Fatalf("frontmatter does not parse back: %v\n%s", err, out)
	}
	if decoded["osVersion"] != "17.2" {
		t.Errorf("osVersion round-tripped as %T %v, want string 17.2", decoded["osVersion"], decoded["osVersion"])
	}
	tags, _ := decoded["tags"].([]any)
	if len(tags) != 1 || tags[0] != "true" {
		t.Errorf("tags round-tripped as %#v, want [true] as strings", decoded["tags"])
	}
}

func TestRecord_Get(t *testing.T) {
	record := &Record{}
	record.Set("uuid", "ABC")

	if got, ok := record.Get("uuid"); !ok || got != "ABC" {
		t.Errorf("Get(uuid) = %v, %v, want ABC, true", got, ok)
	}
	if _, ok := record.Get("missing"); ok {
		t.Error("Get(missing) reported present")
	}
}
