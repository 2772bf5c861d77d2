package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false) // json=true, tty=false

	data := map[string]any{
		"status":    "converted",
		"converted": 12,
	}

	err := printer.Success(data)
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["status"] != "converted" {
		t.Errorf("status = %v, want %q", result["status"], "converted")
	}
	if count, ok := result["converted"].(float64); !ok || int(count) != 12 {
		t.Errorf("converted = %v, want 12", result["converted"])
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false) // json=true, tty=false

	exitErr := NewUserError("no journal JSON found in archive")
	printer.Error(exitErr)

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["error"] != "no journal JSON found in archive" {
		t.Errorf("error = %v, want %q", result["error"], "no journal JSON found in archive")
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], ExitUserError)
	}
}

func TestPrinter_Human_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false) // json=false, tty=false (no colors)

	data := map[string]any{
		"message": "Converted 12 entries",
	}

	err := printer.Success(data)
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Converted 12 entries") {
		t.Errorf("output = %q, want to contain 'Converted 12 entries'", output)
	}
}

func TestPrinter_Human_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false) // json=false, tty=false

	exitErr := NewUserError("archive not found: export.zip")
	printer.Error(exitErr)

	output := buf.String()
	if !strings.Contains(output, "Error") {
		t.Errorf("output should contain 'Error': %q", output)
	}
	if !strings.Contains(output, "archive not found: export.zip") {
		t.Errorf("output should contain error message: %q", output)
	}
}

func TestPrinter_Print(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Print("Hello, %s!", "world")

	if buf.String() != "Hello, world!" {
		t.Errorf("output = %q, want %q", buf.String(), "Hello, world!")
	}
}

func TestPrinter_Println(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Println("Hello")

	if buf.String() != "Hello\n" {
		t.Errorf("output = %q, want %q", buf.String(), "Hello\n")
	}
}

func TestPrinter_IsJSON(t *testing.T) {
	var buf bytes.Buffer

	jsonPrinter := NewPrinter(&buf, true, false)
	if !jsonPrinter.IsJSON() {
		t.Error("IsJSON() should return true for JSON printer")
	}

	humanPrinter := NewPrinter(&buf, false, false)
	if humanPrinter.IsJSON() {
		t.Error("IsJSON() should return false for human printer")
	}
}

func TestPrinter_Warn_Human(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Warn("entry %s has no identifier", "2024-02-02")

	output := buf.String()
	if !strings.Contains(output, "Warning") {
		t.Errorf("output should contain 'Warning': %q", output)
	}
	if !strings.Contains(output, "has no identifier") {
		t.Errorf("output should contain message: %q", output)
	}
}

func TestPrinter_Warn_JSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Warn("3 media references missing")

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["warning"] != "3 media references missing" {
		t.Errorf("warning = %v, want %q", result["warning"], "3 media references missing")
	}
}

func TestPrinter_Stderr_SilentInJSONMode(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, true, false).WithStderr(&errOut)

	printer.Stderr("[%d/%d] %s\n", 1, 10, "2024-01-15 Morning thoughts.md")

	if errOut.Len() != 0 {
		t.Errorf("Stderr in JSON mode wrote %q, want nothing", errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("Stderr in JSON mode wrote to stdout: %q", out.String())
	}
}

func TestPrinter_Table_Alignment(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Table(
		[]string{"JOURNAL", "ENTRIES"},
		[][]string{
			{"Journal", "42"},
			{"Travel 2024", "7"},
		},
	)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Table() produced %d lines, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[2], "Travel 2024  ") {
		t.Errorf("row = %q, want padded journal name column", lines[2])
	}
}

func TestErrorJSON_Format(t *testing.T) {
	result := ErrorJSON("test error", ExitUserError)

	var parsed struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		t.Fatalf("Failed to parse ErrorJSON output: %v", err)
	}

	if parsed.Error != "test error" {
		t.Errorf("error = %q, want %q", parsed.Error, "test error")
	}
	if parsed.Code != ExitUserError {
		t.Errorf("code = %d, want %d", parsed.Code, ExitUserError)
	}
}
