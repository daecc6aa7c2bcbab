package llm

import (
	"encoding/json"
	"testing"
)

func TestExtractJSONFence(t *testing.T) {
	text := "Here is the result:\n```json\n{\"question\": \"What is empathy?\"}\n```\nDone."

	raw, err := ExtractJSON(text)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	assertField(t, raw, "question", "What is empathy?")
}

func TestExtractAnyFence(t *testing.T) {
	out := "```\n{\"question\": \"Describe teamwork.\"}\n```"

	raw, err := ExtractJSON(out)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	assertField(t, raw, "question", "Describe teamwork.")
}

func TestExtractBraceScan(t *testing.T) {
	out := "The model says {\"is_correct\": true, \"explanation\": \"good\"} and nothing else"

	raw, err := ExtractJSON(out)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal extracted JSON: %v", err)
	}
	if _, ok := fields["is_correct"]; !ok {
		t.Error("expected is_correct field in extracted JSON")
	}
}

func TestExtractPrefersJSONFenceOverBraces(t *testing.T) {
	out := "{\"wrong\": 1}\n```json\n{\"right\": 2}\n```"

	raw, err := ExtractJSON(out)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := fields["right"]; !ok {
		t.Errorf("expected fenced block to win, got %s", raw)
	}
}

func TestExtractNoJSON(t *testing.T) {
	if _, err := ExtractJSON("no structured content here"); err == nil {
		t.Fatal("expected error for text without JSON")
	}
}

func TestExtractRejectsNonObject(t *testing.T) {
	if _, err := ExtractJSON("[1, 2, 3]"); err == nil {
		t.Fatal("expected error for non-object JSON")
	}
}

func assertField(t *testing.T, raw json.RawMessage, key, want string) {
	t.Helper()
	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal extracted JSON: %v", err)
	}
	if got := fields[key]; got != want {
		t.Errorf("field %s = %q, want %q", key, got, want)
	}
}
