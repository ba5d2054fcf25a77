package models

import "testing"

func TestParseStatus(t *testing.T) {
	for _, literal := range []string{"To Do", "In Progress", "Done"} {
		status, err := ParseStatus(literal)
		if err != nil {
			t.Fatalf("ParseStatus(%q) returned error: %v", literal, err)
		}
		if status.String() != literal {
			t.Errorf("ParseStatus(%q) = %q", literal, status)
		}
		if !status.Valid() {
			t.Errorf("status %q reported invalid", status)
		}
	}
}

func TestParseStatusRejectsUnknownLiterals(t *testing.T) {
	for _, literal := range []string{"", "todo", "TO DO", "done", "Archived", "In  Progress"} {
		_, err := ParseStatus(literal)
		if err == nil {
			t.Errorf("ParseStatus(%q) succeeded, want error", literal)
		}
	}
}

func TestStatusValid(t *testing.T) {
	if Status("Blocked").Valid() {
		t.Error("Status(\"Blocked\").Valid() = true")
	}
	if Status("").Valid() {
		t.Error("empty status reported valid")
	}
}
