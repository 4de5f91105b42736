package client

import (
	"strings"
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Verdict
	}{
		{
			name:    "correct",
			message: "That's the right answer! You are one gold star closer.",
			want:    VerdictCorrect,
		},
		{
			name:    "wrong",
			message: "That's not the right answer. If you're stuck, try again later.",
			want:    VerdictWrong,
		},
		{
			name:    "pending",
			message: "You gave an answer too recently; you have to wait. You have 42s left to wait.",
			want:    VerdictPending,
		},
		{
			name:    "wrong level",
			message: "You don't seem to be solving the right level. Did you already complete it?",
			want:    VerdictWrongLevel,
		},
		{
			name:    "unexpected",
			message: "Please log in to submit answers.",
			want:    VerdictUnknown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.message)
			if got.Verdict != tt.want {
				t.Fatalf("Classify(%q).Verdict = %s, want %s", tt.message, got.Verdict, tt.want)
			}
			if got.Message != tt.message {
				t.Fatalf("Message = %q, want original text", got.Message)
			}
		})
	}
}

func TestClassifyPendingWait(t *testing.T) {
	tests := []struct {
		message string
		want    time.Duration
	}{
		{"You gave an answer too recently. You have 1m 30s left to wait.", 91 * time.Second},
		{"You gave an answer too recently. You have 42s left to wait.", 43 * time.Second},
		{"You gave an answer too recently.", time.Minute},
	}
	for _, tt := range tests {
		got := Classify(tt.message)
		if got.Wait != tt.want {
			t.Fatalf("Classify(%q).Wait = %s, want %s", tt.message, got.Wait, tt.want)
		}
	}
}

func TestClassifyNonPendingHasNoWait(t *testing.T) {
	got := Classify("That's the right answer!")
	if got.Wait != 0 {
		t.Fatalf("Wait = %s, want 0", got.Wait)
	}
}

func TestExtractMessage(t *testing.T) {
	page := `<html><body>
		<header><p>ignored navigation text</p></header>
		<main><article><p>  That's the right answer!  </p><p>second</p></article></main>
	</body></html>`
	got, err := ExtractMessage(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ExtractMessage() error = %v", err)
	}
	if got != "That's the right answer!" {
		t.Fatalf("ExtractMessage() = %q", got)
	}
}

func TestExtractMessageFallsBackToBodyText(t *testing.T) {
	got, err := ExtractMessage(strings.NewReader("<html><body>  plain error page  </body></html>"))
	if err != nil {
		t.Fatalf("ExtractMessage() error = %v", err)
	}
	if got != "plain error page" {
		t.Fatalf("ExtractMessage() = %q", got)
	}
}
