package notify

import (
	"context"
	"testing"
)

func TestLogMessengerNeverFails(t *testing.T) {
	m := NewLogMessenger(nil)

	if err := m.SendMessage(context.Background(), "2349076167977", "hello"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestTwilioSenderRequiresCredentials(t *testing.T) {
	s := NewTwilioWhatsAppSender("", "", "2340000000000", nil)

	err := s.SendMessage(context.Background(), "2349076167977", "hello")
	if err == nil {
		t.Fatal("expected error for missing credentials")
	}
}

func TestTwilioSenderRequiresRecipient(t *testing.T) {
	s := NewTwilioWhatsAppSender("AC123", "token", "2340000000000", nil)

	if err := s.SendMessage(context.Background(), "", "hello"); err == nil {
		t.Fatal("expected error for missing recipient")
	}
	if err := s.SendMessage(context.Background(), "2349076167977", "   "); err == nil {
		t.Fatal("expected error for empty body")
	}
}

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"+234 907 616 7977", "2349076167977"},
		{"(080) 1234-5678", "08012345678"},
		{"no digits", ""},
	}
	for _, tt := range tests {
		if got := digitsOnly(tt.in); got != tt.want {
			t.Errorf("digitsOnly(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
