package wacloud

import (
	"errors"
	"testing"
)

const messageDelivery = `{
	"object": "whatsapp_business_account",
	"entry": [{
		"id": "102290129340398",
		"changes": [{
			"field": "messages",
			"value": {
				"messaging_product": "whatsapp",
				"metadata": {"display_phone_number": "15550001111", "phone_number_id": "106540352242922"},
				"contacts": [{"wa_id": "15551234567", "profile": {"name": "Ada"}}],
				"messages": [{
					"id": "wamid.HBgL",
					"from": "15551234567",
					"timestamp": "1700000000",
					"type": "text",
					"text": {"body": "hello there"}
				}]
			}
		}]
	}]
}`

const statusDelivery = `{
	"object": "whatsapp_business_account",
	"entry": [{
		"id": "102290129340398",
		"changes": [{
			"field": "messages",
			"value": {
				"messaging_product": "whatsapp",
				"statuses": [{
					"id": "wamid.HBgL",
					"status": "delivered",
					"timestamp": "1700000005",
					"recipient_id": "15551234567"
				}]
			}
		}]
	}]
}`

func TestParseWebhook_MessageEvent(t *testing.T) {
	event, err := ParseWebhook([]byte(messageDelivery))
	if err != nil {
		t.Fatalf("ParseWebhook() error = %v", err)
	}

	if event.Kind != EventMessage {
		t.Errorf("Kind = %s, want %s", event.Kind, EventMessage)
	}
	if event.Object != "whatsapp_business_account" {
		t.Errorf("Object = %s", event.Object)
	}
	if len(event.Entries) != 1 {
		t.Fatalf("Entries = %d, want 1", len(event.Entries))
	}

	msgs := event.Entries[0].Changes[0].Value.Messages
	if len(msgs) != 1 {
		t.Fatalf("Messages = %d, want 1", len(msgs))
	}
	if msgs[0].From != "15551234567" {
		t.Errorf("From = %s", msgs[0].From)
	}
	if msgs[0].Text == nil || msgs[0].Text.Body != "hello there" {
		t.Errorf("Text = %+v", msgs[0].Text)
	}
}

func TestParseWebhook_StatusEvent(t *testing.T) {
	event, err := ParseWebhook([]byte(statusDelivery))
	if err != nil {
		t.Fatalf("ParseWebhook() error = %v", err)
	}
	if event.Kind != EventStatus {
		t.Errorf("Kind = %s, want %s", event.Kind, EventStatus)
	}
	statuses := event.Entries[0].Changes[0].Value.Statuses
	if len(statuses) != 1 || statuses[0].Status != "delivered" {
		t.Errorf("Statuses = %+v", statuses)
	}
}

func TestParseWebhook_AccountEvent(t *testing.T) {
	payload := `{"object":"whatsapp_business_account","entry":[{"id":"1","changes":[{"field":"account_update","value":{"event":"DISABLED_UPDATE"}}]}]}`
	event, err := ParseWebhook([]byte(payload))
	if err != nil {
		t.Fatalf("ParseWebhook() error = %v", err)
	}
	if event.Kind != EventAccount {
		t.Errorf("Kind = %s, want %s", event.Kind, EventAccount)
	}
}

func TestParseWebhook_EmptyEntryAccepted(t *testing.T) {
	event, err := ParseWebhook([]byte(`{"object":"whatsapp_business_account","entry":[]}`))
	if err != nil {
		t.Fatalf("ParseWebhook() error = %v", err)
	}
	if event.Kind != EventAccount {
		t.Errorf("Kind = %s, want %s for empty entry", event.Kind, EventAccount)
	}
}

func TestParseWebhook_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not JSON", `not json at all`},
		{"JSON scalar", `42`},
		{"JSON array", `[1,2,3]`},
		{"wrong object", `{"object":"other","entry":[]}`},
		{"missing object", `{"entry":[]}`},
		{"missing entry", `{"object":"whatsapp_business_account"}`},
		{"entry is null", `{"object":"whatsapp_business_account","entry":null}`},
		{"entry not array", `{"object":"whatsapp_business_account","entry":{"id":"1"}}`},
		{"entry is string", `{"object":"whatsapp_business_account","entry":"nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWebhook([]byte(tt.payload))
			if err == nil {
				t.Fatal("ParseWebhook() succeeded, want ValidationError")
			}
			var valErr *ValidationError
			if !errors.As(err, &valErr) {
				t.Errorf("error = %T, want *ValidationError", err)
			}
			if !errors.Is(err, ErrValidation) {
				t.Error("error should match ErrValidation")
			}
		})
	}
}

// stubValidator records the payload it saw and returns a fixed error.
type stubValidator struct {
	seen []byte
	err  error
}

func (v *stubValidator) Validate(payload []byte) error {
	v.seen = append([]byte(nil), payload...)
	return v.err
}

func TestParseWebhook_ValidatorDelegation(t *testing.T) {
	t.Run("failure propagates unchanged", func(t *testing.T) {
		want := errors.New("schema mismatch at entry[0]")
		v := &stubValidator{err: want}

		_, err := ParseWebhook([]byte(messageDelivery), WithValidator(v))
		if !errors.Is(err, want) {
			t.Errorf("error = %v, want the validator's own error", err)
		}
		if string(v.seen) != messageDelivery {
			t.Error("validator did not receive the raw payload")
		}
	})

	t.Run("success replaces built-in shape check", func(t *testing.T) {
		// A payload the built-in check would reject still parses when
		// the supplied validator accepts it.
		payload := `{"object":"other","entry":[]}`
		event, err := ParseWebhook([]byte(payload), WithValidator(&stubValidator{}))
		if err != nil {
			t.Fatalf("ParseWebhook() error = %v", err)
		}
		if event.Object != "other" {
			t.Errorf("Object = %s, want other", event.Object)
		}
	})
}

func TestVerifyWebhookSignature(t *testing.T) {
	payload := []byte(`{"object":"whatsapp_business_account"}`)
	secret := "s3cr3t"
	// HMAC-SHA256 of the payload under "s3cr3t".
	genuine := "sha256=6e8ddfd7f9da1721f11cfdf13893594c5ffed70a767c5b5b193960dee6dec37e"

	if !VerifyWebhookSignature(payload, genuine, secret) {
		t.Error("genuine signature rejected")
	}
	tampered := genuine[:len(genuine)-1] + "f"
	if VerifyWebhookSignature(payload, tampered, secret) {
		t.Error("tampered signature accepted")
	}
	if VerifyWebhookSignature(payload, genuine, "wrong") {
		t.Error("wrong secret accepted")
	}
}

func TestSignWebhookPayload_RoundTrip(t *testing.T) {
	payload := []byte(`{"object":"whatsapp_business_account","entry":[]}`)
	header := SignWebhookPayload(payload, "app-secret")

	if !VerifyWebhookSignature(payload, header, "app-secret") {
		t.Error("signed payload failed verification")
	}
	mutated := append([]byte(nil), payload...)
	mutated[0] ^= 0x01
	if VerifyWebhookSignature(mutated, header, "app-secret") {
		t.Error("mutated payload passed verification")
	}
}

func TestVerifyWebhookChallenge(t *testing.T) {
	tests := []struct {
		name          string
		mode          string
		token         string
		verifyToken   string
		challenge     string
		wantChallenge string
		wantOK        bool
	}{
		{"valid handshake", "subscribe", "tok", "tok", "1158201444", "1158201444", true},
		{"wrong mode", "unsubscribe", "tok", "tok", "x", "", false},
		{"wrong token", "subscribe", "bad", "tok", "x", "", false},
		{"empty verify token", "subscribe", "", "", "x", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := VerifyWebhookChallenge(tt.mode, tt.token, tt.verifyToken, tt.challenge)
			if ok != tt.wantOK || got != tt.wantChallenge {
				t.Errorf("VerifyWebhookChallenge() = (%q, %v), want (%q, %v)",
					got, ok, tt.wantChallenge, tt.wantOK)
			}
		})
	}
}
