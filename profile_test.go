package wacloud

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestGetBusinessProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v21.0/106540352242922/whatsapp_business_profile" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.URL.Query().Get("fields") == "" {
			t.Error("expected a fields query parameter")
		}
		w.Write([]byte(`{"data":[{"about":"Open 9-5","vertical":"RETAIL","websites":["https://shop.example.com"]}]}`))
	})

	profile, err := client.GetBusinessProfile(context.Background())
	if err != nil {
		t.Fatalf("GetBusinessProfile() error = %v", err)
	}
	if profile.About != "Open 9-5" || profile.Vertical != "RETAIL" {
		t.Errorf("profile = %+v", profile)
	}
	if len(profile.Websites) != 1 {
		t.Errorf("websites = %v", profile.Websites)
	}
}

func TestGetBusinessProfile_NarrowedFields(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("fields"); got != "about,email" {
			t.Errorf("fields = %s, want about,email", got)
		}
		w.Write([]byte(`{"data":[{"about":"Open 9-5","email":"help@example.com"}]}`))
	})

	if _, err := client.GetBusinessProfile(context.Background(), "about", "email"); err != nil {
		t.Fatalf("GetBusinessProfile() error = %v", err)
	}
}

func TestUpdateBusinessProfile(t *testing.T) {
	var body map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"success":true}`))
	})

	err := client.UpdateBusinessProfile(context.Background(), BusinessProfile{
		About:    "New about text",
		Vertical: "RETAIL",
	})
	if err != nil {
		t.Fatalf("UpdateBusinessProfile() error = %v", err)
	}
	if body["about"] != "New about text" {
		t.Errorf("about = %v", body["about"])
	}
	if body["messaging_product"] != "whatsapp" {
		t.Errorf("messaging_product = %v", body["messaging_product"])
	}
}
