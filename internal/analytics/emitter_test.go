package analytics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dobomatyas-blip/getluxsold-website/platform/logger"
)

type fakeAnalyticsConfig struct {
	measurementID string
	apiSecret     string
}

func (f fakeAnalyticsConfig) GetGAMeasurementID() string { return f.measurementID }
func (f fakeAnalyticsConfig) GetGAAPISecret() string     { return f.apiSecret }

func TestNewEmitter_NoopWithoutMeasurementID(t *testing.T) {
	em := NewEmitter(fakeAnalyticsConfig{}, logger.New("test"))
	if _, ok := em.(NoopEmitter); !ok {
		t.Fatalf("expected NoopEmitter, got %T", em)
	}
}

func TestNewEmitter_GA4WhenConfigured(t *testing.T) {
	em := NewEmitter(fakeAnalyticsConfig{measurementID: "G-TEST", apiSecret: "s3cret"}, logger.New("test"))
	if _, ok := em.(*GA4Emitter); !ok {
		t.Fatalf("expected GA4Emitter, got %T", em)
	}
}

func TestGA4Emitter_Track(t *testing.T) {
	var gotQuery string
	var gotPayload ga4Payload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	em := NewEmitter(fakeAnalyticsConfig{measurementID: "G-TEST", apiSecret: "s3cret"}, logger.New("test")).(*GA4Emitter)
	em.baseURL = srv.URL

	em.Track(context.Background(), Event{
		ClientID: "session-1",
		Name:     "referral_visit",
		Params:   map[string]any{"ref": "jane-obrien"},
	})

	if gotQuery != "measurement_id=G-TEST&api_secret=s3cret" {
		t.Fatalf("unexpected query: %q", gotQuery)
	}
	if gotPayload.ClientID != "session-1" {
		t.Fatalf("expected client_id session-1, got %q", gotPayload.ClientID)
	}
	if len(gotPayload.Events) != 1 || gotPayload.Events[0].Name != "referral_visit" {
		t.Fatalf("unexpected events payload: %+v", gotPayload.Events)
	}
	if gotPayload.Events[0].Params["ref"] != "jane-obrien" {
		t.Fatalf("expected ref param, got %+v", gotPayload.Events[0].Params)
	}
}

func TestGA4Emitter_GeneratesClientIDWhenMissing(t *testing.T) {
	var gotPayload ga4Payload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	em := NewEmitter(fakeAnalyticsConfig{measurementID: "G-TEST", apiSecret: "s3cret"}, logger.New("test")).(*GA4Emitter)
	em.baseURL = srv.URL

	em.Track(context.Background(), Event{Name: "share"})

	if gotPayload.ClientID == "" {
		t.Fatal("expected a generated client_id for an anonymous hit")
	}
}

func TestGA4Emitter_CollectFailureDoesNotPanic(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer srv.Close()

	em := NewEmitter(fakeAnalyticsConfig{measurementID: "G-TEST", apiSecret: "s3cret"}, logger.New("test")).(*GA4Emitter)
	em.baseURL = srv.URL

	// Delivery failures are logged and swallowed.
	em.Track(context.Background(), Event{Name: "generate_lead"})

	em.baseURL = "http://127.0.0.1:0"
	em.Track(context.Background(), Event{Name: "generate_lead"})
}
