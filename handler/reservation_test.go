package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestCreateReservationDefaultsToPending(t *testing.T) {
	app := setupApp(t)

	resp, body := doRequest(t, app, http.MethodPost, "/api/reservations", validReservationBody())
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%v)", resp.StatusCode, body)
	}

	reservation, ok := body["reservation"].(map[string]any)
	if !ok {
		t.Fatalf("response missing reservation: %v", body)
	}
	if reservation["status"] != "pending" {
		t.Errorf("status = %v, want pending", reservation["status"])
	}
	if id, _ := reservation["id"].(string); id == "" {
		t.Error("server should assign an id")
	}
	if msg, _ := body["message"].(string); msg == "" {
		t.Error("response should carry a confirmation message")
	}
}

func TestCreateReservationKeepsExplicitStatus(t *testing.T) {
	app := setupApp(t)

	payload := validReservationBody()
	payload["status"] = "confirmed"
	resp, body := doRequest(t, app, http.MethodPost, "/api/reservations", payload)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (%v)", resp.StatusCode, body)
	}
	reservation := body["reservation"].(map[string]any)
	if reservation["status"] != "confirmed" {
		t.Errorf("status = %v, want confirmed", reservation["status"])
	}
}

func TestCreateReservationRejectsZeroPartySize(t *testing.T) {
	app := setupApp(t)

	payload := validReservationBody()
	payload["partySize"] = 0
	resp, body := doRequest(t, app, http.MethodPost, "/api/reservations", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%v)", resp.StatusCode, body)
	}
	if _, ok := body["details"]; !ok {
		t.Errorf("validation failures should carry field details: %v", body)
	}
}

func TestCreateReservationRejectsFractionalDuration(t *testing.T) {
	app := setupApp(t)

	payload := validReservationBody()
	payload["duration"] = 90.5
	resp, body := doRequest(t, app, http.MethodPost, "/api/reservations", payload)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (%v)", resp.StatusCode, body)
	}
}

func TestListReservations(t *testing.T) {
	app := setupApp(t)

	for i := 0; i < 3; i++ {
		resp, body := doRequest(t, app, http.MethodPost, "/api/reservations", validReservationBody())
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("create %d: status = %d (%v)", i, resp.StatusCode, body)
		}
	}

	resp, body := doRequest(t, app, http.MethodGet, "/api/reservations", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%v)", resp.StatusCode, body)
	}
	if count, _ := body["count"].(float64); count != 3 {
		t.Errorf("count = %v, want 3", body["count"])
	}
	rows, _ := body["reservations"].([]any)
	if len(rows) != 3 {
		t.Errorf("reservations = %d rows, want 3", len(rows))
	}
}

func TestUpdateReservationMergesFields(t *testing.T) {
	app := setupApp(t)

	_, created := doRequest(t, app, http.MethodPost, "/api/reservations", validReservationBody())
	id := created["reservation"].(map[string]any)["id"].(string)

	resp, body := doRequest(t, app, http.MethodPut, "/api/reservations/"+id, map[string]any{
		"partySize": 6,
		"status":    "seated",
		"seatedAt":  "2025-06-14T19:05:00Z",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%v)", resp.StatusCode, body)
	}

	reservation := body["reservation"].(map[string]any)
	if reservation["partySize"] != float64(6) {
		t.Errorf("partySize = %v, want 6", reservation["partySize"])
	}
	if reservation["status"] != "seated" {
		t.Errorf("status = %v, want seated", reservation["status"])
	}
	// untouched fields survive the merge
	customer := reservation["customer"].(map[string]any)
	if customer["name"] != "Dana Reyes" {
		t.Errorf("customer.name = %v, want unchanged", customer["name"])
	}
	if reservation["seatedAt"] == nil {
		t.Error("seatedAt should be set")
	}
}

func TestUpdateReservationAdvancesUpdatedAt(t *testing.T) {
	app := setupApp(t)

	_, created := doRequest(t, app, http.MethodPost, "/api/reservations", validReservationBody())
	reservation := created["reservation"].(map[string]any)
	id := reservation["id"].(string)
	before := reservation["updatedAt"].(string)

	resp, body := doRequest(t, app, http.MethodPut, "/api/reservations/"+id, map[string]any{"partySize": 2})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200 (%v)", resp.StatusCode, body)
	}
	after := body["reservation"].(map[string]any)["updatedAt"].(string)
	beforeTime, err := time.Parse(time.RFC3339Nano, before)
	if err != nil {
		t.Fatalf("bad updatedAt %q: %v", before, err)
	}
	afterTime, err := time.Parse(time.RFC3339Nano, after)
	if err != nil {
		t.Fatalf("bad updatedAt %q: %v", after, err)
	}
	if afterTime.Before(beforeTime) {
		t.Errorf("updatedAt went backwards: %s -> %s", before, after)
	}
}

func TestUpdateReservationNotFound(t *testing.T) {
	app := setupApp(t)

	resp, body := doRequest(t, app, http.MethodPut, "/api/reservations/"+uuid.NewString(), map[string]any{"partySize": 2})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404 (%v)", resp.StatusCode, body)
	}
	if body["message"] != "Reservation not found" {
		t.Errorf("message = %v, want %q", body["message"], "Reservation not found")
	}
}

func TestMalformedIdFailsBeforeLookup(t *testing.T) {
	app := setupApp(t)

	for _, method := range []string{http.MethodPut, http.MethodDelete} {
		var payload map[string]any
		if method == http.MethodPut {
			payload = map[string]any{"partySize": 2}
		}
		resp, body := doRequest(t, app, method, "/api/reservations/not-a-uuid", payload)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s with malformed id: status = %d, want 400 (%v)", method, resp.StatusCode, body)
		}
	}
}

func TestDeleteReservationTwice(t *testing.T) {
	app := setupApp(t)

	_, created := doRequest(t, app, http.MethodPost, "/api/reservations", validReservationBody())
	id := created["reservation"].(map[string]any)["id"].(string)

	resp, body := doRequest(t, app, http.MethodDelete, "/api/reservations/"+id, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("first delete: status = %d, want 200 (%v)", resp.StatusCode, body)
	}
	reservation, ok := body["reservation"].(map[string]any)
	if !ok || reservation["id"] != id {
		t.Errorf("first delete should return the removed row's last-known data: %v", body)
	}

	// a second delete of the same id is a not-found, not a no-op
	resp, body = doRequest(t, app, http.MethodDelete, "/api/reservations/"+id, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("second delete: status = %d, want 404 (%v)", resp.StatusCode, body)
	}
}
