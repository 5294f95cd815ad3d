package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/megaxsolutions/syncorp-sub002/internal/core/domain"
)

func TestAdjustmentRejectWithoutReasonIsBlockedLocally(t *testing.T) {
	var mu sync.Mutex
	adjustmentRequests := 0

	_, client, sess, refs := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if serveReferenceData(w, r) {
			return
		}
		mu.Lock()
		adjustmentRequests++
		mu.Unlock()
		w.Write([]byte(`{"data": []}`))
	})

	svc := NewAdjustmentService(client, sess, refs, time.Minute)

	if err := svc.Reject(context.Background(), "12", "   "); !errors.Is(err, domain.ErrReasonRequired) {
		t.Fatalf("expected reason-required error, got %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if adjustmentRequests != 0 {
		t.Fatalf("validation failure must not reach the network, saw %d requests", adjustmentRequests)
	}
}

func TestAdjustmentRejectSendsReasonAndActor(t *testing.T) {
	var mu sync.Mutex
	var decision map[string]interface{}

	_, client, sess, refs := newTestUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		if serveReferenceData(w, r) {
			return
		}
		if r.Method == http.MethodPut && r.URL.Path == "/adjustments/update_approval_adjustment/12" {
			mu.Lock()
			json.NewDecoder(r.Body).Decode(&decision)
			mu.Unlock()
			w.Write([]byte(`{"success": true}`))
			return
		}
		w.Write([]byte(`{"data": []}`))
	})

	svc := NewAdjustmentService(client, sess, refs, time.Minute)
	if err := svc.Reject(context.Background(), "12", "no matching biometric log"); err != nil {
		t.Fatalf("reject: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if decision["status"] != "Rejected" {
		t.Fatalf("expected rejected status, got %v", decision["status"])
	}
	if decision["reason"] != "no matching biometric log" {
		t.Fatalf("reason not forwarded: %v", decision["reason"])
	}
	if decision["approved_by"] != "900" {
		t.Fatalf("actor not attached: %v", decision["approved_by"])
	}
}
