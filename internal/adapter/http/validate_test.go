package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dataguard/internal/core/domain"
	"dataguard/internal/core/port/mocks"

	"github.com/stretchr/testify/mock"
)

func testHandler(t *testing.T) (*Handler, *mocks.MockValidator) {
	svc := mocks.NewMockValidator(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger), svc
}

// TestValidateEndpoint ensures a JSON object reaches the validator and the
// report comes back verbatim with HTTP 200.
func TestValidateEndpoint(t *testing.T) {
	h, svc := testHandler(t)

	cid := "camp_1"
	svc.EXPECT().
		ValidateRecord(mock.Anything, mock.Anything).
		Return(domain.Report{
			Valid:       true,
			Errors:      []string{},
			Warnings:    []string{},
			CampaignID:  &cid,
			ValidatedAt: time.Date(2024, 10, 15, 9, 0, 0, 0, time.UTC),
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/records/validate",
		strings.NewReader(`{"campaign_id":"camp_1"}`))
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var rep domain.Report
	if err := json.Unmarshal(rr.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !rep.Valid || rep.CampaignID == nil || *rep.CampaignID != "camp_1" {
		t.Fatalf("unexpected report: %+v", rep)
	}
}

// TestValidateEndpointNonObjectBody ensures a syntactically valid but
// wrong-shaped body still reaches the engine rather than failing at the
// transport layer.
func TestValidateEndpointNonObjectBody(t *testing.T) {
	h, svc := testHandler(t)

	svc.EXPECT().
		ValidateRecord(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, payload interface{}) {
			if _, ok := payload.([]interface{}); !ok {
				t.Fatalf("expected array payload to pass through, got %T", payload)
			}
		}).
		Return(domain.Report{
			Valid:    false,
			Errors:   []string{"payload must be a JSON object"},
			Warnings: []string{},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/records/validate",
		strings.NewReader(`[1,2,3]`))
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with invalid report, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"valid":false`) {
		t.Fatalf("expected invalid report, got %s", rr.Body.String())
	}
}

// TestValidateEndpointBadJSON ensures broken syntax is a transport error.
func TestValidateEndpointBadJSON(t *testing.T) {
	h, _ := testHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/records/validate",
		strings.NewReader(`{"campaign_id":`))
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

// TestStatsEndpointBadDate rejects malformed query parameters.
func TestStatsEndpointBadDate(t *testing.T) {
	h, _ := testHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats/overview?from=15-10-2024", nil)
	rr := httptest.NewRecorder()
	h.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
