package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"order-grouping-service/internal/api/dto"
	"order-grouping-service/internal/domain"
	"order-grouping-service/internal/geo"
	"order-grouping-service/internal/reach"
	"order-grouping-service/internal/services"
)

type fakeOrderRepo struct {
	orders []*domain.Order
}

func (r *fakeOrderRepo) ListUngrouped(context.Context, string) ([]*domain.Order, error) {
	return r.orders, nil
}

func (r *fakeOrderRepo) AssignGroups(_ context.Context, merges []domain.SelectedMerge) ([]string, error) {
	return make([]string, len(merges)), nil
}

func testEngine() *services.Engine {
	resolver := geo.NewResolver(nil)
	checker := reach.NewChecker(nil, resolver.Remote, nil)
	return services.NewEngine(resolver, checker, services.DefaultTiers())
}

func doRequest(t *testing.T, handle http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rr := httptest.NewRecorder()
	handle(rr, req)
	return rr
}

// Both POST endpoints share the same body contract; exercise the strict
// decode and plan_date validation on each.
func postBodyCases() []struct {
	name string
	body string
	want int
} {
	return []struct {
		name string
		body string
		want int
	}{
		{"valid", `{"plan_date":"2026-08-29"}`, http.StatusOK},
		{"empty object", `{}`, http.StatusBadRequest},
		{"blank plan_date", `{"plan_date":"  "}`, http.StatusBadRequest},
		{"not json", `plan_date=today`, http.StatusBadRequest},
		{"unknown field", `{"plan_date":"2026-08-29","dry_run":true}`, http.StatusBadRequest},
		{"trailing content", `{"plan_date":"2026-08-29"}{}`, http.StatusBadRequest},
	}
}

func TestSuggestionsComputeValidation(t *testing.T) {
	h := &SuggestionHandler{Repo: &fakeOrderRepo{}, Engine: testEngine()}

	if rr := doRequest(t, h.Compute, http.MethodGet, "/suggestions", ""); rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /suggestions = %d, want 405", rr.Code)
	}

	for _, c := range postBodyCases() {
		rr := doRequest(t, h.Compute, http.MethodPost, "/suggestions", c.body)
		if rr.Code != c.want {
			t.Errorf("%s: status = %d, want %d", c.name, rr.Code, c.want)
		}
	}
}

func TestSuggestionsComputeEmptyDay(t *testing.T) {
	h := &SuggestionHandler{Repo: &fakeOrderRepo{}, Engine: testEngine()}

	rr := doRequest(t, h.Compute, http.MethodPost, "/suggestions", `{"plan_date":"2026-08-29"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var res dto.LayeredSuggestionsResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.Tight == nil || res.Normal == nil || res.Loose == nil {
		t.Errorf("tiers should serialize as empty arrays, got %s", rr.Body.String())
	}
}

func TestMergesPlanValidation(t *testing.T) {
	h := &MergeHandler{Repo: &fakeOrderRepo{}, Engine: testEngine()}

	if rr := doRequest(t, h.Plan, http.MethodGet, "/merges", ""); rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("GET /merges = %d, want 405", rr.Code)
	}

	for _, c := range postBodyCases() {
		rr := doRequest(t, h.Plan, http.MethodPost, "/merges", c.body)
		if rr.Code != c.want {
			t.Errorf("%s: status = %d, want %d", c.name, rr.Code, c.want)
		}
	}
}

func TestOrdersListValidation(t *testing.T) {
	gid := "g1"
	h := &OrderHandler{Repo: &fakeOrderRepo{orders: []*domain.Order{
		{
			ID:          "a",
			OrderNumber: "Na",
			PickupTime:  "7:00 AM",
			GroupID:     &gid,
		},
	}}}

	if rr := doRequest(t, h.List, http.MethodPost, "/orders", ""); rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("POST /orders = %d, want 405", rr.Code)
	}
	if rr := doRequest(t, h.List, http.MethodGet, "/orders", ""); rr.Code != http.StatusBadRequest {
		t.Errorf("GET /orders without plan_date = %d, want 400", rr.Code)
	}

	rr := doRequest(t, h.List, http.MethodGet, "/orders?plan_date=2026-08-29", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var res dto.ListOrdersResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Orders) != 1 || res.Orders[0].ID != "a" {
		t.Fatalf("unexpected orders %+v", res.Orders)
	}
	if res.Orders[0].GroupID == nil || *res.Orders[0].GroupID != "g1" {
		t.Errorf("group id not carried through, got %+v", res.Orders[0])
	}
}
