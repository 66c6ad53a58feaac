package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/dailycart/internal/briefing"
	"github.com/i474232898/dailycart/internal/estimate"
	"github.com/i474232898/dailycart/internal/store"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// Sunday 14 January 2024, 08:00 IST.
var clock = func() time.Time { return time.Date(2024, time.January, 14, 2, 30, 0, 0, time.UTC) }

func newTestApp(t *testing.T) (*fiber.App, *briefing.Service) {
	t.Helper()

	ist := time.FixedZone("IST", 5*3600+1800)
	svc := briefing.NewService(
		store.NewMemoryStore(10, 0),
		estimate.NewEstimator(fixedRand(0), clock),
		briefing.Settings{Location: ist, SalesWindow: 7, Now: clock},
	)

	app := fiber.New()
	RegisterRoutes(app, svc)
	return app, svc
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) *http.Response {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// TestLocationRequired verifies that every market endpoint rejects a blank location.
func TestLocationRequired(t *testing.T) {
	app, _ := newTestApp(t)

	for _, target := range []string{
		"/api/v1/weather",
		"/api/v1/weather?location=%20%20",
		"/api/v1/greeting",
		"/api/v1/suppliers?location=",
		"/api/v1/briefings/latest",
		"/api/v1/briefings/history?from=2024-01-01&to=2024-01-02",
	} {
		resp := doRequest(t, app, http.MethodGet, target, "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected status %d, got %d", target, http.StatusBadRequest, resp.StatusCode)
		}
	}

	resp := doRequest(t, app, http.MethodPost, "/api/v1/group-buy", `{"location":"","items":[{"name":"Tomato","currentStock":1,"pricePerUnit":40}]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("group-buy: expected status %d, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestWeatherEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/weather?location=Gandhipuram&date=2024-07-15", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body struct {
		Weather estimate.WeatherReading `json:"weather"`
	}
	decode(t, resp, &body)
	if body.Weather.Condition != estimate.ConditionRainy || body.Weather.Temperature != 25 || body.Weather.Humidity != 80 {
		t.Fatalf("unexpected weather %+v", body.Weather)
	}

	resp = doRequest(t, app, http.MethodGet, "/api/v1/weather?location=Gandhipuram&date=someday", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d for bad date, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestSuppliersEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/suppliers?location=RS%20Puram", "")
	var body struct {
		Suppliers []estimate.SupplierRecord `json:"suppliers"`
	}
	decode(t, resp, &body)

	if len(body.Suppliers) != 3 || body.Suppliers[0].Name != "Raja Wholesale" {
		t.Fatalf("unexpected suppliers %+v", body.Suppliers)
	}
}

func TestGreetingEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/greeting?location=Gandhipuram", "")
	var body struct {
		Greeting string `json:"greeting"`
	}
	decode(t, resp, &body)

	if body.Greeting != "காலை வணக்கம்! Good Morning! 🌅" {
		t.Fatalf("unexpected greeting %q", body.Greeting)
	}
}

func TestPlanEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	payload := `{"location":"Gandhipuram","dayOfWeek":3,"history":[],"weather":{"condition":"rainy","temperature":25,"humidity":88}}`
	resp := doRequest(t, app, http.MethodPost, "/api/v1/inventory/plan", payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var plan briefing.Plan
	decode(t, resp, &plan)

	want := map[string]float64{"Tomato": 1.6, "Onion": 1.6, "Potato": 3}
	for _, it := range plan.Items {
		if it.Quantity != want[it.Name] {
			t.Errorf("%s: expected %v, got %v", it.Name, want[it.Name], it.Quantity)
		}
	}
	// 1.6×40 + 1.6×35 + 3×25 = 195
	if plan.PlanCost != "₹195" {
		t.Errorf("expected ₹195, got %s", plan.PlanCost)
	}
}

func TestPlanEndpointValidation(t *testing.T) {
	app, _ := newTestApp(t)

	for name, payload := range map[string]string{
		"day out of range":  `{"location":"Gandhipuram","dayOfWeek":7}`,
		"unknown condition": `{"location":"Gandhipuram","weather":{"condition":"snowy","temperature":1}}`,
		"negative sales":    `{"location":"Gandhipuram","history":[{"items":[{"name":"Tomato","quantity":-1}]}]}`,
		"huge sales":        `{"location":"Gandhipuram","history":[{"items":[{"name":"Tomato","quantity":1e308}]}]}`,
		"bad date":          `{"location":"Gandhipuram","date":"tomorrow"}`,
		"malformed":         `{"location":`,
	} {
		resp := doRequest(t, app, http.MethodPost, "/api/v1/inventory/plan", payload)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected status %d, got %d", name, http.StatusBadRequest, resp.StatusCode)
		}
	}
}

func TestSalesFeedPlan(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/v1/sales", `{"location":"Peelamedu","record":{"items":[{"name":"Onion","quantity":5,"revenue":175}]}}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, resp.StatusCode)
	}
	var rec estimate.SalesRecord
	decode(t, resp, &rec)
	if rec.Date != "2024-01-14" || rec.TotalRevenue != 175 {
		t.Fatalf("unexpected stored record %+v", rec)
	}

	resp = doRequest(t, app, http.MethodPost, "/api/v1/sales", `{"location":"Peelamedu","record":{"items":[]}}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d for empty record, got %d", http.StatusBadRequest, resp.StatusCode)
	}

	// Sunday, cloudy 20°C: Onion 5×1.3, others 0.
	resp = doRequest(t, app, http.MethodPost, "/api/v1/inventory/plan", `{"location":"peelamedu"}`)
	var plan briefing.Plan
	decode(t, resp, &plan)
	if plan.Items[1].Name != "Onion" || plan.Items[1].Quantity != 6.5 {
		t.Fatalf("expected Onion 6.5, got %+v", plan.Items[1])
	}
	if plan.Items[0].Quantity != 0 {
		t.Fatalf("expected Tomato 0, got %v", plan.Items[0].Quantity)
	}
}

func TestGroupBuyEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	payload := `{"location":"Gandhipuram","items":[{"name":"Tomato","currentStock":15,"pricePerUnit":40}]}`
	resp := doRequest(t, app, http.MethodPost, "/api/v1/group-buy", payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}

	var body struct {
		Deals []struct {
			Supplier struct {
				Name string `json:"name"`
			} `json:"supplier"`
			Savings          int    `json:"savings"`
			TotalCost        int    `json:"totalCost"`
			SavingsFormatted string `json:"savingsFormatted"`
		} `json:"deals"`
	}
	decode(t, resp, &body)

	if len(body.Deals) != 3 {
		t.Fatalf("expected 3 deals, got %d", len(body.Deals))
	}
	// Fresh Farm Direct: 15×35 = 525, over the bulk threshold.
	best := body.Deals[0]
	if best.Supplier.Name != "Fresh Farm Direct" || best.TotalCost != 473 || best.Savings != 128 || best.SavingsFormatted != "₹128" {
		t.Fatalf("unexpected best deal %+v", best)
	}

	resp = doRequest(t, app, http.MethodPost, "/api/v1/group-buy", `{"location":"Gandhipuram","items":[]}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d for empty items, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}

func TestGroupBuyRejectsOutOfRangeItems(t *testing.T) {
	app, _ := newTestApp(t)

	for name, payload := range map[string]string{
		"huge stock": `{"location":"Gandhipuram","items":[{"name":"Tomato","currentStock":1e308,"pricePerUnit":40}]}`,
		"huge price": `{"location":"Gandhipuram","items":[{"name":"Tomato","currentStock":15,"pricePerUnit":1e308}]}`,
	} {
		resp := doRequest(t, app, http.MethodPost, "/api/v1/group-buy", payload)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: expected status %d, got %d", name, http.StatusBadRequest, resp.StatusCode)
		}
	}
}

func TestBriefingEndpoints(t *testing.T) {
	app, svc := newTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/v1/briefings/latest?location=Gandhipuram", "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status %d before generation, got %d", http.StatusNotFound, resp.StatusCode)
	}

	b, err := svc.Generate(context.Background(), "Gandhipuram")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp = doRequest(t, app, http.MethodGet, "/api/v1/briefings/latest?location=gandhipuram", "")
	var latest briefing.Briefing
	decode(t, resp, &latest)
	if latest.ID != b.ID {
		t.Fatalf("expected briefing %s, got %s", b.ID, latest.ID)
	}

	resp = doRequest(t, app, http.MethodGet, "/api/v1/briefings/history?location=Gandhipuram&from=2024-01-14&to=2024-01-15", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, resp.StatusCode)
	}
	var hist struct {
		Briefings []briefing.Briefing `json:"briefings"`
	}
	decode(t, resp, &hist)
	if len(hist.Briefings) != 1 {
		t.Fatalf("expected 1 briefing, got %d", len(hist.Briefings))
	}

	resp = doRequest(t, app, http.MethodGet, "/api/v1/briefings/history?location=Gandhipuram&from=2024-01-15&to=2024-01-14", "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status %d for inverted range, got %d", http.StatusBadRequest, resp.StatusCode)
	}
}
