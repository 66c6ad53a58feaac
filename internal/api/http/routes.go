package httpapi

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/dailycart/internal/briefing"
	"github.com/i474232898/dailycart/internal/common"
	"github.com/i474232898/dailycart/internal/estimate"
	"github.com/i474232898/dailycart/internal/store"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *briefing.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", func(c *fiber.Ctx) error {
		q, err := parseMarketQuery(c, service)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(fiber.Map{
			"location": q.Location,
			"date":     q.At,
			"weather":  service.Weather(q.market(), q.At),
		})
	})

	v1.Get("/greeting", func(c *fiber.Ctx) error {
		q, err := parseMarketQuery(c, service)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		greeting, w := service.Greeting(q.market(), q.At)
		return c.JSON(fiber.Map{
			"location": q.Location,
			"greeting": greeting,
			"weather":  w,
		})
	})

	v1.Get("/suppliers", func(c *fiber.Ctx) error {
		q, err := parseMarketQuery(c, service)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		return c.JSON(fiber.Map{
			"location":  q.Location,
			"suppliers": estimate.FindNearbySuppliers(q.Location),
		})
	})

	v1.Post("/inventory/plan", func(c *fiber.Ctx) error {
		var req planRequest
		if err := bindJSON(c, &req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		in := briefing.PlanInput{
			Market:    briefing.Market(req.Location),
			DayOfWeek: req.DayOfWeek,
			History:   req.History,
			Weather:   req.Weather,
		}
		if req.Date != "" {
			at, err := common.ParseTime(req.Date, service.Now().Location())
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			in.At = at
		}

		return c.JSON(service.Plan(in))
	})

	v1.Post("/sales", func(c *fiber.Ctx) error {
		var req salesRequest
		if err := bindJSON(c, &req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		rec := service.RecordSales(briefing.Market(req.Location), req.Record)
		return c.Status(fiber.StatusCreated).JSON(rec)
	})

	v1.Post("/group-buy", func(c *fiber.Ctx) error {
		var req groupBuyRequest
		if err := bindJSON(c, &req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		results := estimate.CalculateGroupBuySavings(estimate.FindNearbySuppliers(req.Location), req.Items)
		deals := make([]groupBuyDeal, 0, len(results))
		for _, r := range results {
			deals = append(deals, groupBuyDeal{
				GroupBuyResult:     r,
				SavingsFormatted:   estimate.FormatCurrency(float64(r.Savings)),
				TotalCostFormatted: estimate.FormatCurrency(float64(r.TotalCost)),
			})
		}

		return c.JSON(fiber.Map{
			"location": req.Location,
			"deals":    deals,
		})
	})

	v1.Get("/briefings/latest", func(c *fiber.Ctx) error {
		q, err := parseMarketQuery(c, service)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		b, err := service.Latest(q.market())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no briefing for requested location")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch briefing")
		}

		return c.JSON(b)
	})

	v1.Get("/briefings/history", func(c *fiber.Ctx) error {
		var req historyQuery
		if err := req.bind(c, service); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		briefings, err := service.Range(req.Market.market(), req.From, req.To)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "no briefings for requested range")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch briefing history")
		}

		return c.JSON(fiber.Map{
			"location":  req.Market.Location,
			"from":      req.From,
			"to":        req.To,
			"briefings": briefings,
		})
	})
}

// marketQuery holds query parameters for identifying a market and a moment.
type marketQuery struct {
	Location string `validate:"required"`
	At       time.Time
}

func (q marketQuery) market() briefing.Market {
	return briefing.Market(q.Location)
}

// parseMarketQuery reads ?location= and an optional ?date= (or ?time=).
func parseMarketQuery(c *fiber.Ctx, service *briefing.Service) (marketQuery, error) {
	var q marketQuery

	q.Location = strings.TrimSpace(c.Query("location"))
	if err := validate.Struct(q); err != nil {
		return q, err
	}

	raw := c.Query("date", c.Query("time"))
	if raw == "" {
		q.At = service.Now()
		return q, nil
	}

	at, err := common.ParseTime(raw, service.Now().Location())
	if err != nil {
		return q, err
	}
	q.At = at
	return q, nil
}

// historyQuery holds query parameters for the briefing history endpoint.
type historyQuery struct {
	Market marketQuery
	From   time.Time `validate:"required"`
	To     time.Time `validate:"required,gtefield=From"`
}

func (h *historyQuery) bind(c *fiber.Ctx, service *briefing.Service) error {
	loc := strings.TrimSpace(c.Query("location"))
	if loc == "" {
		return errors.New("location query parameter is required")
	}
	h.Market = marketQuery{Location: loc}

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" || toStr == "" {
		return errors.New("from and to query parameters are required")
	}

	zone := service.Now().Location()
	from, err := common.ParseTime(fromStr, zone)
	if err != nil {
		return err
	}
	to, err := common.ParseTime(toStr, zone)
	if err != nil {
		return err
	}

	h.From = from
	h.To = to
	return nil
}

type planRequest struct {
	Location  string                   `json:"location" validate:"required"`
	Date      string                   `json:"date"`
	DayOfWeek *int                     `json:"dayOfWeek" validate:"omitempty,min=0,max=6"`
	History   []estimate.SalesRecord   `json:"history" validate:"omitempty,dive"`
	Weather   *estimate.WeatherReading `json:"weather"`
}

type salesRequest struct {
	Location string               `json:"location" validate:"required"`
	Record   estimate.SalesRecord `json:"record"`
}

type groupBuyRequest struct {
	Location string               `json:"location" validate:"required"`
	Items    []estimate.StockItem `json:"items" validate:"required,min=1,dive"`
}

type groupBuyDeal struct {
	estimate.GroupBuyResult
	SavingsFormatted   string `json:"savingsFormatted"`
	TotalCostFormatted string `json:"totalCostFormatted"`
}

// bindJSON decodes the request body, normalizes it and validates the result.
func bindJSON(c *fiber.Ctx, req interface{ normalize() error }) error {
	if err := c.BodyParser(req); err != nil {
		return err
	}
	if err := req.normalize(); err != nil {
		return err
	}
	return validate.Struct(req)
}

func (r *planRequest) normalize() error {
	r.Location = strings.TrimSpace(r.Location)
	return nil
}

func (r *salesRequest) normalize() error {
	r.Location = strings.TrimSpace(r.Location)
	if len(r.Record.Items) == 0 {
		return errors.New("record must contain at least one item")
	}
	return nil
}

func (r *groupBuyRequest) normalize() error {
	r.Location = strings.TrimSpace(r.Location)
	return nil
}
