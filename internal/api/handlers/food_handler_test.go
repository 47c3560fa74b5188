package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Aamirnihanms/RestuarentFoodOrder/domain"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/food"
	"github.com/Aamirnihanms/RestuarentFoodOrder/pkg/user"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type fakeFoodService struct {
	food.FoodService
	added *domain.AddFoodRequest
}

func (f *fakeFoodService) AddFood(ctx context.Context, req domain.AddFoodRequest) (domain.FoodResponse, error) {
	f.added = &req
	return domain.FoodResponse{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
	}, nil
}

type fakeUserService struct {
	user.UserService
}

type fakeAuditService struct {
	entries []domain.AuditEntry
}

func (f *fakeAuditService) Record(entry domain.AuditEntry) {
	f.entries = append(f.entries, entry)
}

func (f *fakeAuditService) GetLogs(ctx context.Context, page, limit int) ([]domain.AuditLogResponse, int64, error) {
	return nil, 0, nil
}

func newTestApp() (*fiber.App, *fakeFoodService, *fakeAuditService) {
	foodService := &fakeFoodService{}
	auditService := &fakeAuditService{}
	handler := NewFoodHandler(foodService, &fakeUserService{}, auditService, validator.New())

	app := fiber.New()
	app.Post("/api/foods", handler.AddFood)
	return app, foodService, auditService
}

func TestAddFoodHandlerRejectsMissingPrice(t *testing.T) {
	app, foodService, _ := newTestApp()

	body, _ := json.Marshal(map[string]interface{}{
		"name":        "Veg Burger",
		"description": "Grilled patty with lettuce",
		"category":    "Burgers",
	})
	req := httptest.NewRequest("POST", "/api/foods", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("got status %d, want 400", resp.StatusCode)
	}
	if foodService.added != nil {
		t.Error("service invoked despite failed validation")
	}
}

func TestAddFoodHandlerCreates(t *testing.T) {
	app, foodService, auditService := newTestApp()

	body, _ := json.Marshal(map[string]interface{}{
		"name":        "Veg Burger",
		"description": "Grilled patty with lettuce",
		"category":    "Burgers",
		"price":       120.0,
	})
	req := httptest.NewRequest("POST", "/api/foods", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test returned error: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Errorf("got status %d, want 201", resp.StatusCode)
	}
	if foodService.added == nil || foodService.added.Price != 120 {
		t.Errorf("service request mismatch: %+v", foodService.added)
	}
	if len(auditService.entries) != 1 || auditService.entries[0].Action != "Add Food" {
		t.Errorf("audit entries mismatch: %+v", auditService.entries)
	}
}
