package helper

import (
	"errors"
	"testing"
	"time"

	"github.com/02priyeshraj/Canteen_Management_Backend/models"
)

func TestValidateOrderRequest(t *testing.T) {
	tests := []struct {
		name         string
		customerName string
		cartSize     int
		wantName     string
		wantErr      error
	}{
		{
			name:         "valid order",
			customerName: "Priya",
			cartSize:     2,
			wantName:     "Priya",
			wantErr:      nil,
		},
		{
			name:         "surrounding whitespace is trimmed",
			customerName: "  Priya  ",
			cartSize:     1,
			wantName:     "Priya",
			wantErr:      nil,
		},
		{
			name:         "blank customer name",
			customerName: "",
			cartSize:     2,
			wantErr:      ErrInvalidOrder,
		},
		{
			name:         "whitespace-only customer name",
			customerName: "   ",
			cartSize:     2,
			wantErr:      ErrInvalidOrder,
		},
		{
			name:         "empty cart",
			customerName: "Priya",
			cartSize:     0,
			wantErr:      ErrInvalidOrder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateOrderRequest(tt.customerName, tt.cartSize)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateOrderRequest(%q, %d) error = %v, want %v", tt.customerName, tt.cartSize, err, tt.wantErr)
			}
			if err == nil && got != tt.wantName {
				t.Errorf("ValidateOrderRequest(%q, %d) = %q, want %q", tt.customerName, tt.cartSize, got, tt.wantName)
			}
		})
	}
}

func TestBuildArchiveRecords(t *testing.T) {
	orderDate := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	estimate := orderDate.Add(12 * time.Minute)

	order := models.Order{
		Order_id:                "68b1c2d3e4f5a6b7c8d9e0f1",
		CustomerName:            "Priya",
		TotalPrice:              90,
		OrderStatus:             models.StatusPending,
		Order_Date:              orderDate,
		EstimatedCompletionTime: estimate,
	}
	details := []models.OrderDetail{
		{Order_id: order.Order_id, ItemName: "Samosa", Quantity: 2, PricePerItem: 15},
		{Order_id: order.Order_id, ItemName: "Masala Dosa", Quantity: 1, PricePerItem: 60},
	}

	t.Run("completed on time", func(t *testing.T) {
		completedAt := estimate.Add(-time.Minute)
		archived, archivedDetails := BuildArchiveRecords(order, details, completedAt)

		if archived.WasLate != 0 {
			t.Errorf("WasLate = %d, want 0", archived.WasLate)
		}
		if archived.Order_id != order.Order_id {
			t.Errorf("Order_id = %q, want %q", archived.Order_id, order.Order_id)
		}
		if archived.CustomerName != "Priya" || archived.TotalPrice != 90 {
			t.Errorf("snapshot = (%q, %v), want (%q, %v)", archived.CustomerName, archived.TotalPrice, "Priya", 90.0)
		}
		if !archived.Order_Date.Equal(orderDate) {
			t.Errorf("Order_Date = %v, want %v", archived.Order_Date, orderDate)
		}
		if !archived.CompletionTime.Equal(completedAt) {
			t.Errorf("CompletionTime = %v, want %v", archived.CompletionTime, completedAt)
		}

		if len(archivedDetails) != len(details) {
			t.Fatalf("len(archivedDetails) = %d, want %d", len(archivedDetails), len(details))
		}
		for i, d := range archivedDetails {
			if d.Order_id != order.Order_id {
				t.Errorf("detail %d Order_id = %q, want %q", i, d.Order_id, order.Order_id)
			}
			if d.ItemName != details[i].ItemName || d.Quantity != details[i].Quantity || d.PricePerItem != details[i].PricePerItem {
				t.Errorf("detail %d = (%q, %d, %v), want (%q, %d, %v)",
					i, d.ItemName, d.Quantity, d.PricePerItem,
					details[i].ItemName, details[i].Quantity, details[i].PricePerItem)
			}
		}
	})

	t.Run("completed late", func(t *testing.T) {
		archived, _ := BuildArchiveRecords(order, details, estimate.Add(time.Minute))
		if archived.WasLate != 1 {
			t.Errorf("WasLate = %d, want 1", archived.WasLate)
		}
	})

	t.Run("no line items yields no detail rows", func(t *testing.T) {
		_, archivedDetails := BuildArchiveRecords(order, nil, estimate)
		if len(archivedDetails) != 0 {
			t.Errorf("len(archivedDetails) = %d, want 0", len(archivedDetails))
		}
	})
}

func TestEstimatedCompletion(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		prepTimes []int
		want      time.Time
	}{
		{
			name:      "slowest item wins",
			prepTimes: []int{5, 12},
			want:      now.Add(12 * time.Minute),
		},
		{
			name:      "single item",
			prepTimes: []int{8},
			want:      now.Add(8 * time.Minute),
		},
		{
			name:      "no matched items falls back to default",
			prepTimes: nil,
			want:      now.Add(5 * time.Minute),
		},
		{
			name:      "zero preparation time is honored",
			prepTimes: []int{0},
			want:      now,
		},
		{
			name:      "order of prep times does not matter",
			prepTimes: []int{12, 5, 3},
			want:      now.Add(12 * time.Minute),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimatedCompletion(tt.prepTimes, now)
			if !got.Equal(tt.want) {
				t.Errorf("EstimatedCompletion(%v) = %v, want %v", tt.prepTimes, got, tt.want)
			}
		})
	}
}

func TestCanCancel(t *testing.T) {
	now := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		status    string
		orderDate time.Time
		wantErr   error
	}{
		{
			name:      "pending inside grace window",
			status:    models.StatusPending,
			orderDate: now.Add(-3 * time.Second),
			wantErr:   nil,
		},
		{
			name:      "pending exactly at window edge",
			status:    models.StatusPending,
			orderDate: now.Add(-10 * time.Second),
			wantErr:   nil,
		},
		{
			name:      "pending after window",
			status:    models.StatusPending,
			orderDate: now.Add(-11 * time.Second),
			wantErr:   ErrGraceWindowExpired,
		},
		{
			name:      "completed order",
			status:    models.StatusCompleted,
			orderDate: now.Add(-3 * time.Second),
			wantErr:   ErrOrderNotPending,
		},
		{
			name:      "already cancelled",
			status:    models.StatusCancelled,
			orderDate: now.Add(-3 * time.Second),
			wantErr:   ErrOrderNotPending,
		},
		{
			name:      "non-pending outside window still reports status first",
			status:    models.StatusCompleted,
			orderDate: now.Add(-1 * time.Hour),
			wantErr:   ErrOrderNotPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanCancel(tt.status, tt.orderDate, now)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CanCancel(%q) error = %v, want %v", tt.status, err, tt.wantErr)
			}
		})
	}
}

func TestWasLate(t *testing.T) {
	estimate := time.Date(2025, 9, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		completed time.Time
		want      bool
	}{
		{"completed before estimate", estimate.Add(-5 * time.Minute), false},
		{"completed exactly on time", estimate, false},
		{"completed after estimate", estimate.Add(time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WasLate(estimate, tt.completed); got != tt.want {
				t.Errorf("WasLate(%v, %v) = %v, want %v", estimate, tt.completed, got, tt.want)
			}
		})
	}
}
