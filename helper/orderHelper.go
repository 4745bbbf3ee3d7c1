package helper

import (
	"errors"
	"strings"
	"time"

	"github.com/02priyeshraj/Canteen_Management_Backend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// DefaultPrepMinutes is used when no cart line resolves to a menu item.
	DefaultPrepMinutes = 5

	// CancelGraceWindow is how long after placement a customer may
	// self-cancel a pending order.
	CancelGraceWindow = 10 * time.Second
)

var (
	ErrOrderNotPending    = errors.New("order is not pending")
	ErrGraceWindowExpired = errors.New("cancellation window has expired")
	ErrInvalidOrder       = errors.New("customer name and cart are required")
)

// ValidateOrderRequest trims the customer name and rejects blank names and
// empty carts. Returns the normalized name on success.
func ValidateOrderRequest(customerName string, cartSize int) (string, error) {
	name := strings.TrimSpace(customerName)
	if name == "" || cartSize == 0 {
		return "", ErrInvalidOrder
	}
	return name, nil
}

// EstimatedCompletion returns when an order placed at now should be ready:
// the slowest item in the cart decides, with a fallback when the cart
// matched no menu items.
func EstimatedCompletion(prepTimes []int, now time.Time) time.Time {
	if len(prepTimes) == 0 {
		return now.Add(DefaultPrepMinutes * time.Minute)
	}
	maxPrep := prepTimes[0]
	for _, p := range prepTimes[1:] {
		if p > maxPrep {
			maxPrep = p
		}
	}
	return now.Add(time.Duration(maxPrep) * time.Minute)
}

// CanCancel reports whether a customer may still cancel the order.
func CanCancel(status string, orderDate, now time.Time) error {
	if status != models.StatusPending {
		return ErrOrderNotPending
	}
	if now.Sub(orderDate) > CancelGraceWindow {
		return ErrGraceWindowExpired
	}
	return nil
}

// WasLate reports whether an order was fulfilled after its estimate.
func WasLate(estimated, completed time.Time) bool {
	return completed.After(estimated)
}

// BuildArchiveRecords converts a live order and its line items into their
// archive counterparts: one CompletedOrder plus one CompletedOrderDetail per
// line item, with the late flag fixed at completion time.
func BuildArchiveRecords(order models.Order, details []models.OrderDetail, completedAt time.Time) (models.CompletedOrder, []models.CompletedOrderDetail) {
	wasLate := 0
	if WasLate(order.EstimatedCompletionTime, completedAt) {
		wasLate = 1
	}

	archived := models.CompletedOrder{
		ID:             primitive.NewObjectID(),
		Order_id:       order.Order_id,
		CustomerName:   order.CustomerName,
		TotalPrice:     order.TotalPrice,
		Order_Date:     order.Order_Date,
		CompletionTime: completedAt,
		WasLate:        wasLate,
	}

	archivedDetails := make([]models.CompletedOrderDetail, 0, len(details))
	for _, d := range details {
		archivedDetails = append(archivedDetails, models.CompletedOrderDetail{
			ID:           primitive.NewObjectID(),
			Order_id:     d.Order_id,
			ItemName:     d.ItemName,
			Quantity:     d.Quantity,
			PricePerItem: d.PricePerItem,
		})
	}

	return archived, archivedDetails
}
