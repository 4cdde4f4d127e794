package orders

import (
	"time"

	"restaurant-orders/models"
)

// DeliveryLeadTime is added to the order time to estimate delivery.
const DeliveryLeadTime = 50 * time.Minute

// ReceiptLine is one item of a just-completed checkout.
type ReceiptLine struct {
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`
}

// Receipt is the transient summary of a checkout. It is stored in the
// session and consumed on first view.
type Receipt struct {
	OrderGroupID string        `json:"order_group_id"`
	CustomerName string        `json:"customer_name"`
	Address      string        `json:"address"`
	Phone        string        `json:"phone"`
	Email        string        `json:"email"`
	Items        []ReceiptLine `json:"items"`
	Total        float64       `json:"total_price"`
}

// DeliveryEstimate converts the earliest order time of a group from UTC
// to the given local zone and adds the delivery lead time. rows must be
// non-empty. A nil location means the zone could not be loaded; the
// stored instant is then treated as already local.
func DeliveryEstimate(rows []models.Order, loc *time.Location) time.Time {
	earliest := rows[0].OrderTime
	for _, o := range rows[1:] {
		if o.OrderTime.Before(earliest) {
			earliest = o.OrderTime
		}
	}
	if loc != nil {
		earliest = earliest.In(loc)
	}
	return earliest.Add(DeliveryLeadTime)
}
