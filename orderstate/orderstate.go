package orderstate

import (
	"errors"
	"strings"

	"restaurant-orders/models"
)

// Statuses is the authoritative list of order states an admin may assign.
var Statuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
	models.StatusCancelled,
}

// Build a lookup set for O(1) validation
var statusSet = func() map[models.OrderStatus]bool {
	m := make(map[models.OrderStatus]bool, len(Statuses))
	for _, s := range Statuses {
		m[s] = true
	}
	return m
}()

// ValidStatus reports whether s is one of the fixed order states.
func ValidStatus(s models.OrderStatus) bool {
	return statusSet[s]
}

// Terminal reports whether a line can no longer be cancelled: it was
// either cancelled already or has been delivered.
func Terminal(o models.Order) bool {
	return o.Cancelled || o.Status == models.StatusDelivered
}

// GroupCancellable reports whether cancellation may be offered for a
// group of lines: at least one line must still be active and undelivered.
func GroupCancellable(rows []models.Order) bool {
	for _, o := range rows {
		if !Terminal(o) {
			return true
		}
	}
	return false
}

// ReasonOther is the reason choice that requires free-text detail.
const ReasonOther = "Other (please specify)"

// CancellationReasons is the fixed list a customer picks from.
var CancellationReasons = []string{
	"Ordered by mistake",
	"Expected delivery time is too long",
	"Found a better price elsewhere",
	"Changed my mind",
	"Items unavailable",
	"Duplicate order",
	ReasonOther,
}

var reasonSet = func() map[string]bool {
	m := make(map[string]bool, len(CancellationReasons))
	for _, r := range CancellationReasons {
		m[r] = true
	}
	return m
}()

var ErrReasonRequired = errors.New("a valid cancellation reason is required")

// ResolveReason turns the submitted reason selection into the final
// reason text. Choosing ReasonOther requires non-blank free text.
func ResolveReason(selected, other string) (string, error) {
	if !reasonSet[selected] {
		return "", ErrReasonRequired
	}
	if selected != ReasonOther {
		return selected, nil
	}
	other = strings.TrimSpace(other)
	if other == "" {
		return "", ErrReasonRequired
	}
	return other, nil
}
