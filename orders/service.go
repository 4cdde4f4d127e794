package orders

import (
	"errors"
	"strings"
	"time"

	"restaurant-orders/cart"
	"restaurant-orders/catalog"
	"restaurant-orders/models"
	"restaurant-orders/orderstate"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact holds the customer fields captured at checkout. Every row of
// the order group stores a copy.
type Contact struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

func (ct *Contact) trim() {
	ct.Name = strings.TrimSpace(ct.Name)
	ct.Address = strings.TrimSpace(ct.Address)
	ct.Phone = strings.TrimSpace(ct.Phone)
	ct.Email = strings.TrimSpace(ct.Email)
}

func (ct Contact) complete() bool {
	return ct.Name != "" && ct.Address != "" && ct.Phone != "" && ct.Email != ""
}

// Checkout snapshots the cart against the catalog and persists one Order
// row per line, all sharing a fresh group id, as a single transaction.
// Cart entries that no longer resolve against the catalog are skipped.
// Nothing is written when validation fails.
func Checkout(db *gorm.DB, cat catalog.Catalog, username string, contact Contact, crt cart.Cart) (*Receipt, error) {
	lines, total := crt.Snapshot(cat)
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	contact.trim()
	if !contact.complete() {
		return nil, ErrContactRequired
	}

	groupID := uuid.NewString()
	now := time.Now().UTC()

	rows := make([]models.Order, 0, len(lines))
	receiptItems := make([]ReceiptLine, 0, len(lines))
	for _, ln := range lines {
		rows = append(rows, models.Order{
			OrderGroupID:     groupID,
			CustomerUsername: username,
			CustomerName:     contact.Name,
			Address:          contact.Address,
			Phone:            contact.Phone,
			Email:            contact.Email,
			ItemName:         ln.Item.Name,
			Quantity:         ln.Quantity,
			LineTotal:        ln.Subtotal,
			Status:           models.StatusPending,
			Cancelled:        false,
			OrderTime:        now,
		})
		receiptItems = append(receiptItems, ReceiptLine{
			Name:      ln.Item.Name,
			Quantity:  ln.Quantity,
			UnitPrice: ln.Item.Price,
			Subtotal:  ln.Subtotal,
		})
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	return &Receipt{
		OrderGroupID: groupID,
		CustomerName: contact.Name,
		Address:      contact.Address,
		Phone:        contact.Phone,
		Email:        contact.Email,
		Items:        receiptItems,
		Total:        total,
	}, nil
}

// FindGroup returns every row of an order group.
func FindGroup(db *gorm.DB, groupID string) ([]models.Order, error) {
	var rows []models.Order
	err := db.Where("order_group_id = ?", groupID).Find(&rows).Error
	return rows, err
}

// Track fetches the rows matching both group id and email, plus whether
// cancellation should be offered. An empty result is not an error.
func Track(db *gorm.DB, groupID, email string) ([]models.Order, bool, error) {
	var rows []models.Order
	err := db.Where("order_group_id = ? AND email = ?", groupID, email).Find(&rows).Error
	if err != nil {
		return nil, false, err
	}
	return rows, orderstate.GroupCancellable(rows), nil
}

// GroupForCustomer fetches a group's rows owned by the given customer.
// Ownership is the session identity, not the tracking email.
func GroupForCustomer(db *gorm.DB, groupID, username string) ([]models.Order, error) {
	var rows []models.Order
	err := db.Where("order_group_id = ? AND customer_username = ?", groupID, username).Find(&rows).Error
	return rows, err
}

// CancelGroup cancels every row of a customer's order group with the
// resolved reason. Rejected when no rows match or none is still active.
func CancelGroup(db *gorm.DB, groupID, username, selectedReason, otherReason string) error {
	rows, err := GroupForCustomer(db, groupID, username)
	if err != nil {
		return err
	}
	if len(rows) == 0 || !orderstate.GroupCancellable(rows) {
		return ErrNotCancellable
	}
	reason, err := orderstate.ResolveReason(selectedReason, otherReason)
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&models.Order{}).
			Where("order_group_id = ? AND customer_username = ?", groupID, username).
			Updates(map[string]interface{}{
				"cancelled":           true,
				"status":              models.StatusCancelled,
				"cancellation_reason": reason,
			}).Error
	})
}

// FindOrder fetches a single row by primary key.
func FindOrder(db *gorm.DB, orderID uint) (*models.Order, error) {
	var order models.Order
	if err := db.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

// UpdateStatus sets a single row's status. The status must be one of the
// fixed states. Sibling rows of the group are left untouched; only
// cancellation cascades.
func UpdateStatus(db *gorm.DB, orderID uint, status models.OrderStatus) (*models.Order, error) {
	if !orderstate.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	order, err := FindOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if err := db.Model(order).Update("status", status).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// UpdateEstimatedTime assigns the admin's free-text delivery estimate to
// a single row.
func UpdateEstimatedTime(db *gorm.DB, orderID uint, text string) (*models.Order, error) {
	order, err := FindOrder(db, orderID)
	if err != nil {
		return nil, err
	}
	if err := db.Model(order).Update("estimated_time", strings.TrimSpace(text)).Error; err != nil {
		return nil, err
	}
	return order, nil
}

// List returns all rows, newest order first.
func List(db *gorm.DB) ([]models.Order, error) {
	var rows []models.Order
	err := db.Order("order_time desc").Find(&rows).Error
	return rows, err
}
