package models

import "time"

// OrderStatus represents all possible states of a restaurant order
type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

// Order is one line item of a checkout. All rows created by the same
// checkout share an OrderGroupID and the customer contact fields.
type Order struct {
	ID                 uint        `json:"id" gorm:"primaryKey"`
	OrderGroupID       string      `json:"order_group_id" gorm:"size:36;not null;index"`
	CustomerUsername   string      `json:"customer_username" gorm:"not null;index"`
	CustomerName       string      `json:"customer_name" gorm:"not null"`
	Address            string      `json:"address" gorm:"not null"`
	Phone              string      `json:"phone" gorm:"not null"`
	Email              string      `json:"email" gorm:"not null;index"`
	ItemName           string      `json:"item" gorm:"not null"`
	Quantity           int         `json:"quantity" gorm:"not null"`
	LineTotal          float64     `json:"total" gorm:"not null"` // snapshot price × quantity at order time
	Status             OrderStatus `json:"status" gorm:"not null;default:'Pending'"`
	Cancelled          bool        `json:"cancelled" gorm:"default:false"`
	CancellationReason string      `json:"cancellation_reason"`
	EstimatedTime      string      `json:"estimated_time"` // free text set by admin
	OrderTime          time.Time   `json:"order_time" gorm:"not null"` // UTC
}
