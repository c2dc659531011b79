package models

import "time"

// Order status values. An order starts pending and moves exactly once to a
// terminal state when the payment gateway reports the outcome.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
)

// Order is a cart snapshot taken at checkout, tracked against the payment
// gateway by CashfreeOrderID.
type Order struct {
	ID               uint        `gorm:"primaryKey" json:"-"`
	CashfreeOrderID  string      `gorm:"type:varchar(64);uniqueIndex;not null" json:"cashfreeOrderId"`
	Items            []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Total            float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Status           string      `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	PaymentSessionID string      `gorm:"type:varchar(255)" json:"paymentSessionId"`
	CreatedAt        time.Time   `gorm:"not null" json:"createdAt"`
	UpdatedAt        time.Time   `gorm:"not null" json:"updatedAt"`
}

// OrderItem is one cart line inside an order. ItemID is the menu item id the
// client submitted, not a foreign key into the menu table.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderID  uint    `gorm:"index;not null" json:"-"`
	ItemID   string  `gorm:"type:varchar(64);not null" json:"id"`
	Name     string  `gorm:"type:varchar(255);not null" json:"name"`
	Price    float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity int     `gorm:"not null" json:"quantity"`
}

// IsTerminal reports whether the order reached a final status.
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusConfirmed || o.Status == OrderStatusCancelled
}
