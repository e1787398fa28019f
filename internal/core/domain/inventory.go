package domain

import (
	"errors"
	"time"
)

var ErrItemNotFound = errors.New("inventory item not found")

// InventoryItem is a stock record. Items have no owner; write access is
// restricted to admins at the route level.
type InventoryItem struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ItemName  string    `json:"itemName" bson:"item_name"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	Unit      string    `json:"unit" bson:"unit"`
	Category  string    `json:"category,omitempty" bson:"category,omitempty"`
	Location  string    `json:"location,omitempty" bson:"location,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
