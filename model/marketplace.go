package model

import "time"

// MarketplaceItem is a listing. SellerName/SellerEmail are snapshots of the
// owner's identity at creation time. IsOwner is computed per response and
// never stored.
type MarketplaceItem struct {
	ID          uint64     `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Price       float64    `db:"price" json:"price"`
	Image       string     `db:"image" json:"image"`
	Condition   string     `db:"item_condition" json:"condition"`
	Category    string     `db:"category" json:"category"`
	SellerPhone string     `db:"seller_phone" json:"sellerPhone"`
	UserID      uint64     `db:"user_id" json:"userId"`
	SellerName  string     `db:"seller_name" json:"sellerName"`
	SellerEmail string     `db:"seller_email" json:"sellerEmail"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt   *time.Time `db:"updated_at" json:"updatedAt,omitempty"`
	IsOwner     bool       `db:"-" json:"isOwner"`
}

type MarketplaceItemRequest struct {
	Title       string   `json:"title" validate:"required,min=3,max=100"`
	Description string   `json:"description" validate:"required,min=10,max=1000"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Image       string   `json:"image" validate:"required,url"`
	Condition   string   `json:"condition" validate:"omitempty,oneof=New 'Like New' Good Fair Poor"`
	Category    string   `json:"category" validate:"omitempty,oneof=textbooks electronics clothing furniture other"`
	SellerPhone string   `json:"sellerPhone" validate:"required,min=10,max=15,phone_number"`
}

type ItemResponse struct {
	Message string          `json:"message"`
	Item    MarketplaceItem `json:"item"`
}
