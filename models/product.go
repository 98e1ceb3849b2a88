package models

import "time"

type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Images          []string  `json:"images,omitempty"`
	Categories      []string  `json:"categories,omitempty"`
	Rating          float64   `json:"rating"`
	Stock           int       `json:"stock"`
	SellerID        string    `json:"seller_id"`
	SellerName      string    `json:"seller_name,omitempty"`
	SellerContact   string    `json:"seller_contact,omitempty"`
	Details         string    `json:"details,omitempty"`
	Specifications  string    `json:"specifications,omitempty"`
	TechnicalInfo   string    `json:"technical_information,omitempty"`
	PriceOriginal   float64   `json:"price_original"`
	PriceDiscounted *float64  `json:"price_discounted,omitempty"`
	SizeOrType      []string  `json:"size_or_type,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// EffectivePrice is the discounted price when one is set, else the original
// price. A zero discount does not count as a discount.
func (p *Product) EffectivePrice() float64 {
	if p.PriceDiscounted != nil && *p.PriceDiscounted > 0 {
		return *p.PriceDiscounted
	}
	return p.PriceOriginal
}
