package models

import "testing"

func TestEffectivePrice(t *testing.T) {
	discount := func(v float64) *float64 { return &v }

	tests := []struct {
		name       string
		original   float64
		discounted *float64
		want       float64
	}{
		{"no discount", 100, nil, 100},
		{"discount wins", 100, discount(80), 80},
		{"zero discount ignored", 100, discount(0), 100},
		{"negative discount ignored", 100, discount(-5), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{PriceOriginal: tt.original, PriceDiscounted: tt.discounted}
			if got := p.EffectivePrice(); got != tt.want {
				t.Errorf("EffectivePrice() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCartFind(t *testing.T) {
	cart := Cart{Items: []CartItem{
		{ProductID: "a", Quantity: 1},
		{ProductID: "b", Quantity: 2},
	}}

	if i := cart.Find("b"); i != 1 {
		t.Errorf("Find(b) = %d, want 1", i)
	}
	if i := cart.Find("missing"); i != -1 {
		t.Errorf("Find(missing) = %d, want -1", i)
	}
}
