package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type checkoutForm struct {
	CustomerName  string `json:"customerName" validate:"required,min=2,max=120"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone" validate:"nullable,min=7,max=20"`
	DeliveryType  string `json:"deliveryType" validate:"required,in=delivery,pickup"`
	Address       string `json:"address" validate:"nullable,max=255"`
}

func TestStructCheckoutForm(t *testing.T) {
	tests := []struct {
		name    string
		form    checkoutForm
		wantErr map[string]string
	}{
		{
			name: "valid delivery order",
			form: checkoutForm{
				CustomerName:  "Pam Lee",
				CustomerEmail: "pam@example.com",
				DeliveryType:  "delivery",
				Address:       "12 Baker Street",
			},
			wantErr: map[string]string{},
		},
		{
			name: "valid pickup without optional fields",
			form: checkoutForm{
				CustomerName:  "Jo",
				CustomerEmail: "jo@bakery.co.za",
				DeliveryType:  "pickup",
			},
			wantErr: map[string]string{},
		},
		{
			name: "missing required fields",
			form: checkoutForm{},
			wantErr: map[string]string{
				"customerName":  "The customerName field is required.",
				"customerEmail": "The customerEmail field is required.",
				"deliveryType":  "The deliveryType field is required.",
			},
		},
		{
			name: "invalid email",
			form: checkoutForm{
				CustomerName:  "Pam Lee",
				CustomerEmail: "not-an-email",
				DeliveryType:  "pickup",
			},
			wantErr: map[string]string{
				"customerEmail": "The customerEmail must be a valid email address.",
			},
		},
		{
			name: "delivery type outside allowed set",
			form: checkoutForm{
				CustomerName:  "Pam Lee",
				CustomerEmail: "pam@example.com",
				DeliveryType:  "courier",
			},
			wantErr: map[string]string{
				"deliveryType": "The selected deliveryType is invalid.",
			},
		},
		{
			name: "name too short",
			form: checkoutForm{
				CustomerName:  "P",
				CustomerEmail: "pam@example.com",
				DeliveryType:  "pickup",
			},
			wantErr: map[string]string{
				"customerName": "The customerName must be at least 2 characters.",
			},
		},
		{
			name: "nullable phone validated when present",
			form: checkoutForm{
				CustomerName:  "Pam Lee",
				CustomerEmail: "pam@example.com",
				CustomerPhone: "123",
				DeliveryType:  "pickup",
			},
			wantErr: map[string]string{
				"customerPhone": "The customerPhone must be at least 7 characters.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Struct(tt.form)
			assert.Equal(t, tt.wantErr, errs)
		})
	}
}

func TestStructNumericRules(t *testing.T) {
	type priceForm struct {
		Price string `json:"price" validate:"required,decimal"`
		Qty   int    `json:"qty" validate:"required,gte=1,lte=50"`
	}

	tests := []struct {
		name    string
		form    priceForm
		wantKey string
	}{
		{"valid", priceForm{Price: "450.00", Qty: 2}, ""},
		{"whole amount", priceForm{Price: "25", Qty: 1}, ""},
		{"three decimal places", priceForm{Price: "25.005", Qty: 1}, "price"},
		{"negative amount", priceForm{Price: "-5.00", Qty: 1}, "price"},
		{"qty below range", priceForm{Price: "25.00", Qty: 0}, "qty"},
		{"qty above range", priceForm{Price: "25.00", Qty: 51}, "qty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Struct(tt.form)
			if tt.wantKey == "" {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, tt.wantKey)
			}
		})
	}
}

func TestSplitRulesKeepsInParams(t *testing.T) {
	got := splitRules("required,in=delivery,pickup,max=20")
	assert.Equal(t, []string{"required", "in=delivery,pickup", "max=20"}, got)
}
