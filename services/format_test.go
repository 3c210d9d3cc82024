package services

import "testing"

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		symbol string
		expect string
	}{
		{"zero", 0, "$", "$0.00"},
		{"small integer", 5, "$", "$5.00"},
		{"with decimals", 42.50, "$", "$42.50"},
		{"hundreds", 999.99, "$", "$999.99"},
		{"thousands", 1234.56, "$", "$1,234.56"},
		{"ten thousands", 12345.00, "$", "$12,345.00"},
		{"hundred thousands", 123456.78, "$", "$123,456.78"},
		{"millions", 1234567.89, "$", "$1,234,567.89"},
		{"negative", -100.00, "$", "-$100.00"},
		{"negative large", -250000.50, "$", "-$250,000.50"},
		{"euro symbol", 1000, "€", "€1,000.00"},
		{"rounding up at presentation", 10.006, "$", "$10.01"},
		{"exact thousand boundary", 1000, "$", "$1,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatMoney(tt.amount, tt.symbol)
			if got != tt.expect {
				t.Errorf("FormatMoney(%v, %q) = %q, want %q", tt.amount, tt.symbol, got, tt.expect)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		input  string
		expect string
	}{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"123456", "123,456"},
		{"1234567", "1,234,567"},
		{"1000000000", "1,000,000,000"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := groupThousands(tt.input); got != tt.expect {
				t.Errorf("groupThousands(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatHours(t *testing.T) {
	tests := []struct {
		input  float64
		expect string
	}{
		{0, "0 h"},
		{8, "8 h"},
		{37.5, "37.5 h"},
		{120, "120 h"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			if got := FormatHours(tt.input); got != tt.expect {
				t.Errorf("FormatHours(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
