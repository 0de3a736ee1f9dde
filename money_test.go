package invest

import "testing"

func TestMoney_DivWhole(t *testing.T) {
	testCases := []struct {
		amount float64
		price  float64
		want   int64
	}{
		{500, 100, 5},
		{500, 150, 3},
		{500, 500, 1},
		{500, 600, 0},
		{99.99, 100, 0},
		{100.01, 100, 1},
	}
	for _, tc := range testCases {
		got := M(tc.amount, "USD").DivWhole(M(tc.price, "USD"))
		if got != tc.want {
			t.Errorf("M(%v).DivWhole(M(%v)) = %d, want %d", tc.amount, tc.price, got, tc.want)
		}
	}
}

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		m    Money
		want string
	}{
		{M(1234.56, "USD"), "$1,234.56"},
		{M(100, "EUR"), "€100.00"},
	}
	for _, tc := range testCases {
		if got := tc.m.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestMoney_ArithmeticMergesWeakCurrency(t *testing.T) {
	got := M(100, "").Add(M(50, "USD"))
	if got.Currency() != "USD" {
		t.Errorf("Add() currency = %q, want USD", got.Currency())
	}
	if !got.Equal(M(150, "USD")) {
		t.Errorf("Add() = %v, want %v", got, M(150, "USD"))
	}
}

func TestMoney_In(t *testing.T) {
	got := M(250, "").In("EUR")
	if !got.Equal(M(250, "EUR")) {
		t.Errorf("In() = %v, want %v", got, M(250, "EUR"))
	}
}
