package service

import "testing"

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"both zero", 0, 0, 0},
		{"zero baseline", 50, 0, 100},
		{"growth", 150, 100, 50},
		{"decline", 75, 100, -25},
		{"rounds to two decimals", 1, 3, -66.67},
		{"negative baseline", 0, -50, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PercentChange(tt.current, tt.previous); got != tt.want {
				t.Errorf("PercentChange(%v, %v) = %v, want %v", tt.current, tt.previous, got, tt.want)
			}
		})
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(25, 200); got != 12.5 {
		t.Errorf("Percent(25, 200) = %v, want 12.5", got)
	}
	if got := Percent(5, 0); got != 0 {
		t.Errorf("Percent(5, 0) = %v, want 0", got)
	}
	if got := Percent(1, 3); got != 33.33 {
		t.Errorf("Percent(1, 3) = %v, want 33.33", got)
	}
}

func TestRounding(t *testing.T) {
	if got := Round2(3.14159); got != 3.14 {
		t.Errorf("Round2(3.14159) = %v, want 3.14", got)
	}
	if got := Round1(2.45); got != 2.5 {
		t.Errorf("Round1(2.45) = %v, want 2.5", got)
	}
}

func TestComputedOccupancy(t *testing.T) {
	tests := []struct {
		reservations int64
		capacity     int64
		want         float64
	}{
		{10, 40, 25},
		{0, 40, 0},
		{3, 0, 300}, // zero capacity treated as 1
		{1, 3, 33.33},
	}

	for _, tt := range tests {
		if got := ComputedOccupancy(tt.reservations, tt.capacity); got != tt.want {
			t.Errorf("ComputedOccupancy(%d, %d) = %v, want %v", tt.reservations, tt.capacity, got, tt.want)
		}
	}
}
