package sim

import "testing"

func TestDimensionActiveIn(t *testing.T) {
	dims := []Dimension{DimNormal, DimMirror, DimTimeSlow, DimQuantum}

	t.Run("universal tag matches every dimension", func(t *testing.T) {
		for _, current := range dims {
			if !DimAll.ActiveIn(current) {
				t.Fatalf("DimAll.ActiveIn(%v) = false", current)
			}
		}
	})

	t.Run("specific tag matches only itself", func(t *testing.T) {
		for _, tag := range dims {
			for _, current := range dims {
				got := tag.ActiveIn(current)
				want := tag == current
				if got != want {
					t.Fatalf("%v.ActiveIn(%v) = %v, want %v", tag, current, got, want)
				}
			}
		}
	})
}

func TestDimensionNext(t *testing.T) {
	tests := []struct {
		name string
		from Dimension
		want Dimension
	}{
		{"normal to mirror", DimNormal, DimMirror},
		{"mirror to time-slow", DimMirror, DimTimeSlow},
		{"time-slow to quantum", DimTimeSlow, DimQuantum},
		{"quantum wraps to normal", DimQuantum, DimNormal},
		{"invalid resets to normal", Dimension(99), DimNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.Next(); got != tt.want {
				t.Fatalf("Next() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDimensionColorClass(t *testing.T) {
	tests := []struct {
		dim  Dimension
		want int
	}{
		{DimNormal, 0},
		{DimMirror, 1},
		{DimTimeSlow, 2},
		{DimQuantum, 3},
		{DimAll, 0},
	}
	for _, tt := range tests {
		if got := tt.dim.ColorClass(); got != tt.want {
			t.Fatalf("%v.ColorClass() = %d, want %d", tt.dim, got, tt.want)
		}
	}
}
