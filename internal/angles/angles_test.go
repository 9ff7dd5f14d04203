package angles

import (
	"errors"
	"math"
	"testing"
)

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg float64
		rad float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{360, 2 * math.Pi},
		{-90, -math.Pi / 2},
	}

	for _, tt := range tests {
		got := DegToRad(tt.deg)
		if math.Abs(got-tt.rad) > 1e-10 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.rad)
		}
	}
}

func TestRadToDegLong(t *testing.T) {
	tests := []struct {
		name string
		rad  float64
		deg  float64
	}{
		{"zero", 0, 0},
		{"quarter turn", math.Pi / 2, 90},
		{"half turn stays at 180", math.Pi, 180},
		{"past 180 wraps negative", DegToRad(270), -90},
		{"near full turn", DegToRad(359), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RadToDegLong(tt.rad)
			if math.Abs(got-tt.deg) > 1e-9 {
				t.Errorf("RadToDegLong(%v) = %v, want %v", tt.rad, got, tt.deg)
			}
		})
	}
}

func TestDegToRadLong(t *testing.T) {
	// Negative degrees normalize by +360 before converting.
	got := DegToRadLong(-90)
	want := DegToRad(270)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("DegToRadLong(-90) = %v, want %v", got, want)
	}

	// Output stays in [0, 2π) for the whole longitude range.
	for deg := -180.0; deg <= 180; deg += 15 {
		r := DegToRadLong(deg)
		if r < 0 || r >= 2*math.Pi {
			t.Errorf("DegToRadLong(%v) = %v, out of [0, 2π)", deg, r)
		}
	}
}

func TestRoundTripLongitude(t *testing.T) {
	// RadToDegLong(DegToRad(d)) ≈ d for d in (-180, 180].
	for deg := -179.5; deg <= 180; deg += 0.5 {
		got := RadToDegLong(DegToRad(deg))
		if math.Abs(got-deg) > 1e-9 {
			t.Errorf("round trip of %v° = %v°", deg, got)
		}
	}
}

func TestFloatMod(t *testing.T) {
	tests := []struct {
		a, b float64
		want float64
	}{
		{7, 3, 1},
		{-7, 3, -1},
		{7, -3, 1},
		{-7, -3, -1},
		{370, 360, 10},
		{-5, 360, -5},
		{2.5, 1, 0.5},
	}

	for _, tt := range tests {
		got := FloatMod(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("FloatMod(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFloatModProperties(t *testing.T) {
	// |result| < |b| and result ≡ a (mod b) for both operand signs.
	values := []float64{-721.25, -360, -1.5, 0.25, 5, 359.9, 1080.5}
	moduli := []float64{360, 2 * math.Pi, 7.3}

	for _, a := range values {
		for _, b := range moduli {
			r := FloatMod(a, b)
			if math.Abs(r) >= math.Abs(b) {
				t.Errorf("FloatMod(%v, %v) = %v, magnitude >= |%v|", a, b, r, b)
			}
			// (a - r) must be an integer multiple of b.
			k := (a - r) / b
			if math.Abs(k-math.Round(k)) > 1e-9 {
				t.Errorf("FloatMod(%v, %v) = %v is not congruent to a", a, b, r)
			}
		}
	}
}

func TestBoundedASin(t *testing.T) {
	if v, err := BoundedASin(0.5); err != nil || math.Abs(v-math.Asin(0.5)) > 1e-12 {
		t.Errorf("BoundedASin(0.5) = %v, %v", v, err)
	}
	if v, err := BoundedASin(1); err != nil || math.Abs(v-math.Pi/2) > 1e-12 {
		t.Errorf("BoundedASin(1) = %v, %v", v, err)
	}
	if _, err := BoundedASin(1.0000001); !errors.Is(err, ErrDomain) {
		t.Errorf("BoundedASin(1.0000001) err = %v, want ErrDomain", err)
	}
	if _, err := BoundedASin(-1.5); !errors.Is(err, ErrDomain) {
		t.Errorf("BoundedASin(-1.5) err = %v, want ErrDomain", err)
	}
}

func TestBoundedACos(t *testing.T) {
	if v, err := BoundedACos(-1); err != nil || math.Abs(v-math.Pi) > 1e-12 {
		t.Errorf("BoundedACos(-1) = %v, %v", v, err)
	}
	if _, err := BoundedACos(1.0000001); !errors.Is(err, ErrDomain) {
		t.Errorf("BoundedACos(1.0000001) err = %v, want ErrDomain", err)
	}
}
