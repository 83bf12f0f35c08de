package cosmology

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	apperrors "github.com/agbru/cosmocalc/internal/errors"
	"github.com/agbru/cosmocalc/internal/quad"
)

// TestNew_DerivedQuantities tests ΩK and Hubble distance derivation.
func TestNew_DerivedQuantities(t *testing.T) {
	t.Run("defaults are flat", func(t *testing.T) {
		c := New()
		if c.MatterDensity() != 0.3 || c.LambdaDensity() != 0.7 || c.HubbleParameter() != 0.7 {
			t.Errorf("defaults = (%v, %v, %v)", c.MatterDensity(), c.LambdaDensity(), c.HubbleParameter())
		}
		if math.Abs(c.CurvatureDensity()) > 1e-15 {
			t.Errorf("CurvatureDensity() = %v, want 0 for flat defaults", c.CurvatureDensity())
		}
		if math.Abs(c.HubbleDistance()-3000.0/0.7) > 1e-12 {
			t.Errorf("HubbleDistance() = %v, want %v", c.HubbleDistance(), 3000.0/0.7)
		}
	})

	t.Run("open universe", func(t *testing.T) {
		c := New(WithMatterDensity(0.2), WithLambdaDensity(0.5), WithHubbleParameter(0.65))
		if math.Abs(c.CurvatureDensity()-0.3) > 1e-15 {
			t.Errorf("CurvatureDensity() = %v, want 0.3", c.CurvatureDensity())
		}
		if math.Abs(c.HubbleDistance()-3000.0/0.65) > 1e-12 {
			t.Errorf("HubbleDistance() = %v, want %v", c.HubbleDistance(), 3000.0/0.65)
		}
	})
}

// TestE_ReferenceValues checks the expansion rate against precomputed values
// for the default flat cosmology.
func TestE_ReferenceValues(t *testing.T) {
	c := New()

	tests := []struct {
		z    float64
		want float64
	}{
		{0.0, 1.0},
		{0.1, 1.048475083156486},
		{0.5, 1.3086252328302401},
		{1.0, 1.7606816861659007},
	}

	for _, tt := range tests {
		got := c.E(tt.z)
		if math.Abs(got-tt.want) > 1e-13 {
			t.Errorf("E(%g) = %.16g, want %.16g", tt.z, got, tt.want)
		}
	}
}

// TestInvE tests the reciprocal relation.
func TestInvE(t *testing.T) {
	c := New()
	for _, z := range []float64{0, 0.25, 0.5, 1, 2, 5} {
		if got, want := c.InvE(z), 1/c.E(z); got != want {
			t.Errorf("InvE(%g) = %v, want %v", z, got, want)
		}
	}
}

// TestComovingDistance_ReferenceValue checks D_C(0, 1) against the
// precomputed value for the default flat cosmology, with every scheme.
func TestComovingDistance_ReferenceValue(t *testing.T) {
	const want = 3306.1159989763337

	c := New()
	for _, integ := range quad.NewDefaultFactory().GetAll() {
		t.Run(integ.Name(), func(t *testing.T) {
			got, err := c.ComovingDistanceWith(context.Background(), integ, 0, 1, nil, quad.Options{})
			if err != nil {
				t.Fatalf("ComovingDistanceWith: %v", err)
			}
			if math.Abs(got-want) > 1e-6 {
				t.Errorf("D_C(0, 1) = %.10f, want %.10f", got, want)
			}
		})
	}
}

// TestComovingDistance_OrderingViolation tests the z2 > z1 contract.
func TestComovingDistance_OrderingViolation(t *testing.T) {
	c := New()

	tests := []struct {
		name   string
		z1, z2 float64
	}{
		{"reversed bounds", 1, 0},
		{"equal bounds", 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.ComovingDistance(context.Background(), tt.z1, tt.z2)
			if err == nil {
				t.Fatal("expected an error")
			}

			var vErr apperrors.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("err = %T, want ValidationError", err)
			}
			if !strings.Contains(err.Error(), "z2 must be greater than z1") {
				t.Errorf("message = %q, should contain the ordering contract", err.Error())
			}
		})
	}
}

// TestComovingDistance_Canceled tests context propagation through the
// quadrature call.
func TestComovingDistance_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().ComovingDistance(ctx, 0, 1)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}

	var calcErr apperrors.CalculationError
	if !errors.As(err, &calcErr) {
		t.Errorf("err = %T, want CalculationError wrapping the cause", err)
	}
}

// TestAngularDiameterDistance_NotImplemented tests the deliberate stub.
func TestAngularDiameterDistance_NotImplemented(t *testing.T) {
	_, err := New().AngularDiameterDistance(context.Background(), 0, 1)

	var niErr apperrors.NotImplementedError
	if !errors.As(err, &niErr) {
		t.Fatalf("err = %T, want NotImplementedError", err)
	}
	if niErr.Operation != "angular diameter distance" {
		t.Errorf("Operation = %q", niErr.Operation)
	}
}

// TestComovingDistance_NonZeroLowerBound checks consistency between a direct
// integration and a difference of distances from zero.
func TestComovingDistance_NonZeroLowerBound(t *testing.T) {
	c := New()
	ctx := context.Background()

	direct, err := c.ComovingDistance(ctx, 0.5, 1.5)
	if err != nil {
		t.Fatalf("direct: %v", err)
	}
	toUpper, err := c.ComovingDistance(ctx, 0, 1.5)
	if err != nil {
		t.Fatalf("toUpper: %v", err)
	}
	toLower, err := c.ComovingDistance(ctx, 0, 0.5)
	if err != nil {
		t.Fatalf("toLower: %v", err)
	}

	if diff := math.Abs(direct - (toUpper - toLower)); diff > 1e-7 {
		t.Errorf("D(0.5,1.5) = %v but D(0,1.5)-D(0,0.5) = %v (diff %g)", direct, toUpper-toLower, diff)
	}
}
