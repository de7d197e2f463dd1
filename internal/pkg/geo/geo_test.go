package geo

import (
	"math"
	"testing"
)

func TestHaversine(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64 // meters
		tolerance              float64
	}{
		{"same point", -6.2, 106.8, -6.2, 106.8, 0, 0.001},
		{"jakarta to surabaya", -6.2088, 106.8456, -7.2575, 112.7521, 663000, 10000},
		{"one degree latitude", 0, 0, 1, 0, 111195, 100},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Haversine(c.lat1, c.lon1, c.lat2, c.lon2)
			if math.Abs(got-c.want) > c.tolerance {
				t.Errorf("Haversine() = %.2f, want %.2f (±%.2f)", got, c.want, c.tolerance)
			}
		})
	}
}

func TestValidateGeofence(t *testing.T) {
	office := &Point{Latitude: -6.2088, Longitude: 106.8456}

	t.Run("within radius", func(t *testing.T) {
		reported := &Point{Latitude: -6.2090, Longitude: 106.8458}
		within, distance, err := ValidateGeofence(reported, office, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !within {
			t.Errorf("expected within=true at distance %.2fm", distance)
		}
	})

	t.Run("outside radius", func(t *testing.T) {
		reported := &Point{Latitude: -6.3000, Longitude: 106.9000}
		within, distance, err := ValidateGeofence(reported, office, 100)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if within {
			t.Errorf("expected within=false at distance %.2fm", distance)
		}
	})

	t.Run("fails closed without office location", func(t *testing.T) {
		reported := &Point{Latitude: -6.2088, Longitude: 106.8456}
		within, _, err := ValidateGeofence(reported, nil, 100)
		if err != ErrNoOfficeLocation {
			t.Errorf("expected ErrNoOfficeLocation, got %v", err)
		}
		if within {
			t.Error("missing office location must not validate as within")
		}
	})

	t.Run("missing reported coordinates", func(t *testing.T) {
		_, _, err := ValidateGeofence(nil, office, 100)
		if err != ErrLocationRequired {
			t.Errorf("expected ErrLocationRequired, got %v", err)
		}
	})
}
