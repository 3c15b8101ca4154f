package lights

import (
	"testing"

	"github.com/user/go-phong-raytracer/pkg/math"
)

func TestNewPointLight(t *testing.T) {
	position := math.NewPoint3(0, 0, 0)
	intensity := math.White

	light := NewPointLight(position, intensity)

	if !light.Position.Equals(position) {
		t.Errorf("Expected position %v, got %v", position, light.Position)
	}
	if !light.Intensity.Equals(intensity) {
		t.Errorf("Expected intensity %v, got %v", intensity, light.Intensity)
	}
}
