package config

import "fmt"

// ValidationError contains details about a rejected configuration.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration can drive the game.
func (c StickHeroConfig) Validate() error {
	speeds := []struct {
		name string
		v    float64
	}{
		{"stretch", c.Speeds.Stretch},
		{"turn", c.Speeds.Turn},
		{"walk", c.Speeds.Walk},
		{"transition", c.Speeds.Transition},
		{"fall", c.Speeds.Fall},
	}
	for _, s := range speeds {
		if s.v <= 0 {
			return ValidationError{
				Code:    "INVALID_SPEED",
				Message: fmt.Sprintf("speeds.%s must be positive, got %v", s.name, s.v),
			}
		}
	}

	p := c.Platforms
	if p.MinGap <= 0 || p.MaxGap < p.MinGap {
		return ValidationError{
			Code:    "INVALID_GAP_RANGE",
			Message: fmt.Sprintf("need 0 < min_gap <= max_gap, got [%v, %v]", p.MinGap, p.MaxGap),
		}
	}
	if p.MinWidth <= 0 || p.MaxWidth < p.MinWidth {
		return ValidationError{
			Code:    "INVALID_WIDTH_RANGE",
			Message: fmt.Sprintf("need 0 < min_width <= max_width, got [%v, %v]", p.MinWidth, p.MaxWidth),
		}
	}
	if p.OriginWidth <= 0 {
		return ValidationError{
			Code:    "INVALID_ORIGIN",
			Message: fmt.Sprintf("origin_width must be positive, got %v", p.OriginWidth),
		}
	}
	if p.Initial < 2 {
		return ValidationError{
			Code:    "TOO_FEW_PLATFORMS",
			Message: fmt.Sprintf("initial must be at least 2, got %d", p.Initial),
		}
	}

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 || c.Canvas.PlatformHeight <= 0 ||
		c.Canvas.PlatformHeight >= c.Canvas.Height {
		return ValidationError{
			Code:    "INVALID_CANVAS",
			Message: "canvas sizes must be positive and platform_height below height",
		}
	}
	if c.Hero.Width <= 0 || c.Hero.Height <= 0 {
		return ValidationError{
			Code:    "INVALID_HERO",
			Message: "hero width and height must be positive",
		}
	}
	// The hero must stand on the narrowest platform it can land on
	if c.Hero.EdgeOffset < 0 || c.Hero.EdgeOffset >= p.MinGap+p.MinWidth {
		return ValidationError{
			Code: "INVALID_HERO",
			Message: fmt.Sprintf("need 0 <= edge_offset < min_gap + min_width (%v), got %v",
				p.MinGap+p.MinWidth, c.Hero.EdgeOffset),
		}
	}
	if c.Rules.CameraProximity <= 0 {
		return ValidationError{
			Code:    "INVALID_RULES",
			Message: fmt.Sprintf("camera_proximity must be positive, got %v", c.Rules.CameraProximity),
		}
	}
	if c.Rules.FallMargin < 0 {
		return ValidationError{
			Code:    "INVALID_RULES",
			Message: fmt.Sprintf("fall_margin must not be negative, got %v", c.Rules.FallMargin),
		}
	}
	if c.Rules.MaxRotation < 90 || c.Rules.MaxRotation > 180 {
		return ValidationError{
			Code:    "INVALID_ROTATION",
			Message: fmt.Sprintf("max_rotation must be within [90, 180], got %v", c.Rules.MaxRotation),
		}
	}

	return nil
}
