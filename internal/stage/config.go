package stage

import "strconv"

// Params holds the difficulty ramp and layout tunables for stage generation.
// Every "PerStage" value is added once per stage past the first.
type Params struct {
	BaseCircles     int
	CirclesPerStage int
	MaxCircles      int

	RadiusMin float64
	RadiusMax float64

	RingFillX    float64
	RingFillY    float64
	AngleJitter  float64
	RadialJitter float64

	MovingBase     float64
	MovingPerStage float64
	MovingMax      float64

	AmplitudeBase     float64
	AmplitudePerStage float64
	FrequencyBase     float64
	FrequencyPerStage float64

	PickupRatio    float64
	TargetBase     int
	TargetPerStage int
}

// Config controls the board dimensions and generation parameters.
type Config struct {
	Width  float64
	Height float64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  640,
		Height: 480,
		Params: Params{
			BaseCircles:       7,
			CirclesPerStage:   1,
			MaxCircles:        24,
			RadiusMin:         80,
			RadiusMax:         110,
			RingFillX:         0.33,
			RingFillY:         0.30,
			AngleJitter:       0.25,
			RadialJitter:      0.08,
			MovingBase:        0,
			MovingPerStage:    0.12,
			MovingMax:         0.75,
			AmplitudeBase:     10,
			AmplitudePerStage: 4,
			FrequencyBase:     0.08,
			FrequencyPerStage: 0.02,
			PickupRatio:       0.5,
			TargetBase:        3,
			TargetPerStage:    1,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	setFloat := func(key string, dst *float64, min float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= min {
				*dst = parsed
			}
		}
	}
	setInt := func(key string, dst *int, min int) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= min {
				*dst = parsed
			}
		}
	}

	setFloat("w", &c.Width, 1)
	setFloat("h", &c.Height, 1)

	p := &c.Params
	setInt("base_circles", &p.BaseCircles, 2)
	setInt("circles_per_stage", &p.CirclesPerStage, 0)
	setInt("max_circles", &p.MaxCircles, 2)
	if p.MaxCircles < p.BaseCircles {
		p.MaxCircles = p.BaseCircles
	}
	setFloat("radius_min", &p.RadiusMin, 1)
	setFloat("radius_max", &p.RadiusMax, 1)
	if p.RadiusMax < p.RadiusMin {
		p.RadiusMax = p.RadiusMin
	}
	setFloat("ring_fill_x", &p.RingFillX, 0)
	setFloat("ring_fill_y", &p.RingFillY, 0)
	setFloat("angle_jitter", &p.AngleJitter, 0)
	setFloat("radial_jitter", &p.RadialJitter, 0)
	setFloat("moving_base", &p.MovingBase, 0)
	setFloat("moving_per_stage", &p.MovingPerStage, 0)
	setFloat("moving_max", &p.MovingMax, 0)
	setFloat("amplitude_base", &p.AmplitudeBase, 0)
	setFloat("amplitude_per_stage", &p.AmplitudePerStage, 0)
	setFloat("frequency_base", &p.FrequencyBase, 0)
	setFloat("frequency_per_stage", &p.FrequencyPerStage, 0)
	setFloat("pickup_ratio", &p.PickupRatio, 0)
	setInt("target_base", &p.TargetBase, 1)
	setInt("target_per_stage", &p.TargetPerStage, 0)
	return c
}
