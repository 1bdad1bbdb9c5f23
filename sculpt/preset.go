// Copyright 2025 Sculptkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sculpt

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/sculptkit/core/math32"
)

// Preset is one named brush configuration, as stored in a TOML preset
// table. Tint is RGB in [0, 1].
type Preset struct {
	Mode      string     `toml:"mode"`
	Radius    float32    `toml:"radius"`
	Intensity float32    `toml:"intensity"`
	Tint      [3]float32 `toml:"tint"`
	Negative  bool       `toml:"negative"`
	Symmetry  bool       `toml:"symmetry"`
}

// Presets is a collection of named brush presets. The TOML form is one
// table per preset:
//
//	[clay]
//	mode = "sculpt"
//	radius = 0.3
//	intensity = 0.5
//	tint = [0.8, 0.56, 0.42]
type Presets map[string]Preset

// ReadPresets decodes TOML presets from r.
func ReadPresets(r io.Reader) (Presets, error) {
	ps := Presets{}
	if err := toml.NewDecoder(r).Decode(&ps); err != nil {
		return nil, fmt.Errorf("sculpt: reading presets: %w", err)
	}
	return ps, nil
}

// OpenPresets reads TOML presets from the given file.
func OpenPresets(filename string) (Presets, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("sculpt: opening presets: %w", err)
	}
	defer f.Close()
	return ReadPresets(f)
}

// ModeByName returns the [Mode] with the given lowercase name, erroring on
// an unknown name.
func ModeByName(name string) (Mode, error) {
	for i, nm := range modeNames {
		if nm == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("sculpt: unknown brush mode %q", name)
}

// Apply configures the brush from the preset, between strokes. Radius and
// intensity pass through the clamping setters, so a file with degenerate
// values still yields a usable brush; an unknown mode name is an error and
// leaves the brush unchanged.
func (p Preset) Apply(br *Brush) error {
	md, err := ModeByName(p.Mode)
	if err != nil {
		return err
	}
	br.SetMode(md).
		SetRadius(p.Radius).
		SetIntensity(p.Intensity).
		SetTint(math32.Vec3(p.Tint[0], p.Tint[1], p.Tint[2])).
		SetNegative(p.Negative).
		SetSymmetry(p.Symmetry)
	return nil
}
