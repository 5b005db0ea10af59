// This file is part of Hakka.
//
// Hakka is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hakka is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hakka.  If not, see <https://www.gnu.org/licenses/>.

package console

import (
	"github.com/hakka/hakka/prefs"
)

// Preferences for the console.
type Preferences struct {
	// text input arriving within this many milliseconds of the console
	// being made visible is discarded. this stops the key that opened the
	// console from being typed into it
	Debounce prefs.Int

	// maximum number of scroll-back lines considered for drawing each frame
	RenderLimit prefs.Int

	// number of pixels to move the viewport per unit of scroll
	ScrollMultiplier prefs.Int

	// maximum number of lines kept in the scroll-back. zero means no limit
	ScrollbackMax prefs.Int

	// prompt text drawn in front of the input line
	Leader prefs.String

	FontPath prefs.String
	FontSize prefs.Int
}

// NewPreferences creates the console preferences, set to their default
// values. If dsk is not nil then the preferences are added to it. Loading
// values from disk is left to the caller.
func NewPreferences(dsk *prefs.Disk) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if dsk == nil {
		return p, nil
	}

	if err := dsk.Add("console.debounce", &p.Debounce); err != nil {
		return nil, err
	}
	if err := dsk.Add("console.renderlimit", &p.RenderLimit); err != nil {
		return nil, err
	}
	if err := dsk.Add("console.scrollmultiplier", &p.ScrollMultiplier); err != nil {
		return nil, err
	}
	if err := dsk.Add("console.scrollbackmax", &p.ScrollbackMax); err != nil {
		return nil, err
	}
	if err := dsk.Add("console.leader", &p.Leader); err != nil {
		return nil, err
	}
	if err := dsk.Add("console.fontpath", &p.FontPath); err != nil {
		return nil, err
	}
	if err := dsk.Add("console.fontsize", &p.FontSize); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Debounce.Set(50)
	_ = p.RenderLimit.Set(200)
	_ = p.ScrollMultiplier.Set(6)
	_ = p.ScrollbackMax.Set(4096)
	_ = p.Leader.Set("hakka>")
	_ = p.FontPath.Set("assets/console.ttf")
	_ = p.FontSize.Set(18)
}
