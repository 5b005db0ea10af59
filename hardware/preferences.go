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

package hardware

import (
	"github.com/hakka/hakka/prefs"
)

// Preferences for the running machine.
type Preferences struct {
	// number of instructions executed every frame
	Steps prefs.Int

	// target frame rate of the application
	FPS prefs.Int
}

// NewPreferences creates the machine preferences with default values. If
// dsk is not nil the preferences are added to it.
func NewPreferences(dsk *prefs.Disk) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if dsk != nil {
		if err := dsk.Add("machine.steps", &p.Steps); err != nil {
			return nil, err
		}
		if err := dsk.Add("machine.fps", &p.FPS); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.Steps.Set(20)
	_ = p.FPS.Set(60)
}
