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

package sdlplay

import (
	"github.com/hakka/hakka/prefs"
)

// Preferences for the SDL front end.
type Preferences struct {
	// sound played when a console command is committed. the empty string
	// means no sound
	CommitSound prefs.String

	// image used for the ship. a triangle is drawn if the image cannot be
	// loaded
	ShipImage prefs.String
}

// NewPreferences creates the front end preferences with default values. If
// dsk is not nil the preferences are added to it.
func NewPreferences(dsk *prefs.Disk) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	if dsk != nil {
		if err := dsk.Add("sfx.commit", &p.CommitSound); err != nil {
			return nil, err
		}
		if err := dsk.Add("ship.image", &p.ShipImage); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	_ = p.CommitSound.Set("assets/commit.wav")
	_ = p.ShipImage.Set("assets/ship.png")
}
