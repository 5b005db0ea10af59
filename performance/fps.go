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

package performance

import (
	"time"
)

// CalcFPS takes the number of frames and the duration and returns the
// frames-per-second and the accuracy of that value, as a percentage of the
// target rate.
func CalcFPS(numFrames int, duration time.Duration, target int) (fps float64, accuracy float64) {
	if duration <= 0 || target <= 0 {
		return 0, 0
	}
	fps = float64(numFrames) / duration.Seconds()
	accuracy = 100 * fps / float64(target)
	return fps, accuracy
}

// Meter counts frames and reports the frame rate over the measured period.
type Meter struct {
	start  time.Time
	frames int
}

// NewMeter starts a new measurement.
func NewMeter(now time.Time) *Meter {
	return &Meter{start: now}
}

// Frame records the completion of a frame.
func (m *Meter) Frame() {
	m.frames++
}

// Measure returns the frame rate since the meter was started.
func (m *Meter) Measure(now time.Time, target int) (fps float64, accuracy float64) {
	return CalcFPS(m.frames, now.Sub(m.start), target)
}
