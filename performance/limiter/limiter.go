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

// Package limiter paces a loop to a fixed rate.
//
//	lim := limiter.NewFPSLimiter(ctx, 60)
//	for {
//		lim.Wait()
//		renderFrame()
//	}
//
// The pacing is self-correcting. If one period runs long then the next is
// shortened to compensate.
package limiter

import (
	"context"
	"sync/atomic"
	"time"
)

// FPSLimiter triggers a fixed number of times per second.
type FPSLimiter struct {
	secondsPerFrame atomic.Int64
	tick            chan bool
}

// NewFPSLimiter is the preferred method of initialisation for the FPSLimiter
// type. The ticker stops when the context is cancelled.
func NewFPSLimiter(ctx context.Context, framesPerSecond int) *FPSLimiter {
	lim := &FPSLimiter{
		tick: make(chan bool),
	}
	lim.SetLimit(framesPerSecond)

	go func() {
		adjusted := lim.period()
		t := time.Now()
		for {
			select {
			case lim.tick <- true:
			case <-ctx.Done():
				return
			}

			time.Sleep(adjusted)
			nt := time.Now()

			// shorten or lengthen the next period by the error of this one
			p := lim.period()
			adjusted -= nt.Sub(t) - p
			if adjusted < 0 {
				adjusted = 0
			} else if adjusted > p*2 {
				adjusted = p
			}
			t = nt
		}
	}()

	return lim
}

func (lim *FPSLimiter) period() time.Duration {
	return time.Duration(lim.secondsPerFrame.Load())
}

// SetLimit changes the rate. Values less than one are treated as one.
func (lim *FPSLimiter) SetLimit(framesPerSecond int) {
	if framesPerSecond < 1 {
		framesPerSecond = 1
	}
	lim.secondsPerFrame.Store(int64(time.Second / time.Duration(framesPerSecond)))
}

// Wait blocks until the next trigger.
func (lim *FPSLimiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if the trigger has already happened. It does not
// block.
func (lim *FPSLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
