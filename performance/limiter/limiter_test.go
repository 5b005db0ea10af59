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

package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/hakka/hakka/performance/limiter"
	"github.com/hakka/hakka/test"
)

func TestLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lim := limiter.NewFPSLimiter(ctx, 100)

	start := time.Now()
	for range 20 {
		lim.Wait()
	}
	elapsed := time.Since(start)

	// twenty frames at 100fps is about 200ms. the first frame is immediate
	test.ExpectSuccess(t, elapsed >= 150*time.Millisecond)
	test.ExpectSuccess(t, elapsed < 2*time.Second)
}

func TestHasWaited(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	lim := limiter.NewFPSLimiter(ctx, 1)
	lim.Wait()

	// the next trigger is a second away
	test.ExpectFailure(t, lim.HasWaited())

	lim.SetLimit(0)
}
