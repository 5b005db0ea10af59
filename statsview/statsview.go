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

package statsview

import (
	"context"
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/hakka/hakka/logger"
)

// DefaultAddress of the stats server.
const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

// URL returns the address of the statistics page for the server address.
func URL(address string) string {
	return fmt.Sprintf("http://%s%s", address, path)
}

// Launch the stats server in the background. The server stops when the
// context is cancelled. The URL of the statistics page is printed to the
// output.
func Launch(ctx context.Context, output io.Writer, address string) {
	if address == "" {
		address = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(address))
	mgr := statsview.New()

	go func() {
		if err := mgr.Start(); err != nil {
			logger.Log("statsview", err)
		}
	}()

	go func() {
		<-ctx.Done()
		mgr.Stop()
	}()

	logger.Logf("statsview", "launched on %s", address)
	fmt.Fprintf(output, "stats server available at %s\n", URL(address))
}
