package transport

import (
	"bufio"
	"context"
	"io"
	"strings"

	"asistencia/internal/mcp"
	"asistencia/internal/platform/logger"
)

// stdio lines can carry large tool results; one megabyte covers a full
// monthly report many times over
const maxLineBytes = 1 << 20

// ServeStdio speaks line-delimited JSON-RPC over in/out until EOF or
// context cancelation. Logging must already point at stderr because the
// wire protocol owns stdout
func ServeStdio(ctx context.Context, d *mcp.Dispatcher, in io.Reader, out io.Writer) error {
	log := logger.Named("stdio")
	log.Info().Msg("stdio transport ready")

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	w := bufio.NewWriter(out)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		resp := d.Handle(ctx, []byte(line))
		if _, err := w.Write(resp); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return sc.Err()
}
