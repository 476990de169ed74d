package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"time"

	"github.com/gosuri/uilive"
	"github.com/rs/zerolog"
	"github.com/webbmaffian/go-zorder/matrix"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	interval := flag.Duration("interval", time.Second, "refresh interval")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	args := flag.Args()

	if len(args) != 1 {
		log.Error().Msg("Exactly one (1) argument expected, and this must be the path to a float64 matrix file.")
		return
	}

	m, err := matrix.OpenRO[float64](args[0])

	if err != nil {
		log.Error().Err(err).Msg("failed to open matrix")
		return
	}

	defer m.Close()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()

	writer := uilive.New()

	rank := writer.Newline()
	size := writer.Newline()
	minimum := writer.Newline()
	maximum := writer.Newline()
	sum := writer.Newline()

	// start listening for updates and render
	writer.Start()
	defer writer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s := summarize(m)

			fmt.Fprintf(rank, "Rank: %d\n", m.Rank())
			fmt.Fprintf(size, "Size: %d\n", m.Size())
			fmt.Fprintf(minimum, "Min: %g at (%d, %d)\n", s.min, s.minX, s.minY)
			fmt.Fprintf(maximum, "Max: %g at (%d, %d)\n", s.max, s.maxX, s.maxY)
			fmt.Fprintf(sum, "Sum: %g\n", s.sum)
		}
	}
}

type summary struct {
	min, max, sum          float64
	minX, minY, maxX, maxY uint32
}

func summarize(m *matrix.Matrix[float64]) (s summary) {
	s.min = math.Inf(1)
	s.max = math.Inf(-1)
	end := m.End()

	for c := m.Begin(); !c.Equal(end); c.Next() {
		v := *c.Value()
		s.sum += v

		if v < s.min {
			s.min, s.minX, s.minY = v, c.X(), c.Y()
		}

		if v > s.max {
			s.max, s.maxX, s.maxY = v, c.X(), c.Y()
		}
	}

	return
}
