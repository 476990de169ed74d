package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/webbmaffian/go-zorder/matrix"
)

func main() {
	rank := flag.Uint("rank", 4, "side length, a power of two")
	mapPath := flag.String("map", "", "back the matrix by this file instead of the heap")
	snapshot := flag.String("snapshot", "", "write a compressed snapshot to this file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	// run returns before main exits, so its deferred closes flush a mapped
	// matrix even on failure.
	if err := run(log, uint32(*rank), *mapPath, *snapshot); err != nil {
		log.Error().Err(err).Msg("example failed")
		os.Exit(1)
	}
}

func run(log zerolog.Logger, rank uint32, mapPath, snapshot string) (err error) {
	var m *matrix.Matrix[float64]

	if mapPath != "" {
		m, err = matrix.Map[float64](mapPath, rank)
	} else {
		m, err = matrix.New[float64](rank)
	}

	if err != nil {
		return
	}

	defer func() {
		if closeErr := m.Close(); err == nil {
			err = closeErr
		}
	}()

	m.Each(func(i, j uint32, val *float64) {
		*val = float64(i*m.Rank() + j)
	})

	log.Info().Uint32("rank", m.Rank()).Uint64("size", m.Size()).Msg("matrix ready")

	end := m.End()

	for c := m.Begin(); !c.Equal(end); c.Next() {
		log.Debug().
			Uint64("z", c.Offset()).
			Uint32("x", c.X()).
			Uint32("y", c.Y()).
			Float64("val", *c.Value()).
			Msg("visit")
	}

	if snapshot == "" {
		return
	}

	f, err := os.Create(snapshot)

	if err != nil {
		return
	}

	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	n, err := m.WriteTo(f)

	if err != nil {
		return
	}

	log.Info().Str("path", snapshot).Int64("bytes", n).Msg("snapshot written")
	return
}
