// Command noisegen writes a value-noise grid to stdout.
//
// Usage:
//
//	noisegen -shape 256x256 -scale 64x64 -octaves 6 -seed 42 -format csv
//
// A single -scale value applies to every axis. With -octaves 1 the output is
// one plain layer. -stats prints Min/Max/Mean/StdDev to stderr.
package main

import (
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnoise/grid"
	"github.com/katalvlaran/lvnoise/lattice"
	"github.com/katalvlaran/lvnoise/noise"
)

func main() {
	var (
		shapeFlag  = flag.String("shape", "64x64", "grid shape, WxL[xH]")
		scaleFlag  = flag.String("scale", "16", "feature size, one value or one per axis")
		octaves    = flag.Int("octaves", noise.DefaultOctaves, "number of octaves")
		seed       = flag.Int64("seed", noise.DefaultSeed, "random seed")
		multiplier = flag.Float64("multiplier", noise.DefaultMultiplier, "first-octave amplitude, in (0,1]")
		decay      = flag.Float64("decay", 0, "per-octave decay factor, 0 derives it from -multiplier")
		dist       = flag.String("dist", "uniform", "lattice distribution: uniform|normal")
		lo         = flag.Float64("min", 0, "uniform lower bound")
		hi         = flag.Float64("max", 1, "uniform upper bound")
		mean       = flag.Float64("mean", 0, "normal mean")
		stddev     = flag.Float64("stddev", 1, "normal standard deviation")
		format     = flag.String("format", "csv", "output format: csv|json")
		stats      = flag.Bool("stats", false, "print summary statistics to stderr")
	)
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("noisegen: ")

	shape, err := parseDims(*shapeFlag)
	if err != nil {
		log.Fatalf("bad -shape: %v", err)
	}
	scale, err := parseDims(*scaleFlag)
	if err != nil {
		log.Fatalf("bad -scale: %v", err)
	}
	if len(scale) == 1 && len(shape) > 1 {
		for len(scale) < len(shape) {
			scale = append(scale, scale[0])
		}
	}

	opts := []noise.Option{
		noise.WithSeed(*seed),
		noise.WithOctaves(*octaves),
		noise.WithMultiplier(*multiplier),
	}
	if *decay != 0 {
		opts = append(opts, noise.WithDecayFactor(*decay))
	}
	switch *dist {
	case "uniform":
		if !(*lo < *hi) {
			log.Fatalf("bad -min/-max: need min < max, got %g, %g", *lo, *hi)
		}
		opts = append(opts, noise.WithDistribution(lattice.Uniform(*lo, *hi)))
	case "normal":
		if !(*stddev > 0) {
			log.Fatalf("bad -stddev: need > 0, got %g", *stddev)
		}
		opts = append(opts, noise.WithDistribution(lattice.Normal(*mean, *stddev)))
	default:
		log.Fatalf("unknown -dist %q", *dist)
	}

	out, err := noise.GenerateOctaves(shape, scale, opts...)
	if err != nil {
		log.Fatalf("generate: %v", err)
	}

	switch *format {
	case "csv":
		err = writeCSV(os.Stdout, out)
	case "json":
		err = writeJSON(os.Stdout, out)
	default:
		log.Fatalf("unknown -format %q", *format)
	}
	if err != nil {
		log.Fatalf("write: %v", err)
	}

	if *stats {
		s := out.Summary()
		fmt.Fprintf(os.Stderr, "min=%.6f max=%.6f mean=%.6f stddev=%.6f\n", s.Min, s.Max, s.Mean, s.StdDev)
	}
}

// parseDims parses "8x4x2" (or "8") into positive ints.
func parseDims(s string) ([]int, error) {
	parts := strings.Split(strings.ToLower(s), "x")
	dims := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		dims[i] = v
	}

	return dims, nil
}

// writeCSV emits one record per x-row; 3-D grids separate layers with an
// empty record.
func writeCSV(w io.Writer, d *grid.Dense) error {
	cw := csv.NewWriter(w)
	width := d.Width()
	data := d.Data()
	rowsPerLayer := d.Length()
	record := make([]string, width)
	for row := 0; row*width < len(data); row++ {
		if d.Rank() == grid.MaxRank && row > 0 && row%rowsPerLayer == 0 {
			if err := cw.Write(nil); err != nil {
				return err
			}
		}
		for x := 0; x < width; x++ {
			record[x] = strconv.FormatFloat(data[row*width+x], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

type jsonGrid struct {
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// writeJSON emits {"shape": [...], "data": [...]} with data in x-fastest order.
func writeJSON(w io.Writer, d *grid.Dense) error {
	enc := json.NewEncoder(w)

	return enc.Encode(jsonGrid{Shape: d.Dims(), Data: d.Data()})
}
