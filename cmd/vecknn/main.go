// Command vecknn classifies a query vector against a labelled dataset.
//
// Without -data it runs the built-in movie-genre demo.
//
//	vecknn -data movies.json.zst -k 3 -query 4,3,4,2,1,2
//	vecknn -write-demo movies.json.lz4
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/hupe1980/vecknn"
	"github.com/hupe1980/vecknn/codec"
	"github.com/hupe1980/vecknn/dataset"
	"github.com/hupe1980/vecknn/vector"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

type config struct {
	k         int
	data      string
	query     string
	codec     string
	parallel  int
	logLevel  string
	logJSON   bool
	writeDemo string
	verbose   bool
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("vecknn", flag.ContinueOnError)
	fs.IntVar(&cfg.k, "k", 0, "number of neighbors (overrides the dataset's k; default 1)")
	fs.StringVar(&cfg.data, "data", "", "dataset file (.json, .json.zst, .json.lz4); empty runs the demo")
	fs.StringVar(&cfg.query, "query", "", "comma-separated query vector (overrides the dataset's query)")
	fs.StringVar(&cfg.codec, "codec", codec.Default.Name(), "dataset codec: json or go-json")
	fs.IntVar(&cfg.parallel, "parallel", 1, "number of shards scanned concurrently")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.logJSON, "log-json", false, "log as JSON")
	fs.StringVar(&cfg.writeDemo, "write-demo", "", "write the demo dataset to this file and exit")
	fs.BoolVar(&cfg.verbose, "v", false, "print neighbors and votes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return fmt.Errorf("invalid -log-level %q: %w", cfg.logLevel, err)
	}
	logger := vecknn.NewTextLogger(level)
	if cfg.logJSON {
		logger = vecknn.NewJSONLogger(level)
	}

	c, ok := codec.ByName(cfg.codec)
	if !ok {
		return fmt.Errorf("unknown -codec %q", cfg.codec)
	}

	if cfg.writeDemo != "" {
		return dataset.WriteFile(cfg.writeDemo, demoDocument(), dataset.WithCodec(c))
	}

	ds, source, err := loadDataset(cfg, c)
	logger.LogLoad(ctx, source, datasetSize(ds), err)
	if err != nil {
		return err
	}

	k := ds.K
	if cfg.k != 0 {
		k = cfg.k
	}
	if k == 0 {
		k = 1
	}

	query := ds.Query
	if cfg.query != "" {
		if query, err = parseVector(cfg.query); err != nil {
			return err
		}
	}
	if query == nil {
		return errors.New("no query: pass -query or add one to the dataset")
	}

	clf := vecknn.New(
		vecknn.WithLogger(logger.WithK(k).WithDimension(query.Dim())),
		vecknn.WithParallelism(cfg.parallel),
	)

	res, err := clf.Classify(ctx, k, ds.Samples, query)
	if err != nil {
		return err
	}

	if !res.Found {
		fmt.Fprintln(stdout, "No label found: the dataset has no samples.")
		return nil
	}

	fmt.Fprintf(stdout, "For k of %d and query %v\n", k, query)
	fmt.Fprintf(stdout, "the most appropriate label is %s\n", res.Label)

	if cfg.verbose {
		for _, n := range res.Neighbors {
			fmt.Fprintf(stdout, "  neighbor #%d %-10s distance=%.4f weight=%.4f\n", n.Index, n.Label, n.Distance, n.Weight)
		}
		for _, v := range res.Votes {
			fmt.Fprintf(stdout, "  vote %-10s %.4f\n", v.Label, v.Weight)
		}
	}
	return nil
}

func loadDataset(cfg *config, c codec.Codec) (*dataset.Dataset, string, error) {
	if cfg.data == "" {
		ds, err := dataset.FromDocument(demoDocument())
		return ds, "demo", err
	}
	ds, err := dataset.Open(cfg.data, dataset.WithCodec(c))
	return ds, cfg.data, err
}

func datasetSize(ds *dataset.Dataset) int {
	if ds == nil {
		return 0
	}
	return len(ds.Samples)
}

func parseVector(s string) (*vector.Vector, error) {
	parts := strings.Split(s, ",")
	coords := make([]float64, 0, len(parts))
	for _, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid -query %q: %w", s, err)
		}
		coords = append(coords, x)
	}
	return vector.New(coords)
}

// demoDocument is a tiny movie-genre dataset: viewers rate six films and are
// labelled with their favourite genre.
func demoDocument() *dataset.Document {
	return &dataset.Document{
		K:     1,
		Query: []float64{4, 3, 4, 2, 1, 2},
		Samples: []dataset.Record{
			{Label: "action", Vector: []float64{1, 3, 5, 3, 4, 2}},
			{Label: "horror", Vector: []float64{5, 1, 1, 2, 5, 2}},
			{Label: "comedy", Vector: []float64{2, 2, 3, 3, 2, 2}},
			{Label: "action", Vector: []float64{1, 1, 4, 5, 5, 2}},
			{Label: "comedy", Vector: []float64{3, 3, 2, 4, 1, 2}},
		},
	}
}
