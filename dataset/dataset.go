// Package dataset loads labelled samples and an optional query from JSON
// documents, optionally zstd or lz4 compressed.
//
// A document looks like:
//
//	{
//	  "k": 1,
//	  "query": [4, 3, 4, 2, 1, 2],
//	  "samples": [
//	    {"label": "action", "vector": [1, 3, 5, 3, 4, 2]},
//	    {"label": "comedy", "vector": [2, 2, 3, 3, 2, 2]}
//	  ]
//	}
package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/vecknn"
	"github.com/hupe1980/vecknn/codec"
	"github.com/hupe1980/vecknn/vector"
)

// ErrEmptyLabel is returned for a sample without a label.
var ErrEmptyLabel = errors.New("sample label must not be empty")

// Record is the encoded form of a labelled sample.
type Record struct {
	Label  string    `json:"label"`
	Vector []float64 `json:"vector"`
}

// Document is the encoded form of a dataset.
type Document struct {
	K       int       `json:"k,omitempty"`
	Query   []float64 `json:"query,omitempty"`
	Samples []Record  `json:"samples"`
}

// Dataset is a decoded and validated document.
type Dataset struct {
	// K is the neighbor count stored in the document, 0 if absent.
	K int
	// Query is nil if the document has none.
	Query   *vector.Vector
	Samples []*vecknn.Sample
}

// Dim returns the common dimension of the samples and query, 0 if there are none.
func (d *Dataset) Dim() int {
	switch {
	case d.Query != nil:
		return d.Query.Dim()
	case len(d.Samples) > 0:
		return d.Samples[0].Data.Dim()
	default:
		return 0
	}
}

type options struct {
	codec       codec.Codec
	compression Compression
	detect      bool
}

// Option configures decoding.
type Option func(*options)

// WithCodec sets the codec used to decode the document.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression forces the compression instead of detecting it from the
// file name in Open.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
		o.detect = false
	}
}

func newOptions(optFns []Option) options {
	o := options{codec: codec.Default, compression: None, detect: true}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Open reads the dataset stored at path. Compression is detected from the
// file suffix unless WithCompression is given.
func Open(path string, optFns ...Option) (*Dataset, error) {
	o := newOptions(optFns)
	if o.detect {
		o.compression = CompressionFromPath(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ds, err := decode(f, o)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	return ds, nil
}

// Decode reads a dataset from r. Without WithCompression, r is read as-is.
func Decode(r io.Reader, optFns ...Option) (*Dataset, error) {
	return decode(r, newOptions(optFns))
}

func decode(r io.Reader, o options) (*Dataset, error) {
	rc, err := NewReader(r, o.compression)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s stream: %w", o.compression, err)
	}

	var doc Document
	if err := o.codec.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode with %s: %w", o.codec.Name(), err)
	}

	return FromDocument(&doc)
}

// FromDocument validates doc and converts it to a Dataset. All sample
// vectors and the query must share one dimension.
func FromDocument(doc *Document) (*Dataset, error) {
	if doc.K < 0 {
		return nil, fmt.Errorf("k %d: %w", doc.K, vecknn.ErrInvalidK)
	}

	ds := &Dataset{
		K:       doc.K,
		Samples: make([]*vecknn.Sample, 0, len(doc.Samples)),
	}

	if doc.Query != nil {
		q, err := vector.New(doc.Query)
		if err != nil {
			return nil, fmt.Errorf("query: %w", err)
		}
		ds.Query = q
	}

	for i, rec := range doc.Samples {
		if rec.Label == "" {
			return nil, fmt.Errorf("sample %d: %w", i, ErrEmptyLabel)
		}
		v, err := vector.New(rec.Vector)
		if err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}

		var ref *vector.Vector
		switch {
		case ds.Query != nil:
			ref = ds.Query
		case len(ds.Samples) > 0:
			ref = ds.Samples[0].Data
		}
		if ref != nil {
			if err := vector.CheckDimension(ref, v); err != nil {
				return nil, fmt.Errorf("sample %d: %w", i, err)
			}
		}

		ds.Samples = append(ds.Samples, vecknn.NewSample(rec.Label, v))
	}

	return ds, nil
}
