package dataset

import (
	"fmt"
	"io"
	"os"
)

// Encode writes doc to w using the configured codec and compression.
func Encode(w io.Writer, doc *Document, optFns ...Option) error {
	o := newOptions(optFns)

	data, err := o.codec.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode with %s: %w", o.codec.Name(), err)
	}

	wc, err := NewWriter(w, o.compression)
	if err != nil {
		return err
	}
	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}

// WriteFile writes doc to path, compressed according to the file suffix
// unless WithCompression is given.
func WriteFile(path string, doc *Document, optFns ...Option) error {
	o := newOptions(optFns)
	if o.detect {
		optFns = append(optFns, WithCompression(CompressionFromPath(path)))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, doc, optFns...); err != nil {
		_ = f.Close()
		return fmt.Errorf("dataset %s: %w", path, err)
	}
	return f.Close()
}

// ToDocument converts a Dataset back to its encoded form.
func ToDocument(ds *Dataset) *Document {
	doc := &Document{
		K:       ds.K,
		Samples: make([]Record, 0, len(ds.Samples)),
	}
	if ds.Query != nil {
		doc.Query = ds.Query.Coordinates()
	}
	for _, s := range ds.Samples {
		doc.Samples = append(doc.Samples, Record{Label: s.Label, Vector: s.Data.Coordinates()})
	}
	return doc
}
