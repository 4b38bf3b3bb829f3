package heredity

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Pedigree tables are CSV with this exact header. mother and father must
// be both blank or both name other rows; trait is 1 or 0 when observed
// and blank otherwise.
var csvHeader = []string{"name", "mother", "father", "trait"}

// ReadPedigree parses a pedigree table from r and validates it.
func ReadPedigree(r io.Reader) (Pedigree, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("reading pedigree header: %w", err))
	}
	if len(header) != len(csvHeader) {
		return nil, pfx.Err(fmt.Errorf("pedigree header has %d fields; expected %d (%s)", len(header), len(csvHeader), strings.Join(csvHeader, ",")))
	}
	for i, field := range header {
		if strings.TrimSpace(strings.ToLower(field)) != csvHeader[i] {
			return nil, pfx.Err(fmt.Errorf("pedigree header field %d is %q; expected %q", i, field, csvHeader[i]))
		}
	}

	ped := make(Pedigree)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		name := record[0]
		if name == "" {
			return nil, pfx.Err(fmt.Errorf("pedigree row %v has an empty name", record))
		}
		if _, dup := ped[name]; dup {
			return nil, pfx.Err(fmt.Errorf("pedigree lists %q more than once", name))
		}

		trait, err := parseTraitField(record[3])
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("pedigree row for %q: %w", name, err))
		}

		ped[name] = Person{
			Name:   name,
			Mother: record[1],
			Father: record[2],
			Trait:  trait,
		}
	}

	if err := ped.Validate(); err != nil {
		return nil, err
	}

	return ped, nil
}

func parseTraitField(field string) (*bool, error) {
	switch field {
	case "":
		return nil, nil
	case "0":
		f := false
		return &f, nil
	case "1":
		t := true
		return &t, nil
	}

	return nil, fmt.Errorf("trait field is %q; expected 1, 0, or blank", field)
}

// Open reads a pedigree table from a local file. Files ending in .gz or
// .zst are decompressed transparently.
func Open(path string) (Pedigree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	r, closeDecompressor, err := maybeDecompress(path, f)
	if err != nil {
		return nil, err
	}
	defer closeDecompressor()

	return ReadPedigree(r)
}

// OpenGoogleStorage reads a pedigree table from a gs://bucket/object
// URL, with the same transparent decompression as Open.
func OpenGoogleStorage(ctx context.Context, url string) (Pedigree, error) {
	trimmed := strings.TrimPrefix(url, "gs://")
	if trimmed == url {
		return nil, pfx.Err(fmt.Errorf("%q does not start with gs://", url))
	}
	bucket, object, found := strings.Cut(trimmed, "/")
	if !found || object == "" {
		return nil, pfx.Err(fmt.Errorf("%q does not name an object within a bucket", url))
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer client.Close()

	rc, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer rc.Close()

	r, closeDecompressor, err := maybeDecompress(object, rc)
	if err != nil {
		return nil, err
	}
	defer closeDecompressor()

	return ReadPedigree(r)
}

// maybeDecompress wraps r based on the name's extension. The returned
// close function releases the decompressor only; the caller still owns
// the underlying reader.
func maybeDecompress(name string, r io.Reader) (io.Reader, func(), error) {
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, pfx.Err(err)
		}
		return gz, func() { gz.Close() }, nil

	case strings.HasSuffix(name, ".zst"):
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, pfx.Err(err)
		}
		return dec, dec.Close, nil
	}

	return r, func() {}, nil
}
