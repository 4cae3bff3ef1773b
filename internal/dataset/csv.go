package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/starford/globelex/internal/apperr"
	"github.com/starford/globelex/internal/checksum"
)

// Row is one decoded data row: an ordered sequence of text cells.
type Row []string

// Cell returns the cell at i, or "" when the row is shorter.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Options control how the tabular file is decoded.
type Options struct {
	HeaderRows int    // leading records to skip
	MinColumns int    // data rows narrower than this are rejected
	Delimiter  rune   // field separator, ',' when zero
	Encoding   string // see Encodings
}

// Snapshot is one decoded version of the dataset.
type Snapshot struct {
	Rows     []Row
	Checksum string // SHA-256 of the raw bytes
	Source   string
}

// Read decodes delimited text into rows. Blank lines are ignored, the first
// HeaderRows records are dropped, and the first data row with fewer than
// MinColumns cells aborts the read with apperr.ErrMalformedRow.
func Read(r io.Reader, opts Options) ([]Row, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows []Row
	record := 0
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: decode: %w", err)
		}
		record++
		if record <= opts.HeaderRows {
			continue
		}
		if len(fields) < opts.MinColumns {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d columns, want at least %d",
				apperr.ErrMalformedRow, line, len(fields), opts.MinColumns)
		}
		rows = append(rows, Row(fields))
	}
	return rows, nil
}

// Load reads the whole dataset from p, checksums it and decodes it.
func Load(ctx context.Context, p Provider, opts Options) (*Snapshot, error) {
	rc, err := p.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", p.Name(), err)
	}

	text, err := Decode(bytes.NewReader(raw), opts.Encoding)
	if err != nil {
		return nil, err
	}
	rows, err := Read(text, opts)
	if err != nil {
		return nil, fmt.Errorf("dataset: %s: %w", p.Name(), err)
	}
	return &Snapshot{
		Rows:     rows,
		Checksum: checksum.Sum(raw),
		Source:   p.Name(),
	}, nil
}
