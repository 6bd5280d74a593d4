package tabular

import (
	"encoding/csv"
	"errors"
	"io"
	"os"

	"docsift/internal/domain"
)

// Options tunes the CSV dialect. The zero value reads standard
// comma-separated input.
type Options struct {
	Comma            rune // field delimiter; 0 means ','
	Comment          rune // lines starting with this rune are skipped; 0 disables
	TrimLeadingSpace bool
}

func (o Options) reader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	if o.Comma != 0 {
		cr.Comma = o.Comma
	}
	if o.Comment != 0 {
		cr.Comment = o.Comment
	}
	cr.TrimLeadingSpace = o.TrimLeadingSpace
	return cr
}

// ReadRecords reads delimited text whose first row is a header and
// returns the header plus one Record per data row, keyed by column
// name. Ragged rows surface the csv parse error (with line position)
// as a parse failure.
func ReadRecords(r io.Reader, opts Options) ([]string, []domain.Record, error) {
	cr := opts.reader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, domain.E("tabular.read", domain.KindParse, "", err)
	}

	var rows []domain.Record
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return header, rows, nil
		}
		if err != nil {
			return header, rows, domain.E("tabular.read", domain.KindParse, "", err)
		}
		rec := make(domain.Record, len(header))
		for i, col := range header {
			rec[col] = fields[i]
		}
		rows = append(rows, rec)
	}
}

// ReadFile is ReadRecords over a file; errors carry the path.
func ReadFile(path string, opts Options) ([]string, []domain.Record, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil, domain.E("tabular.readfile", domain.KindNotFound, path, err)
	}
	if err != nil {
		return nil, nil, domain.E("tabular.readfile", domain.KindUnknown, path, err)
	}
	defer f.Close()

	header, rows, err := ReadRecords(f, opts)
	if err != nil {
		var oe *domain.OpError
		if errors.As(err, &oe) {
			oe.Path = path
		}
		return header, rows, err
	}
	return header, rows, nil
}

// WriteRecords writes the header then each record in header column
// order. Missing keys write as empty fields.
func WriteRecords(w io.Writer, header []string, rows []domain.Record, opts Options) error {
	cw := csv.NewWriter(w)
	if opts.Comma != 0 {
		cw.Comma = opts.Comma
	}

	if err := cw.Write(header); err != nil {
		return domain.E("tabular.write", domain.KindUnknown, "", err)
	}
	fields := make([]string, len(header))
	for _, rec := range rows {
		for i, col := range header {
			fields[i] = rec[col]
		}
		if err := cw.Write(fields); err != nil {
			return domain.E("tabular.write", domain.KindUnknown, "", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return domain.E("tabular.write", domain.KindUnknown, "", err)
	}
	return nil
}

// Head returns at most n leading rows.
func Head(rows []domain.Record, n int) []domain.Record {
	if n < 0 || n > len(rows) {
		n = len(rows)
	}
	return rows[:n]
}
