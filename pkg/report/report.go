package report

import (
	"dommorph/pkg/model"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var header = []string{"Domain Variation", "Registration Status"}

// FileName returns the name of the report file for domain
func FileName(domain string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '.', '/', '\\', ':':
			return '_'
		}
		return r
	}, domain)
	return "domain_variations_" + name + ".csv"
}

// WriteCSV writes the header then one row per result, in order
func WriteCSV(w io.Writer, results []model.CheckResult) error {
	c := csv.NewWriter(w)
	if err := c.Write(header); err != nil {
		return errors.Wrap(err, "can't write CSV header")
	}
	for _, r := range results {
		if err := c.Write([]string{r.Candidate, r.StatusString()}); err != nil {
			return errors.Wrapf(err, "can't write CSV row for %q", r.Candidate)
		}
	}
	c.Flush()
	return errors.Wrap(c.Error(), "can't flush CSV")
}

// Save writes the report of domain in dir and returns the path of the file
func Save(dir, domain string, results []model.CheckResult) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, FileName(domain))
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrapf(err, "can't create report %v", path)
	}
	if err := WriteCSV(f, results); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "can't close report %v", path)
	}
	return path, nil
}
