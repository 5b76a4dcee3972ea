package customers

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// FileStore saves customers one per line in a comma separated file.
type FileStore struct {
	Path string
}

// Load reads every customer from the file. A missing file is an empty set.
// Malformed lines are skipped; their errors are joined into the returned
// error alongside the customers that did parse.
func (s FileStore) Load() ([]*Customer, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open customers file: %w", err)
	}
	defer f.Close()

	var (
		out  []*Customer
		errs []error
		line int
	)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		c, err := Deserialize(text)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s:%d: %w", s.Path, line, err))
			continue
		}
		out = append(out, c)
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, fmt.Errorf("read customers file: %w", err))
	}
	return out, errors.Join(errs...)
}

// Save overwrites the file with the given customers, one per line.
func (s FileStore) Save(customers []*Customer) error {
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("create customers file: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, c := range customers {
		if _, err := fmt.Fprintln(w, c.Serialize()); err != nil {
			f.Close()
			return fmt.Errorf("write customer %s: %w", c.MemberID, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush customers file: %w", err)
	}
	return f.Close()
}

// LoadInto reads the file and adds every parsed customer to d. Load and Add
// errors are joined.
func (s FileStore) LoadInto(d *Directory) (int, error) {
	loaded, err := s.Load()
	errs := []error{err}
	n := 0
	for _, c := range loaded {
		if addErr := d.Add(c); addErr != nil {
			errs = append(errs, addErr)
			continue
		}
		n++
	}
	return n, errors.Join(errs...)
}

// SaveFrom writes every customer in d, sorted by member ID.
func (s FileStore) SaveFrom(d *Directory) error {
	return s.Save(d.All())
}
