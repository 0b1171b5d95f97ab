package catalog

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const bookListVersion = 1

type bookListFile struct {
	Version int          `yaml:"version"`
	Books   []bookRecord `yaml:"books"`
}

type bookRecord struct {
	ID    string `yaml:"id,omitempty"`
	Name  string `yaml:"name"`
	Owner string `yaml:"owner"`
	Year  int    `yaml:"year"`
}

// ReadItems decodes a YAML book list. Books without an id get a fresh one.
// A missing version is treated as the current version.
func ReadItems(r io.Reader) ([]*Item, error) {
	var file bookListFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to parse book list: %w", err)
	}

	if file.Version != 0 && file.Version != bookListVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, file.Version)
	}

	items := make([]*Item, 0, len(file.Books))
	for _, b := range file.Books {
		id := b.ID
		if id == "" {
			id = uuid.New().String()
		}
		items = append(items, newItemWithID(id, b.Name, b.Owner, b.Year))
	}
	return items, nil
}

func ReadItemsFile(path string) ([]*Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read book list: %w", err)
	}
	defer f.Close()

	items, err := ReadItems(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// WriteItems encodes items as a YAML book list, keeping their order.
func WriteItems(w io.Writer, items []*Item) error {
	file := bookListFile{
		Version: bookListVersion,
		Books:   make([]bookRecord, 0, len(items)),
	}

	for _, it := range items {
		file.Books = append(file.Books, bookRecord{
			ID:    it.id,
			Name:  it.name,
			Owner: it.owner,
			Year:  it.year,
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("failed to encode book list: %w", err)
	}
	return enc.Close()
}
