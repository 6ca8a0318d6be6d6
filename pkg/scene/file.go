package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// File is a scene document: settings plus spheres. Spheres may be written
// as objects or as description strings (see ParseSphere).
type File struct {
	Settings Settings `json:"settings"`
	Spheres  []Sphere `json:"spheres"`
}

// Decode reads a scene document. Settings fields the document leaves out
// keep their DefaultSettings values. The result is validated.
func Decode(r io.Reader) (*File, error) {
	f := &File{Settings: DefaultSettings()}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(f); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the settings and every sphere.
func (f *File) Validate() error {
	if err := f.Settings.Validate(); err != nil {
		return fmt.Errorf("scene settings: %w", err)
	}
	for i, s := range f.Spheres {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("scene sphere %d: %w", i, err)
		}
	}
	return nil
}

// Encode writes the document as indented JSON.
func (f *File) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// LoadFile reads a scene document from disk.
func LoadFile(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer fh.Close()
	return Decode(fh)
}

// SaveFile writes a scene document to disk.
func (f *File) SaveFile(path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	if err := f.Encode(fh); err != nil {
		fh.Close()
		return err
	}
	return fh.Close()
}

// Store builds a Store holding the document's spheres.
func (f *File) Store() (*Store, error) {
	return NewStore(f.Spheres...)
}
