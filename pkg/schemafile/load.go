package schemafile

import (
	"errors"
	"os"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Load reads the schema file at path and builds it into r.
func Load(path string, r *form.Registry) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	doc, err := Parse(content)
	if err != nil {
		return err
	}
	return doc.Build(r)
}

// LoadRegistry builds a new registry from the schema file at path.
func LoadRegistry(path string, opts ...form.Option) (*form.Registry, error) {
	r := form.NewRegistry(opts...)
	if err := Load(path, r); err != nil {
		return nil, err
	}
	return r, nil
}
