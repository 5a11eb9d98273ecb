package locale

import (
	_ "embed"
	"fmt"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/liquidfilters/pkg/money"
)

//go:embed presets.yaml
var presetsYAML []byte

type preset struct {
	Name              string `yaml:"name"`
	money.Conventions `yaml:",inline"`
}

// catalog is the parsed preset list plus everything needed to match against it.
// It is built once and only read afterwards.
type catalog struct {
	matcher language.Matcher
	byTag   map[string]int
	names   []string
	tags    []language.Tag
	presets []preset
}

var loadCatalog = sync.OnceValues(func() (*catalog, error) {
	return parseCatalog(presetsYAML)
})

func parseCatalog(data []byte) (*catalog, error) {
	var doc struct {
		Locales []preset `yaml:"locales"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPresets, err)
	}
	if len(doc.Locales) == 0 {
		return nil, fmt.Errorf("%w: no locales defined", ErrInvalidPresets)
	}

	cat := &catalog{
		byTag:   make(map[string]int, len(doc.Locales)),
		names:   make([]string, 0, len(doc.Locales)),
		tags:    make([]language.Tag, 0, len(doc.Locales)),
		presets: doc.Locales,
	}
	for i, p := range doc.Locales {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPresets, p.Name, err)
		}
		tag, err := parseName(p.Name)
		if err != nil || tag == language.Und {
			return nil, fmt.Errorf("%w: bad locale name %q", ErrInvalidPresets, p.Name)
		}
		if _, dup := cat.byTag[tag.String()]; dup {
			return nil, fmt.Errorf("%w: duplicate locale %q", ErrInvalidPresets, p.Name)
		}
		cat.byTag[tag.String()] = i
		cat.names = append(cat.names, p.Name)
		cat.tags = append(cat.tags, tag)
	}
	cat.matcher = language.NewMatcher(cat.tags)

	return cat, nil
}

// Ready reports whether the embedded presets could be loaded.
// It backs the readiness check.
func Ready() error {
	_, err := loadCatalog()
	return err
}

// Available returns the POSIX names of all presets, in declaration order.
func Available() []string {
	cat, err := loadCatalog()
	if err != nil {
		return nil
	}
	return append([]string(nil), cat.names...)
}
