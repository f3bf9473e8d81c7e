package catalog

import "errors"

// ErrPanelNotFound is returned when a slug has no catalog entry.
var ErrPanelNotFound = errors.New("panel type not found")

// PanelType describes one solar panel technology. The JSON field names
// are the public API wire format.
type PanelType struct {
	Name            string   `json:"name"`
	Icon            string   `json:"icon"`
	Description     string   `json:"description"`
	HowItWorks      string   `json:"how_it_works"`
	Advantages      []string `json:"advantages"`
	EfficiencyRange string   `json:"efficiency_range"`
	IdealUseCases   []string `json:"ideal_use_cases"`
	Color           string   `json:"color"`
}

// Entry pairs a panel type with its slug for ordered iteration.
type Entry struct {
	Slug  string
	Panel PanelType
}

// Catalog is the fixed set of panel types served by the site. It is
// built once at startup and never mutated, so it is safe to share
// across handlers without locking.
type Catalog struct {
	order  []string
	panels map[string]PanelType
}

func newCatalog(entries []Entry) *Catalog {
	c := &Catalog{
		order:  make([]string, 0, len(entries)),
		panels: make(map[string]PanelType, len(entries)),
	}
	for _, e := range entries {
		c.order = append(c.order, e.Slug)
		c.panels[e.Slug] = e.Panel
	}
	return c
}

// Get returns the panel type for a slug, or ErrPanelNotFound.
func (c *Catalog) Get(slug string) (PanelType, error) {
	panel, ok := c.panels[slug]
	if !ok {
		return PanelType{}, ErrPanelNotFound
	}
	return panel, nil
}

// List returns every entry in definition order.
func (c *Catalog) List() []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, slug := range c.order {
		entries = append(entries, Entry{Slug: slug, Panel: c.panels[slug]})
	}
	return entries
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.order)
}
