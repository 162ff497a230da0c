package label

import "strings"

// Iconset maps workspace names to icon labels.
type Iconset struct {
	order []string
	icons map[string]*Label
}

// NewIconset creates an empty iconset.
func NewIconset() *Iconset {
	return &Iconset{icons: make(map[string]*Label)}
}

// Add registers an icon. Re-adding a name replaces the icon but keeps its
// original lookup position.
func (s *Iconset) Add(name string, icon *Label) {
	if _, ok := s.icons[name]; !ok {
		s.order = append(s.order, name)
	}
	s.icons[name] = icon
}

// Has reports whether an icon is registered under name.
func (s *Iconset) Has(name string) bool {
	_, ok := s.icons[name]
	return ok
}

// Get returns the icon for id, or the icon registered under fallback.
//
// With fuzzy matching the first registered name contained in id wins;
// otherwise only an exact match is accepted. An empty label is returned
// when neither id nor fallback resolve.
func (s *Iconset) Get(id, fallback string, fuzzy bool) *Label {
	if fuzzy {
		for _, name := range s.order {
			if strings.Contains(id, name) {
				return s.icons[name]
			}
		}
	} else if icon, ok := s.icons[id]; ok {
		return icon
	}

	if icon, ok := s.icons[fallback]; ok {
		return icon
	}
	return New("")
}

// ParseIconEntry splits a "name;icon" configuration entry.
func ParseIconEntry(entry string) (name, icon string, ok bool) {
	parts := strings.Split(entry, ";")
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
