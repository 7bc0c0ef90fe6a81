package scrollreel

import "github.com/tanema/gween/ease"

// Section is the content block shown below the scrub for one category.
// Only the active category's section is visible.
type Section struct {
	// ID is the category's section token ("office", "college").
	ID       string
	Category Category
	Title    string
	Body     []string
	// Strip is non-nil for categories with a horizontal pan.
	Strip *PanStrip

	Alpha  float64
	Hidden bool

	fade *TweenGroup
}

func newSections(cfg Config) []*Section {
	sections := make([]*Section, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		s := &Section{
			ID:       Category(c.Name).Section(),
			Category: Category(c.Name),
			Title:    c.Title,
			Body:     c.Body,
			Hidden:   true,
		}
		if s.Title == "" {
			s.Title = c.Name
		}
		if c.HorizontalPan {
			s.Strip = &PanStrip{Panels: c.Panels}
		}
		sections = append(sections, s)
	}
	return sections
}

// fadeTo starts an opacity transition, replacing any running one.
func (s *Section) fadeTo(alpha float64, duration float32) *TweenGroup {
	s.fade.Stop()
	s.fade = TweenValue(&s.Alpha, alpha, duration, ease.InOutQuad)
	return s.fade
}

// sectionByID finds the section for a category token.
func sectionByID(sections []*Section, id string) *Section {
	for _, s := range sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}
