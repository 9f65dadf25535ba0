package avatar

import (
	"fmt"
	"slices"

	"github.com/louisbranch/avatarpick/internal/platform/random"
)

// Picker holds the candidates of one mounted screen and the current selection.
// Candidates never change after construction and a selection, once made, can
// only be replaced. A Picker is not safe for concurrent use.
type Picker struct {
	candidates []string
	selected   int
	chosen     bool
}

// NewPicker returns a picker over a copy of candidates with nothing selected.
func NewPicker(candidates []string) *Picker {
	return &Picker{candidates: slices.Clone(candidates)}
}

// Candidates returns a copy of the candidate list.
func (p *Picker) Candidates() []string {
	return slices.Clone(p.candidates)
}

// Len returns the number of candidates.
func (p *Picker) Len() int {
	return len(p.candidates)
}

// Select marks candidate i as selected.
func (p *Picker) Select(i int) error {
	if i < 0 || i >= len(p.candidates) {
		return fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(p.candidates))
	}
	p.selected = i
	p.chosen = true
	return nil
}

// SelectRandom selects a uniformly random candidate drawn from src.
func (p *Picker) SelectRandom(src random.Source) (int, error) {
	if len(p.candidates) == 0 {
		return 0, ErrNoCandidates
	}
	if src == nil {
		return 0, fmt.Errorf("random source is required")
	}
	i := src.IntN(len(p.candidates))
	if err := p.Select(i); err != nil {
		return 0, err
	}
	return i, nil
}

// Selected returns the selected index.
func (p *Picker) Selected() (int, bool) {
	return p.selected, p.chosen
}

// SelectedImage returns the selected candidate payload.
func (p *Picker) SelectedImage() (string, bool) {
	if !p.chosen {
		return "", false
	}
	return p.candidates[p.selected], true
}

// IsSelected reports whether candidate i is the current selection.
func (p *Picker) IsSelected(i int) bool {
	return p.chosen && p.selected == i
}
