package business

import (
	"github.com/Agurato/favorites/internal/model"
)

// FilterOptionsView is the render layer of the filter options list
type FilterOptionsView interface {
	OptionsChanged()
}

// FilterOptionsListener receives the row selected by the user
type FilterOptionsListener interface {
	OptionSelected(row int, kind model.FilterKind)
}

// FilterOptionsPresenter relays row selections over the currently loaded options.
// It keeps no selection state.
type FilterOptionsPresenter struct {
	view     FilterOptionsView
	listener FilterOptionsListener

	options []model.FilterOption
	kind    model.FilterKind
}

func NewFilterOptionsPresenter(view FilterOptionsView, listener FilterOptionsListener) *FilterOptionsPresenter {
	return &FilterOptionsPresenter{
		view:     view,
		listener: listener,
	}
}

// SetOptions replaces the selectable options and the kind being edited
func (p *FilterOptionsPresenter) SetOptions(options []model.FilterOption, kind model.FilterKind) {
	p.options = append([]model.FilterOption(nil), options...)
	p.kind = kind
	if p.view != nil {
		p.view.OptionsChanged()
	}
}

// SelectRow forwards the row and the current kind to the listener
func (p *FilterOptionsPresenter) SelectRow(row int) {
	if p.listener == nil {
		return
	}
	p.listener.OptionSelected(row, p.kind)
}

// Options returns a copy of the loaded options
func (p *FilterOptionsPresenter) Options() []model.FilterOption {
	return append([]model.FilterOption(nil), p.options...)
}

func (p *FilterOptionsPresenter) Kind() model.FilterKind {
	return p.kind
}
