package form

import (
	"fmt"

	"github.com/muurk/readerstyle/internal/catalog"
)

// Update is a single-field edit of a configuration.
type Update interface {
	// Field reports which field the update replaces.
	Field() catalog.Field
	isUpdate()
}

// SetFontFamily replaces the font family.
type SetFontFamily struct{ Option catalog.Option }

// SetFontSize replaces the font size.
type SetFontSize struct{ Option catalog.Option }

// SetFontColor replaces the font colour.
type SetFontColor struct{ Option catalog.Option }

// SetBackgroundColor replaces the background colour.
type SetBackgroundColor struct{ Option catalog.Option }

// SetContentWidth replaces the content width.
type SetContentWidth struct{ Option catalog.Option }

func (SetFontFamily) Field() catalog.Field      { return catalog.FieldFontFamily }
func (SetFontSize) Field() catalog.Field        { return catalog.FieldFontSize }
func (SetFontColor) Field() catalog.Field       { return catalog.FieldFontColor }
func (SetBackgroundColor) Field() catalog.Field { return catalog.FieldBackgroundColor }
func (SetContentWidth) Field() catalog.Field    { return catalog.FieldContentWidth }

func (SetFontFamily) isUpdate()      {}
func (SetFontSize) isUpdate()        {}
func (SetFontColor) isUpdate()       {}
func (SetBackgroundColor) isUpdate() {}
func (SetContentWidth) isUpdate()    {}

// Reduce returns cfg with the field named by u replaced. cfg is not modified.
func Reduce(cfg catalog.Configuration, u Update) catalog.Configuration {
	switch u := u.(type) {
	case SetFontFamily:
		cfg.FontFamily = u.Option
	case SetFontSize:
		cfg.FontSize = u.Option
	case SetFontColor:
		cfg.FontColor = u.Option
	case SetBackgroundColor:
		cfg.BackgroundColor = u.Option
	case SetContentWidth:
		cfg.ContentWidth = u.Option
	default:
		panic(fmt.Sprintf("form: unhandled update %T", u))
	}
	return cfg
}

// UpdateFor builds the update variant for field. An unknown field is a
// programming error and panics.
func UpdateFor(field catalog.Field, opt catalog.Option) Update {
	switch field {
	case catalog.FieldFontFamily:
		return SetFontFamily{Option: opt}
	case catalog.FieldFontSize:
		return SetFontSize{Option: opt}
	case catalog.FieldFontColor:
		return SetFontColor{Option: opt}
	case catalog.FieldBackgroundColor:
		return SetBackgroundColor{Option: opt}
	case catalog.FieldContentWidth:
		return SetContentWidth{Option: opt}
	}
	panic(fmt.Sprintf("form: unknown field %d", int(field)))
}
