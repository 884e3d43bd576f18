package catalog

import (
	"errors"
	"fmt"
)

// Sentinel errors returned when a catalog fails validation.
var (
	ErrEmptyField      = errors.New("field has no options")
	ErrDuplicateValue  = errors.New("duplicate option value")
	ErrUnknownDefault  = errors.New("default is not one of the field's options")
	ErrUnknownField    = errors.New("unknown field")
	ErrMissingDefaults = errors.New("catalog has no default for field")
)

// Field identifies one of the five configurable article fields.
type Field int

const (
	FieldFontFamily Field = iota
	FieldFontSize
	FieldFontColor
	FieldBackgroundColor
	FieldContentWidth
)

// Fields lists every field in form order.
var Fields = []Field{
	FieldFontFamily,
	FieldFontSize,
	FieldFontColor,
	FieldBackgroundColor,
	FieldContentWidth,
}

// String returns the wire key of the field.
func (f Field) String() string {
	switch f {
	case FieldFontFamily:
		return "fontFamilyOption"
	case FieldFontSize:
		return "fontSizeOption"
	case FieldFontColor:
		return "fontColor"
	case FieldBackgroundColor:
		return "backgroundColor"
	case FieldContentWidth:
		return "contentWidth"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// Title returns the label shown above the field's control.
func (f Field) Title() string {
	switch f {
	case FieldFontFamily:
		return "Font"
	case FieldFontSize:
		return "Font size"
	case FieldFontColor:
		return "Font colour"
	case FieldBackgroundColor:
		return "Background colour"
	case FieldContentWidth:
		return "Content width"
	default:
		return f.String()
	}
}

// Valid reports whether f is one of the five known fields.
func (f Field) Valid() bool {
	return f >= FieldFontFamily && f <= FieldContentWidth
}

// ParseField maps a wire key back to its Field.
func ParseField(key string) (Field, error) {
	for _, f := range Fields {
		if f.String() == key {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, key)
}

// Option is a single catalog entry. Value is the machine value; the remaining
// fields are render hints, only the ones relevant to the option's field are set.
type Option struct {
	Value    string `json:"value" yaml:"value"`
	Label    string `json:"title" yaml:"label"`
	Color    string `json:"color,omitempty" yaml:"color,omitempty"`       // Hex colour for colour fields
	Columns  int    `json:"columns,omitempty" yaml:"columns,omitempty"`   // Text column width for contentWidth
	Emphasis string `json:"emphasis,omitempty" yaml:"emphasis,omitempty"` // bold, italic, underline, faint
	Spacing  int    `json:"spacing,omitempty" yaml:"spacing,omitempty"`   // Blank lines between text lines
}

// Configuration is a fully populated set of article rendering options.
type Configuration struct {
	FontFamily      Option `json:"fontFamilyOption" yaml:"fontFamilyOption"`
	FontSize        Option `json:"fontSizeOption" yaml:"fontSizeOption"`
	FontColor       Option `json:"fontColor" yaml:"fontColor"`
	BackgroundColor Option `json:"backgroundColor" yaml:"backgroundColor"`
	ContentWidth    Option `json:"contentWidth" yaml:"contentWidth"`
}

// Get returns the option held for field f. Unknown fields are a programming
// error and panic.
func (c Configuration) Get(f Field) Option {
	switch f {
	case FieldFontFamily:
		return c.FontFamily
	case FieldFontSize:
		return c.FontSize
	case FieldFontColor:
		return c.FontColor
	case FieldBackgroundColor:
		return c.BackgroundColor
	case FieldContentWidth:
		return c.ContentWidth
	}
	panic(fmt.Sprintf("catalog: unknown field %d", int(f)))
}

// Values returns the machine values of every field keyed by wire name.
func (c Configuration) Values() map[string]string {
	values := make(map[string]string, len(Fields))
	for _, f := range Fields {
		values[f.String()] = c.Get(f).Value
	}
	return values
}

// Catalog holds the ordered options per field and the default configuration.
type Catalog struct {
	options  map[Field][]Option
	defaults Configuration
}

// New builds a catalog from per-field options and per-field default values.
// The option slices are copied.
func New(options map[Field][]Option, defaults map[Field]string) (*Catalog, error) {
	c := &Catalog{options: make(map[Field][]Option, len(Fields))}

	for _, f := range Fields {
		opts := options[f]
		if len(opts) == 0 {
			return nil, fmt.Errorf("%s: %w", f, ErrEmptyField)
		}

		seen := make(map[string]bool, len(opts))
		for _, opt := range opts {
			if seen[opt.Value] {
				return nil, fmt.Errorf("%s: %w: %q", f, ErrDuplicateValue, opt.Value)
			}
			seen[opt.Value] = true
		}
		c.options[f] = append([]Option(nil), opts...)

		value, ok := defaults[f]
		if !ok {
			return nil, fmt.Errorf("%s: %w", f, ErrMissingDefaults)
		}
		def, ok := c.Lookup(f, value)
		if !ok {
			return nil, fmt.Errorf("%s: %w: %q", f, ErrUnknownDefault, value)
		}
		c.defaults = c.defaults.with(f, def)
	}

	return c, nil
}

// with returns a copy of c with field f replaced.
func (c Configuration) with(f Field, opt Option) Configuration {
	switch f {
	case FieldFontFamily:
		c.FontFamily = opt
	case FieldFontSize:
		c.FontSize = opt
	case FieldFontColor:
		c.FontColor = opt
	case FieldBackgroundColor:
		c.BackgroundColor = opt
	case FieldContentWidth:
		c.ContentWidth = opt
	}
	return c
}

// Default returns the catalog's default configuration.
func (c *Catalog) Default() Configuration {
	return c.defaults
}

// Options returns a copy of the ordered options for field f.
func (c *Catalog) Options(f Field) []Option {
	return append([]Option(nil), c.options[f]...)
}

// Lookup finds the option with the given value in field f.
func (c *Catalog) Lookup(f Field, value string) (Option, bool) {
	for _, opt := range c.options[f] {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// Index returns the position of value within field f, or -1.
func (c *Catalog) Index(f Field, value string) int {
	for i, opt := range c.options[f] {
		if opt.Value == value {
			return i
		}
	}
	return -1
}

// Step returns the option delta positions away from current in field f,
// wrapping at both ends. An unknown current value steps from the first option.
func (c *Catalog) Step(f Field, current Option, delta int) Option {
	opts := c.options[f]
	if len(opts) == 0 {
		return current
	}
	i := c.Index(f, current.Value)
	if i < 0 {
		i = 0
	}
	n := len(opts)
	return opts[((i+delta)%n+n)%n]
}

// Validate checks that every field of cfg holds an option from this catalog.
func (c *Catalog) Validate(cfg Configuration) error {
	for _, f := range Fields {
		got := cfg.Get(f)
		opt, ok := c.Lookup(f, got.Value)
		if !ok || opt != got {
			return fmt.Errorf("%s: option %q is not in the catalog", f, got.Value)
		}
	}
	return nil
}
