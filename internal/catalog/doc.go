// Package catalog defines the article rendering options offered by readerstyle.
//
// The catalog enumerates, for each configurable field, the ordered set of
// valid options and names one of them as the default. A Configuration is a
// fully populated record holding one option per field; it is what the side
// panel edits as a draft and what the article view renders once applied.
//
// # Fields
//
// Five fields are configurable. Their wire names match the keys used by the
// preview page and by catalog files:
//   - fontFamilyOption: typeface (rendered as a text emphasis in the terminal)
//   - fontSizeOption:   text size (rendered as line spacing)
//   - fontColor:        foreground colour
//   - backgroundColor:  background colour
//   - contentWidth:     width of the text column
//
// # Catalog Files
//
// The built-in catalog can be replaced by a YAML file:
//
//	version: 1
//	fields:
//	  fontSizeOption:
//	    default: M
//	    options:
//	      - value: S
//	        label: 18px
//	      - value: M
//	        label: 25px
//	        spacing: 1
//
// Files are validated when loaded: every field must have at least one option,
// option values must be unique within a field, and the default must name one
// of the field's options. A loaded catalog is immutable.
//
// # Usage Example
//
//	cat := catalog.Builtin()
//	cfg := cat.Default()
//	large, ok := cat.Lookup(catalog.FieldFontSize, "L")
package catalog
