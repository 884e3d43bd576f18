package catalog

// Built-in option values.
var (
	fontFamilyOptions = []Option{
		{Value: "open-sans", Label: "Open Sans"},
		{Value: "ubuntu", Label: "Ubuntu", Emphasis: "bold"},
		{Value: "cormorant-garamond", Label: "Cormorant Garamond", Emphasis: "italic"},
		{Value: "days-one", Label: "Days One", Emphasis: "underline"},
		{Value: "merriweather", Label: "Merriweather", Emphasis: "faint"},
	}

	fontSizeOptions = []Option{
		{Value: "S", Label: "18px"},
		{Value: "M", Label: "25px", Spacing: 1},
		{Value: "L", Label: "38px", Spacing: 2},
	}

	fontColors = []Option{
		{Value: "black", Label: "Black", Color: "#000000"},
		{Value: "white", Label: "White", Color: "#FFFFFF"},
		{Value: "gray", Label: "Gray", Color: "#C4C4C4"},
		{Value: "pink", Label: "Pink", Color: "#FEAFE8"},
		{Value: "fuchsia", Label: "Fuchsia", Color: "#FD24AF"},
		{Value: "yellow", Label: "Yellow", Color: "#FFC802"},
		{Value: "green", Label: "Green", Color: "#80D994"},
		{Value: "blue", Label: "Blue", Color: "#6FC1FD"},
		{Value: "purple", Label: "Purple", Color: "#5F00EB"},
	}

	backgroundColors = []Option{
		{Value: "white", Label: "White", Color: "#FFFFFF"},
		{Value: "black", Label: "Black", Color: "#000000"},
		{Value: "gray", Label: "Gray", Color: "#C4C4C4"},
		{Value: "rose", Label: "Rose", Color: "#FFC8D9"},
		{Value: "yellow", Label: "Yellow", Color: "#FFF5C0"},
		{Value: "green", Label: "Green", Color: "#D4F5D9"},
		{Value: "blue", Label: "Blue", Color: "#D4EEFF"},
		{Value: "purple", Label: "Purple", Color: "#E6D4FF"},
	}

	contentWidths = []Option{
		{Value: "wide", Label: "Wide", Columns: 100},
		{Value: "narrow", Label: "Narrow", Columns: 64},
	}

	builtinDefaults = map[Field]string{
		FieldFontFamily:      "open-sans",
		FieldFontSize:        "M",
		FieldFontColor:       "black",
		FieldBackgroundColor: "white",
		FieldContentWidth:    "wide",
	}
)

// Builtin returns the catalog shipped with readerstyle.
func Builtin() *Catalog {
	c, err := New(map[Field][]Option{
		FieldFontFamily:      fontFamilyOptions,
		FieldFontSize:        fontSizeOptions,
		FieldFontColor:       fontColors,
		FieldBackgroundColor: backgroundColors,
		FieldContentWidth:    contentWidths,
	}, builtinDefaults)
	if err != nil {
		panic("catalog: invalid built-in catalog: " + err.Error())
	}
	return c
}
