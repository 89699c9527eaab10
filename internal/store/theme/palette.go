package theme

type Palette struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Danger    string
	Dark      string
	Light     string
	Bg        string
	White     string
	Gray      string
	LightGray string
	DarkGray  string
	Border    string
}

var LightPalette = Palette{
	Primary:   "#FF6B6B",
	Secondary: "#4ECDC4",
	Success:   "#2ECC71",
	Warning:   "#F39C12",
	Danger:    "#E74C3C",
	Dark:      "#2C3E50",
	Light:     "#ECF0F1",
	Bg:        "#F8F9FA",
	White:     "#FFFFFF",
	Gray:      "#95A5A6",
	LightGray: "#BDC3C7",
	DarkGray:  "#34495E",
	Border:    "#E0E0E0",
}

// DarkPalette swaps surfaces and text; White is the card background.
var DarkPalette = func() Palette {
	p := LightPalette
	p.Bg = "#121212"
	p.White = "#1E1E1E"
	p.Dark = "#ECF0F1"
	p.Gray = "#BDC3C7"
	p.LightGray = "#34495E"
	p.DarkGray = "#95A5A6"
	p.Border = "#333333"
	return p
}()

func PaletteFor(m Mode) Palette {
	if m == Dark {
		return DarkPalette
	}
	return LightPalette
}
