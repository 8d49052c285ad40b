// Package svg renders the dashboard charts as standalone SVG documents.
package svg

// BarOpts customises the bar chart renderer.
type BarOpts struct {
	Title          string
	Description    string
	BarColor       string
	ThresholdColor string
	AxisColor      string
	GridColor      string
	Padding        float64
	TickCount      int
}

// LineOpts customises the line chart renderer.
type LineOpts struct {
	Title       string
	Description string
	StrokeColor string
	AxisColor   string
	GridColor   string
	Padding     float64
	TickCount   int
	ShowDots    bool
	// Dashed marks points rendered with a dashed connector, e.g. simulated data.
	Dashed []bool
	// Overlay is an optional second series, drawn dashed over the same
	// labels, e.g. a forecast.
	Overlay      []float64
	OverlayColor string
}

// PieOpts customises the pie chart renderer.
type PieOpts struct {
	Title       string
	Description string
	Colors      []string
	LabelColor  string
}

// Defaults for the dashboard charts.
const (
	DefaultWidth   = 720
	DefaultHeight  = 300
	DefaultPadding = 32.0
	DefaultTicks   = 5
)
