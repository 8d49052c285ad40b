package svg

import (
	"fmt"
	"html/template"
	"strings"
)

// Line renders a line chart of series against labels. Segments leading
// into a point flagged in opts.Dashed are drawn dashed.
func Line(width, height int, series []float64, labels []string, opts LineOpts) (template.HTML, error) {
	if len(series) == 0 {
		return "", fmt.Errorf("svg: series required")
	}
	if len(series) != len(labels) {
		return "", fmt.Errorf("svg: labels length must match series")
	}
	if len(opts.Dashed) > 0 && len(opts.Dashed) != len(series) {
		return "", fmt.Errorf("svg: dashed length must match series")
	}
	if len(opts.Overlay) > 0 && len(opts.Overlay) != len(series) {
		return "", fmt.Errorf("svg: overlay length must match series")
	}
	f, err := newFrame(width, height, opts.Padding, opts.TickCount)
	if err != nil {
		return "", err
	}

	strokeColor := fallback(opts.StrokeColor, "#10B981")
	axisColor := fallback(opts.AxisColor, "#475569")
	gridColor := fallback(opts.GridColor, "#cbd5e1")
	overlayColor := fallback(opts.OverlayColor, "#A78BFA")

	maxVal := maxOf(series, opts.Overlay)
	scale := f.innerHeight() / maxVal
	step := 0.0
	if len(series) > 1 {
		step = f.innerWidth() / float64(len(series)-1)
	}
	at := func(values []float64, i int) (float64, float64) {
		x := f.padding + f.innerWidth()/2
		if len(values) > 1 {
			x = f.padding + float64(i)*step
		}
		v := values[i]
		if v < 0 {
			v = 0
		}
		return x, f.bottom() - v*scale
	}
	point := func(i int) (float64, float64) { return at(series, i) }

	var b strings.Builder
	f.open(&b, fallback(opts.Title, "Line chart"), fallback(opts.Description, "Trend data"), "line")
	f.grid(&b, maxVal, axisColor, gridColor)

	for i := 1; i < len(series); i++ {
		x1, y1 := point(i - 1)
		x2, y2 := point(i)
		dash := ""
		if len(opts.Dashed) > 0 && opts.Dashed[i] {
			dash = ` stroke-dasharray="6,4"`
		}
		fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="3"%s></line>`,
			x1, y1, x2, y2, strokeColor, dash)
	}
	for i := 1; i < len(opts.Overlay); i++ {
		x1, y1 := at(opts.Overlay, i-1)
		x2, y2 := at(opts.Overlay, i)
		fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="2" stroke-dasharray="5,5"></line>`,
			x1, y1, x2, y2, overlayColor)
	}
	if opts.ShowDots {
		for i := range opts.Overlay {
			x, y := at(opts.Overlay, i)
			fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="4" fill="%s"></circle>`, x, y, overlayColor)
		}
	}
	if opts.ShowDots || len(series) == 1 {
		for i := range series {
			x, y := point(i)
			fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="5" fill="%s"></circle>`, x, y, strokeColor)
		}
	}
	for i, label := range labels {
		x, _ := point(i)
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="%s" font-size="10" text-anchor="middle">%s</text>`,
			x, f.bottom()+14, axisColor, escape(label))
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
