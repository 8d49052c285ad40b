package svg

import (
	"fmt"
	"html/template"
	"strings"
)

// Bars renders one bar per label. A non-empty threshold series draws a
// marker line across each bar, used for the reorder level.
func Bars(width, height int, values, threshold []float64, labels []string, opts BarOpts) (template.HTML, error) {
	if len(values) == 0 {
		return "", fmt.Errorf("svg: values required")
	}
	if len(values) != len(labels) {
		return "", fmt.Errorf("svg: labels length must match values")
	}
	if len(threshold) > 0 && len(threshold) != len(values) {
		return "", fmt.Errorf("svg: threshold length must match values")
	}
	f, err := newFrame(width, height, opts.Padding, opts.TickCount)
	if err != nil {
		return "", err
	}

	axisColor := fallback(opts.AxisColor, "#475569")
	gridColor := fallback(opts.GridColor, "#cbd5e1")
	barColor := fallback(opts.BarColor, "#3B82F6")
	thresholdColor := fallback(opts.ThresholdColor, "#EF4444")

	maxVal := maxOf(values, threshold)
	scale := f.innerHeight() / maxVal
	slot := f.innerWidth() / float64(len(values))
	barWidth := slot * 0.6

	var b strings.Builder
	f.open(&b, fallback(opts.Title, "Bar chart"), fallback(opts.Description, "Quantities per item"), "bar")
	f.grid(&b, maxVal, axisColor, gridColor)

	for i, v := range values {
		if v < 0 {
			v = 0
		}
		x := f.padding + float64(i)*slot + (slot-barWidth)/2
		h := v * scale
		fmt.Fprintf(&b, `<rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="3" fill="%s" aria-label="%s"></rect>`,
			x, f.bottom()-h, barWidth, h, barColor, escape(fmt.Sprintf("%s: %s", labels[i], formatTick(v))))
		if len(threshold) > 0 {
			ty := f.bottom() - threshold[i]*scale
			fmt.Fprintf(&b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="2"></line>`,
				x, ty, x+barWidth, ty, thresholdColor)
		}
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="%s" font-size="10" text-anchor="middle">%s</text>`,
			x+barWidth/2, f.bottom()+14, axisColor, escape(labels[i]))
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
