package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

// Pie renders a pie chart with one labelled slice per value, showing each
// slice's share as a whole percentage.
func Pie(width, height int, values []float64, labels []string, opts PieOpts) (template.HTML, error) {
	if len(values) == 0 {
		return "", fmt.Errorf("svg: values required")
	}
	if len(values) != len(labels) {
		return "", fmt.Errorf("svg: labels length must match values")
	}
	total := 0.0
	for _, v := range values {
		if v < 0 {
			return "", fmt.Errorf("svg: pie values must be non-negative")
		}
		total += v
	}
	if total <= 0 {
		return "", fmt.Errorf("svg: pie total must be positive")
	}
	f, err := newFrame(width, height, 0, 0)
	if err != nil {
		return "", err
	}

	colors := opts.Colors
	if len(colors) == 0 {
		colors = []string{"#3B82F6", "#8B5CF6", "#10B981", "#F59E0B", "#EF4444", "#6366F1", "#EC4899", "#14B8A6"}
	}
	labelColor := fallback(opts.LabelColor, "#334155")

	cx := float64(f.width) / 2
	cy := float64(f.height) / 2
	radius := math.Min(cx, cy) - f.padding
	if radius <= 0 {
		return "", fmt.Errorf("svg: viewport too small")
	}

	var b strings.Builder
	f.open(&b, fallback(opts.Title, "Pie chart"), fallback(opts.Description, "Distribution"), "pie")

	angle := -math.Pi / 2
	for i, v := range values {
		if v == 0 {
			continue
		}
		share := v / total
		sweep := share * 2 * math.Pi
		color := colors[i%len(colors)]
		label := escape(fmt.Sprintf("%s %.0f%%", labels[i], share*100))

		if share >= 1-1e-9 {
			fmt.Fprintf(&b, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" aria-label="%s"></circle>`, cx, cy, radius, color, label)
		} else {
			x1, y1 := cx+radius*math.Cos(angle), cy+radius*math.Sin(angle)
			x2, y2 := cx+radius*math.Cos(angle+sweep), cy+radius*math.Sin(angle+sweep)
			large := 0
			if sweep > math.Pi {
				large = 1
			}
			fmt.Fprintf(&b, `<path d="M%.2f %.2f L%.2f %.2f A%.2f %.2f 0 %d 1 %.2f %.2f Z" fill="%s" aria-label="%s"></path>`,
				cx, cy, x1, y1, radius, radius, large, x2, y2, color, label)
		}

		mid := angle + sweep/2
		lx, ly := cx+radius*0.65*math.Cos(mid), cy+radius*0.65*math.Sin(mid)
		fmt.Fprintf(&b, `<text x="%.2f" y="%.2f" fill="%s" font-size="10" text-anchor="middle">%s</text>`, lx, ly, labelColor, label)
		angle += sweep
	}

	b.WriteString("</svg>")
	return template.HTML(b.String()), nil
}
