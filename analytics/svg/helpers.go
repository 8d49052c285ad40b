package svg

import (
	"fmt"
	"html/template"
	"math"
	"strings"
)

type frame struct {
	width, height int
	padding       float64
	ticks         int
}

func newFrame(width, height int, padding float64, ticks int) (frame, error) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if padding <= 0 {
		padding = DefaultPadding
	}
	if ticks <= 0 {
		ticks = DefaultTicks
	}
	f := frame{width: width, height: height, padding: padding, ticks: ticks}
	if f.innerWidth() <= 0 || f.innerHeight() <= 0 {
		return frame{}, fmt.Errorf("svg: viewport too small")
	}
	return f, nil
}

func (f frame) innerWidth() float64  { return float64(f.width) - 2*f.padding }
func (f frame) innerHeight() float64 { return float64(f.height) - 2*f.padding }
func (f frame) bottom() float64      { return f.padding + f.innerHeight() }

// open writes the svg element with its accessible title and description.
func (f frame) open(b *strings.Builder, title, desc, kind string) {
	titleID := makeID(title, kind+"-title")
	descID := makeID(title, kind+"-desc")
	fmt.Fprintf(b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" role="img" aria-labelledby="%s %s">`, f.width, f.height, titleID, descID)
	fmt.Fprintf(b, `<title id="%s">%s</title>`, titleID, escape(title))
	fmt.Fprintf(b, `<desc id="%s">%s</desc>`, descID, escape(desc))
}

// grid draws horizontal grid lines with value ticks from 0 to maxVal.
func (f frame) grid(b *strings.Builder, maxVal float64, axisColor, gridColor string) {
	for i := 0; i <= f.ticks; i++ {
		ratio := float64(i) / float64(f.ticks)
		y := f.bottom() - ratio*f.innerHeight()
		fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.5" stroke-dasharray="3,3" aria-hidden="true"></line>`, f.padding, y, f.padding+f.innerWidth(), y, gridColor)
		fmt.Fprintf(b, `<text x="%.2f" y="%.2f" fill="%s" font-size="10" text-anchor="end">%s</text>`, f.padding-6, y+4, axisColor, escape(formatTick(maxVal*ratio)))
	}
	fmt.Fprintf(b, `<g stroke="%s">`, axisColor)
	fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-width="1"></line>`, f.padding, f.padding, f.padding, f.bottom())
	fmt.Fprintf(b, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke-width="1"></line>`, f.padding, f.bottom(), f.padding+f.innerWidth(), f.bottom())
	b.WriteString("</g>")
}

var escape = template.HTMLEscapeString

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

// maxOf returns the largest value, never below zero. An all-zero series
// yields 1 so the scale stays finite.
func maxOf(series ...[]float64) float64 {
	maxVal := 0.0
	for _, s := range series {
		for _, v := range s {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	if maxVal < 1e-9 {
		return 1
	}
	return maxVal
}

func makeID(base, suffix string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, strings.ToLower(strings.TrimSpace(base)))
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "chart"
	}
	return cleaned + "-" + suffix
}

func formatTick(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	case math.Abs(v-math.Round(v)) < 1e-9:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}
