package carformcntrl

import (
	"embed"
	"html/template"
	"io"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/chup1x/carprice/internal/domain"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

type fieldView struct {
	Name  string
	Label string
	Value string
}

type pageView struct {
	Fields   []fieldView
	HasPrice bool
	Price    string
}

func newPageView(state domain.CarFormState, price *float64) pageView {
	view := pageView{Fields: make([]fieldView, 0, len(domain.Fields))}
	for _, f := range domain.Fields {
		view.Fields = append(view.Fields, fieldView{
			Name:  string(f),
			Label: f.Label(),
			Value: formatFieldValue(state.Get(f)),
		})
	}

	if price != nil {
		view.HasPrice = true
		view.Price = formatPrice(*price)
	}

	return view
}

// A number input cannot display NaN, so non-finite values render empty.
func formatFieldValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}

	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPrice(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return strconv.FormatFloat(p, 'f', 2, 64)
	}

	return decimal.NewFromFloat(p).StringFixed(2)
}

func renderPage(w io.Writer, view pageView) error {
	return pageTemplate.Execute(w, view)
}
