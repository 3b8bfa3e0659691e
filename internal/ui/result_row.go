package ui

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/dishalabs/disha/internal/model"
)

// createResultRow creates the template widget for one result list row
func createResultRow() fyne.CanvasObject {
	title := widget.NewLabel("")
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Truncation = fyne.TextTruncateEllipsis

	meta := widget.NewLabel("")
	meta.Truncation = fyne.TextTruncateEllipsis

	return container.NewVBox(title, meta)
}

// updateResultRow fills a row template with one video result
func updateResultRow(item fyne.CanvasObject, v model.VideoResult) {
	box, ok := item.(*fyne.Container)
	if !ok || len(box.Objects) < 2 {
		return
	}

	title, ok := box.Objects[0].(*widget.Label)
	if !ok {
		return
	}
	meta, ok := box.Objects[1].(*widget.Label)
	if !ok {
		return
	}

	title.SetText(v.GetDisplayTitle())
	meta.SetText(formatResultMeta(v))
}

// formatResultMeta renders the "source · duration · year" line for a result
func formatResultMeta(v model.VideoResult) string {
	parts := make([]string, 0, 3)

	if v.Source != "" {
		parts = append(parts, v.Source)
	}

	parts = append(parts, v.DurationString())

	if v.Year > 0 {
		parts = append(parts, strconv.Itoa(v.Year))
	}

	return strings.Join(parts, MiddleDotSeparator)
}
