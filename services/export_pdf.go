package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateQuotePDF creates the quotation PDF using maroto/v2 and returns
// the raw bytes.
func GenerateQuotePDF(data QuoteExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addQuoteHeader(m, data)
	addQuoteTableHeader(m)
	for _, r := range data.Rows {
		addQuoteTableRow(m, data, r)
	}
	addQuoteCategorySummary(m, data)
	addQuoteTotals(m, data)
	addQuoteTerms(m, data)
	addQuoteFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quotation PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addQuoteHeader adds the agency name, document title, reference and date.
func addQuoteHeader(m core.Maroto, data QuoteExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(6).Add(
				text.New(data.AgencyName, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(data.Title, props.Text{
					Size:  14,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: &props.Color{Red: 33, Green: 37, Blue: 41},
				}),
			),
		),
	)

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(data.AgencyEmail, props.Text{
					Size:  8,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Ref: %s  |  Date: %s", data.Reference, data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addQuoteTableHeader adds the column header row for the items table.
func addQuoteTableHeader(m core.Maroto) {
	headerBg := &props.Color{Red: 33, Green: 37, Blue: 41}
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	headerCell := props.Cell{BackgroundColor: headerBg}

	m.AddRows(
		row.New(8).Add(
			col.New(1).Add(text.New("#", headerText)).WithStyle(&headerCell),
			col.New(4).Add(text.New("Work Item", headerTextLeft)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Category", headerTextLeft)).WithStyle(&headerCell),
			col.New(1).Add(text.New("Hours", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Rate", headerText)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Amount", headerText)).WithStyle(&headerCell),
		),
	)
}

// addQuoteTableRow adds one selected item. Overridden hour estimates get a
// marker so the client can see which figures were hand-adjusted.
func addQuoteTableRow(m core.Maroto, data QuoteExportData, r QuoteExportRow) {
	baseText := props.Text{Size: 8, Align: align.Center}
	leftText := baseText
	leftText.Align = align.Left
	rightText := baseText
	rightText.Align = align.Right

	var cellStyle *props.Cell
	if r.Index%2 == 0 {
		bg := &props.Color{Red: 245, Green: 245, Blue: 245}
		cellStyle = &props.Cell{BackgroundColor: bg}
	}

	hours := FormatHours(r.Hours)
	if r.Overridden {
		hours += " *"
	}

	colIndex := col.New(1).Add(text.New(fmt.Sprintf("%d", r.Index), baseText))
	colName := col.New(4).Add(text.New(r.Name, leftText))
	colCategory := col.New(2).Add(text.New(r.Category, leftText))
	colHours := col.New(1).Add(text.New(hours, rightText))
	colRate := col.New(2).Add(text.New(FormatMoney(r.Rate, data.Currency), rightText))
	colAmount := col.New(2).Add(text.New(FormatMoney(r.Amount, data.Currency), rightText))

	if cellStyle != nil {
		colIndex = colIndex.WithStyle(cellStyle)
		colName = colName.WithStyle(cellStyle)
		colCategory = colCategory.WithStyle(cellStyle)
		colHours = colHours.WithStyle(cellStyle)
		colRate = colRate.WithStyle(cellStyle)
		colAmount = colAmount.WithStyle(cellStyle)
	}

	m.AddRows(row.New(7).Add(colIndex, colName, colCategory, colHours, colRate, colAmount))
}

// addQuoteCategorySummary adds the per-category rollup block.
func addQuoteCategorySummary(m core.Maroto, data QuoteExportData) {
	if len(data.Summary) == 0 {
		return
	}

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New("BREAKDOWN BY CATEGORY", props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	rowText := props.Text{Size: 8, Align: align.Left}
	rightText := rowText
	rightText.Align = align.Right

	for _, s := range data.Summary {
		m.AddRows(
			row.New(6).Add(
				col.New(5).Add(text.New(s.Category, rowText)),
				col.New(2).Add(text.New(fmt.Sprintf("%d items", s.Items), rightText)),
				col.New(2).Add(text.New(FormatHours(s.Hours), rightText)),
				col.New(3).Add(text.New(FormatMoney(s.Cost, data.Currency), rightText)),
			),
		)
	}
}

// addQuoteTotals adds the totals block: hours, subtotal, tax, grand total
// and the derived calendar estimate.
func addQuoteTotals(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))

	summaryBg := &props.Color{Red: 240, Green: 240, Blue: 240}
	summaryCell := &props.Cell{BackgroundColor: summaryBg}

	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}

	addLine := func(label, value string) {
		m.AddRows(
			row.New(8).Add(
				col.New(8).Add(text.New(label, labelStyle)).WithStyle(summaryCell),
				col.New(4).Add(text.New(value, valueStyle)).WithStyle(summaryCell),
			),
		)
	}

	addLine("Total Estimated Hours", FormatHours(data.TotalHours))
	addLine("Subtotal", FormatMoney(data.Subtotal, data.Currency))
	addLine(fmt.Sprintf("Tax / Markup (%.1f%%)", data.TaxPercent), FormatMoney(data.TaxAmount, data.Currency))
	addLine("Total", FormatMoney(data.Total, data.Currency))
	addLine(
		fmt.Sprintf("Estimated Duration (%d h/day)", data.HoursPerDay),
		fmt.Sprintf("%d working days", data.EstimatedDays),
	)
}

// addQuoteTerms prints the standard terms list.
func addQuoteTerms(m core.Maroto, data QuoteExportData) {
	if len(data.Terms) == 0 {
		return
	}

	m.AddRows(row.New(8))
	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New("TERMS & CONDITIONS", props.Text{
					Size:  9,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	for i, term := range data.Terms {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(
					text.New(fmt.Sprintf("%d. %s", i+1, term), props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 80, Green: 80, Blue: 80},
					}),
				),
			),
		)
	}
}

// addQuoteFooter adds the generated line and the override legend.
func addQuoteFooter(m core.Maroto, data QuoteExportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(5).Add(
			col.New(12).Add(
				text.New("* hour figure adjusted from the default estimate", props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 140, Green: 140, Blue: 140},
				}),
			),
		),
	)
	m.AddRows(
		row.New(5).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Generated on %s", data.CreatedDate), props.Text{
					Size:  7,
					Align: align.Left,
					Color: &props.Color{Red: 140, Green: 140, Blue: 140},
				}),
			),
		),
	)
}
