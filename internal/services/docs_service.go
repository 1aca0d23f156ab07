package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"travel/internal/domain"
	"travel/internal/domain/models"
	"travel/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders a printable PDF summary of an itinerary.
type DocsService struct {
	Itineraries ItineraryService
	Logger      *slog.Logger
	Loader      func(context.Context, domain.ID) (models.ItineraryGraph, error)
	Now         func() time.Time
}

func (s DocsService) GenerateItinerary(ctx context.Context, id domain.ID) ([]byte, string, error) {
	g, err := s.load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(ctx, s.Logger, "docs", "generate_itinerary", "itinerary document rendered",
		slog.Int64("itinerary_id", int64(id)))
	return buildItineraryPDF(g, s.now())
}

func (s DocsService) load(ctx context.Context, id domain.ID) (models.ItineraryGraph, error) {
	if s.Loader != nil {
		return s.Loader(ctx, id)
	}
	return s.Itineraries.Graph(ctx, id)
}

func (s DocsService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// compressPDF is switched off by tests that inspect the page content stream.
var compressPDF = true

func buildItineraryPDF(g models.ItineraryGraph, printedAt time.Time) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(compressPDF)
	pdf.SetTitle("Itinerary", false)
	// Core fonts are cp1252; names arrive as UTF-8.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "ITINERARY")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Reference : ITN-%d", g.ID),
		fmt.Sprintf("Name      : %s", utils.Fallback(g.Name, "-")),
		fmt.Sprintf("Nights    : %d", g.Nights),
		fmt.Sprintf("Hotel     : %s (%s)", utils.Fallback(g.Hotel.Name, "-"), utils.Fallback(g.Hotel.Location, "-")),
		fmt.Sprintf("Printed   : %s", printedAt.Format("2006-01-02 15:04")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, tr(s))
		pdf.Ln(7)
	}

	section := func(title string, items []string) {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		if len(items) == 0 {
			pdf.Cell(0, 6, "-")
			pdf.Ln(6)
			return
		}
		for i, item := range items {
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d) %s", i+1, item)), "", "", false)
		}
	}

	activities := make([]string, 0, len(g.Activities))
	for _, a := range g.Activities {
		activities = append(activities, fmt.Sprintf("%s, %s", a.Name, utils.Fallback(a.Location, "-")))
	}
	transfers := make([]string, 0, len(g.Transfers))
	for _, t := range g.Transfers {
		transfers = append(transfers, t.Label())
	}
	section("Activities", activities)
	section("Transfers", transfers)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("ITINERARY_%d_%s.pdf", g.ID, utils.SafeFilenamePart(strings.ToUpper(g.Name)))
	return buf.Bytes(), filename, nil
}
