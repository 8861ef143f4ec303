package services

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"studio-backend/internal/models"
	"studio-backend/internal/repositories"
	"studio-backend/internal/storage"
	"studio-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService renders estimates as PDF documents and archives a copy to
// object storage when it is configured.
type ReportService struct {
	EstimateRepo *repositories.InteriorEstimateRepository
	ClientRepo   *repositories.ClientRepository
	Storage      *storage.S3Storage
}

func NewReportService(
	estimateRepo *repositories.InteriorEstimateRepository,
	clientRepo *repositories.ClientRepository,
	store *storage.S3Storage,
) *ReportService {
	return &ReportService{
		EstimateRepo: estimateRepo,
		ClientRepo:   clientRepo,
		Storage:      store,
	}
}

// EstimatePDF renders one interior estimate with its client details.
func (s *ReportService) EstimatePDF(ctx context.Context, estimateID int) ([]byte, error) {
	estimate, err := s.EstimateRepo.Get(ctx, estimateID)
	if err != nil {
		return nil, ErrNotFound
	}
	client, err := s.ClientRepo.Get(ctx, estimate.ClientID)
	if err != nil {
		return nil, fmt.Errorf("client lookup failed: %w", err)
	}

	data, err := renderEstimatePDF(estimate, client)
	if err != nil {
		return nil, err
	}

	// Archival must not block the download.
	if s.Storage != nil {
		key := fmt.Sprintf("estimates/%d/%s.pdf", estimate.ClientID, timeutil.Now().Format("20060102-150405"))
		go func(data []byte) {
			if err := s.Storage.UploadPDF(context.Background(), key, data); err != nil {
				log.Printf("[Report] Failed to archive estimate %d: %v", estimateID, err)
			}
		}(data)
	}

	return data, nil
}

func renderEstimatePDF(e *models.InteriorEstimate, c *models.Client) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Interior Estimate", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Client box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Client Information", "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", c.Name), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Phone: %s", c.Phone), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Location: %s", c.Location), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Estimate: %s", e.EstimateName), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(55, 8, "Material", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Measurement", "1", 0, "L", true, 0, "")
	pdf.CellFormat(35, 8, "Dimensions", "1", 0, "L", true, 0, "")
	pdf.CellFormat(30, 8, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, item := range e.Items {
		pdf.CellFormat(55, 7, item.Material, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, item.Measurement, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 7, dimensionLabel(item), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", item.Rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", item.TotalAmount), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// Totals
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(150, 7, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", e.Subtotal), "1", 1, "R", false, 0, "")
	if e.Discount > 0 {
		label := fmt.Sprintf("Discount (%.2f)", e.Discount)
		if e.DiscountType == models.DiscountPercentage {
			label = fmt.Sprintf("Discount (%.1f%%)", e.Discount)
		}
		pdf.CellFormat(150, 7, label, "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, fmt.Sprintf("%.2f", e.Subtotal-e.TotalAmount), "1", 1, "R", false, 0, "")
	}
	pdf.CellFormat(150, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", e.TotalAmount), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func dimensionLabel(item models.EstimateItem) string {
	switch item.Measurement {
	case models.MeasurementArea:
		return fmt.Sprintf("%.1f x %.1f", item.Width, item.Height)
	case models.MeasurementPieces:
		return fmt.Sprintf("%.0f pcs", item.Count)
	case models.MeasurementRunning, models.MeasurementRunningSqFeet:
		return fmt.Sprintf("%.1f ft", item.Length)
	default:
		return ""
	}
}
