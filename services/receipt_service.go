package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/adjeiboateng/brightkids_backend/configs"
	"github.com/adjeiboateng/brightkids_backend/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"gorm.io/gorm"
)

// GenerateFeeReceipt renders a PDF receipt for a paid fee invoice, uploads it
// to Cloudinary and stores the URL on the invoice. Called in the background
// after promotion; any failure is logged and the invoice simply keeps a nil
// ReceiptURL.
func GenerateFeeReceipt(db *gorm.DB, invoiceNumber string) {
	var invoice models.FeeInvoice
	if err := db.Where("invoice_number = ?", invoiceNumber).First(&invoice).Error; err != nil {
		log.Printf("🔥 Receipt generation: invoice %s not found: %v", invoiceNumber, err)
		return
	}

	htmlData, err := renderReceiptHTML(&invoice)
	if err != nil {
		log.Printf("🔥 Failed to render receipt HTML for %s: %v", invoiceNumber, err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt PDF for %s: %v", invoiceNumber, err)
		return
	}

	uploadURL, err := uploadReceiptToCloudinary(pdfBytes, invoice.InvoiceNumber)
	if err != nil {
		log.Printf("🔥 Failed to upload receipt for %s: %v", invoiceNumber, err)
		return
	}

	invoice.ReceiptURL = &uploadURL
	if err := db.Save(&invoice).Error; err != nil {
		log.Printf("🔥 Failed to store receipt URL for %s: %v", invoiceNumber, err)
		return
	}
	log.Printf("✅ Receipt generated and uploaded for invoice %s.", invoiceNumber)
}

func renderReceiptHTML(invoice *models.FeeInvoice) (string, error) {
	tmpl, err := template.ParseFiles("templates/fee_receipt.html")
	if err != nil {
		return "", err
	}

	data := struct {
		InvoiceNumber string
		StudentName   string
		Term          string
		PayerName     string
		Amount        string
		Reference     string
		PaidDate      string
	}{
		InvoiceNumber: invoice.InvoiceNumber,
		StudentName:   invoice.StudentName,
		Term:          invoice.Term,
		PayerName:     invoice.PayerName,
		Amount:        fmt.Sprintf("GHS %d.%02d", invoice.AmountPesewas/100, invoice.AmountPesewas%100),
		Reference:     invoice.Reference,
		PaidDate:      time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceiptToCloudinary(fileBytes []byte, invoiceNumber string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s", invoiceNumber),
		Folder:       "brightkids_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
