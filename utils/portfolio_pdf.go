package utils

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"photo-portfolio-backend/db/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PortfolioImageData holds one image row for the portfolio template
type PortfolioImageData struct {
	Title    string
	Caption  string
	Location string
	Style    string
	URL      string
}

// PortfolioPDFData holds all data for the gallery portfolio template
type PortfolioPDFData struct {
	GalleryTitle       string
	GalleryDescription string
	Locale             string
	PrintDate          string
	ImageCount         int
	Images             []PortfolioImageData
	SiteName           string
}

// GenerateGalleryPortfolio generates a printable PDF for the given gallery,
// with every localized field resolved for the requested locale.
func GenerateGalleryPortfolio(gallery models.Gallery, locale models.LocaleCode, filename string) (string, error) {
	pdfData := prepareGalleryPortfolioData(gallery, locale)

	htmlContent, err := generateHTMLGalleryPortfolio(pdfData)
	if err != nil {
		return "", fmt.Errorf("failed to generate HTML gallery portfolio: %v", err)
	}

	pdfPath, err := generateGalleryPortfolioPDFFromHTML(htmlContent, filename)
	if err != nil {
		return "", fmt.Errorf("failed to generate PDF: %v", err)
	}

	return pdfPath, nil
}

// prepareGalleryPortfolioData prepares the data structure for the template
func prepareGalleryPortfolioData(gallery models.Gallery, locale models.LocaleCode) PortfolioPDFData {
	images := make([]PortfolioImageData, 0, len(gallery.Images))
	for _, img := range gallery.Images {
		if img.Status != models.StatusPublished {
			continue
		}

		location := ""
		if img.LocationName != nil {
			location = *img.LocationName
		}
		if img.Country != nil && location != "" {
			location = fmt.Sprintf("%s, %s", location, *img.Country)
		} else if img.Country != nil {
			location = *img.Country
		}

		images = append(images, PortfolioImageData{
			Title:    img.Title.Resolve(locale),
			Caption:  img.Caption.Resolve(locale),
			Location: location,
			Style:    string(img.Style),
			URL:      img.OriginalURL,
		})
	}

	siteName := os.Getenv("SITE_NAME")
	if siteName == "" {
		siteName = "Photo Portfolio"
	}

	return PortfolioPDFData{
		GalleryTitle:       gallery.Title.Resolve(locale),
		GalleryDescription: gallery.Description.Resolve(locale),
		Locale:             string(locale),
		PrintDate:          time.Now().Format("2 January 2006"),
		ImageCount:         len(images),
		Images:             images,
		SiteName:           siteName,
	}
}

// generateHTMLGalleryPortfolio generates HTML from template
func generateHTMLGalleryPortfolio(data PortfolioPDFData) (string, error) {
	funcMap := template.FuncMap{
		"add1": func(i int) int {
			return i + 1
		},
	}

	tmpl, err := template.New("gallery-portfolio.html").Funcs(funcMap).ParseFiles("templates/gallery-portfolio.html")
	if err != nil {
		return "", fmt.Errorf("failed to parse gallery portfolio template: %v", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute gallery portfolio template: %v", err)
	}

	return buf.String(), nil
}

// generateGalleryPortfolioPDFFromHTML generates PDF from HTML and saves to file
func generateGalleryPortfolioPDFFromHTML(htmlContent string, filename string) (string, error) {
	var pdfBuffer bytes.Buffer
	err := GenerateGalleryPortfolioPDF(htmlContent, &pdfBuffer)
	if err != nil {
		return "", err
	}

	dirPath := "./public/portfolios"
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(dirPath, filename)
	if err := os.WriteFile(fullPath, pdfBuffer.Bytes(), 0644); err != nil {
		return "", err
	}

	return "public/portfolios/" + filename, nil
}

// GenerateGalleryPortfolioPDF generates portrait PDF from HTML content
func GenerateGalleryPortfolioPDF(htmlContent string, w io.Writer) error {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(htmlContent))
	})

	server := &http.Server{Handler: mux}
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		return err
	}
	defer listener.Close()

	go server.Serve(listener)
	defer server.Close()

	port := listener.Addr().(*net.TCPAddr).Port
	url := fmt.Sprintf("http://localhost:%d", port)

	var buf []byte
	err = chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(2*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).   // A4 Portrait width
				WithPaperHeight(11.69). // A4 Portrait height
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				WithMarginLeft(0.4).
				WithMarginRight(0.4).
				WithLandscape(false).
				WithPreferCSSPageSize(false).
				WithDisplayHeaderFooter(false).
				Do(ctx)
			return err
		}),
	)

	if err != nil {
		return err
	}

	_, err = w.Write(buf)
	return err
}
