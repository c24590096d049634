package services

import (
	"fmt"
	"os"
	"strings"

	blogRepositories "photo-portfolio-backend/blog/repositories"
	"photo-portfolio-backend/db/models"
	galleryRepositories "photo-portfolio-backend/galleries/repositories"
	imageRepositories "photo-portfolio-backend/images/repositories"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// PageMeta is the head-tag payload the frontend renders for a content page
type PageMeta struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Canonical   string   `json:"canonical"`
	Locale      string   `json:"locale"`
	OGImage     string   `json:"og_image,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

// MetaService builds SEO metadata for galleries, images and blog posts
type MetaService struct {
	GalleryRepo galleryRepositories.GalleryRepository
	ImageRepo   imageRepositories.ImageRepository
	BlogRepo    blogRepositories.BlogPostRepository
}

func NewMetaService(
	galleryRepo galleryRepositories.GalleryRepository,
	imageRepo imageRepositories.ImageRepository,
	blogRepo blogRepositories.BlogPostRepository,
) *MetaService {
	return &MetaService{
		GalleryRepo: galleryRepo,
		ImageRepo:   imageRepo,
		BlogRepo:    blogRepo,
	}
}

func siteName() string {
	if name := os.Getenv("SITE_NAME"); name != "" {
		return name
	}
	return "Photo Portfolio"
}

func baseFrontendURL() string {
	if url := os.Getenv("BASE_FRONTEND_URL"); url != "" {
		return strings.TrimSuffix(url, "/")
	}
	return "http://localhost:3000"
}

// titleCaser returns a caser for the locale. Tamil has no letter case, so
// the caser is effectively a no-op there; English titles get title casing.
func titleCaser(locale models.LocaleCode) cases.Caser {
	if locale == models.LocaleTamil {
		return cases.Title(language.Tamil)
	}
	return cases.Title(language.English)
}

// BuildGalleryMeta builds head metadata for a gallery page
func (s *MetaService) BuildGalleryMeta(slug string, locale models.LocaleCode) (*PageMeta, error) {
	gallery, err := s.GalleryRepo.GetGalleryBySlug(slug)
	if err != nil {
		return nil, err
	}
	if !gallery.Published {
		return nil, fmt.Errorf("gallery with slug '%s' not found", slug)
	}

	caser := titleCaser(locale)
	title := caser.String(gallery.Title.Resolve(locale))

	meta := &PageMeta{
		Title:       fmt.Sprintf("%s | %s", title, siteName()),
		Description: truncateDescription(gallery.Excerpt.Resolve(locale), gallery.Description.Resolve(locale)),
		Canonical:   fmt.Sprintf("%s/%s/galleries/%s", baseFrontendURL(), locale, gallery.Slug),
		Locale:      string(locale),
		Keywords:    gallery.Tags.Resolve(locale),
	}
	if gallery.CoverImage != nil {
		meta.OGImage = gallery.CoverImage.OriginalURL
	}
	return meta, nil
}

// BuildImageMeta builds head metadata for a single image page
func (s *MetaService) BuildImageMeta(slug string, locale models.LocaleCode) (*PageMeta, error) {
	image, err := s.ImageRepo.GetImageBySlug(slug)
	if err != nil {
		return nil, err
	}
	if image.Status != models.StatusPublished {
		return nil, fmt.Errorf("image with slug '%s' not found", slug)
	}

	caser := titleCaser(locale)
	title := caser.String(image.Title.Resolve(locale))

	return &PageMeta{
		Title:       fmt.Sprintf("%s | %s", title, siteName()),
		Description: truncateDescription(image.Caption.Resolve(locale), image.Description.Resolve(locale)),
		Canonical:   fmt.Sprintf("%s/%s/images/%s", baseFrontendURL(), locale, image.Slug),
		Locale:      string(locale),
		OGImage:     image.OriginalURL,
		Keywords:    image.Tags.Resolve(locale),
	}, nil
}

// BuildBlogPostMeta builds head metadata for a blog post page
func (s *MetaService) BuildBlogPostMeta(slug string, locale models.LocaleCode) (*PageMeta, error) {
	post, err := s.BlogRepo.GetBlogPostBySlug(slug)
	if err != nil {
		return nil, err
	}
	if post.Status != models.StatusPublished {
		return nil, fmt.Errorf("blog post with slug '%s' not found", slug)
	}

	caser := titleCaser(locale)
	title := caser.String(post.Title.Resolve(locale))

	meta := &PageMeta{
		Title:       fmt.Sprintf("%s | %s", title, siteName()),
		Description: truncateDescription(post.Excerpt.Resolve(locale), post.Body.Resolve(locale)),
		Canonical:   fmt.Sprintf("%s/%s/journal/%s", baseFrontendURL(), locale, post.Slug),
		Locale:      string(locale),
		Keywords:    post.Tags.Resolve(locale),
	}
	if post.FeaturedImage != nil {
		meta.OGImage = post.FeaturedImage.OriginalURL
	}
	return meta, nil
}

const maxDescriptionRunes = 160

// truncateDescription picks the first non-empty candidate and clips it to
// search-snippet length on a rune boundary.
func truncateDescription(candidates ...string) string {
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		runes := []rune(c)
		if len(runes) <= maxDescriptionRunes {
			return c
		}
		return strings.TrimSpace(string(runes[:maxDescriptionRunes-1])) + "…"
	}
	return ""
}
