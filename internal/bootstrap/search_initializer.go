package bootstrap

import (
	"context"

	blogRepositories "photo-portfolio-backend/blog/repositories"
	"photo-portfolio-backend/config"
	galleryRepositories "photo-portfolio-backend/galleries/repositories"
	imageRepositories "photo-portfolio-backend/images/repositories"
	searchRepositories "photo-portfolio-backend/search/repositories"

	"go.uber.org/zap"
)

// IndexSearchData rebuilds every bleve index from the database: published
// galleries, published images and published blog posts.
func IndexSearchData(
	ctx context.Context,
	galleryRepo galleryRepositories.GalleryRepository,
	imageRepo imageRepositories.ImageRepository,
	blogRepo blogRepositories.BlogPostRepository,
	searchRepo searchRepositories.SearchRepositoryInterface,
) {
	// Delete all indexes first
	err := searchRepo.DeleteAllIndices(ctx)
	if err != nil {
		config.Logger.Error("Error deleting all indices, aborting reindex", zap.Error(err))
		return
	}

	// Index galleries
	if galleries, err := galleryRepo.GetAllPublishedGalleries(); err != nil {
		config.Logger.Error("Error fetching galleries for Bleve indexing", zap.Error(err))
	} else if err := searchRepo.IndexExistingGalleries(galleries); err != nil {
		config.Logger.Error("Failed to index galleries into Bleve", zap.Error(err))
	}

	// Index images
	if images, err := imageRepo.GetAllPublishedImages(); err != nil {
		config.Logger.Error("Error fetching images for Bleve indexing", zap.Error(err))
	} else if err := searchRepo.IndexExistingImages(images); err != nil {
		config.Logger.Error("Failed to index images into Bleve", zap.Error(err))
	}

	// Index blog posts
	if posts, err := blogRepo.GetAllPublishedBlogPosts(); err != nil {
		config.Logger.Error("Error fetching blog posts for Bleve indexing", zap.Error(err))
	} else if err := searchRepo.IndexExistingBlogPosts(posts); err != nil {
		config.Logger.Error("Failed to index blog posts into Bleve", zap.Error(err))
	}
}
