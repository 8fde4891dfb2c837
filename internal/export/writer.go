package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"geodir-transform/internal/models"
)

// importColumns is the GeoDirectory import schema. Column positions are a
// contract with the downstream importer and must not change between runs.
var importColumns = []string{
	"ID", "post_title", "post_content", "post_status", "post_author",
	"post_type", "post_date", "post_modified", "post_tags", "post_category",
	"default_category", "featured", "street", "street2", "city", "region",
	"country", "zip", "latitude", "longitude", "location", "phone",
	"website", "website_url", "email_", "fixed_image", "spotlight_link",
	"featured_image_alignment", "layout", "facebook", "twitter",
	"instagram", "pinterest", "youtube", "linkedin", "trip_advisor",
	"yelp", "other_social_label", "other_social_url", "other_social_icon",
	"enable_post_tabs", "tab_1_description", "youtube_url", "youtube_urls",
	"post_images",
}

// WriteImportCSV renders output records in the import schema. Zero records
// still produce the header row.
func WriteImportCSV(w io.Writer, records []models.OutputRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(importColumns); err != nil {
		return fmt.Errorf("export: failed to write import header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.ID, r.Title, r.Content, r.Status, r.Author,
			r.PostType, r.Date, r.Modified, r.TagIDs, r.CategoryIDs,
			r.DefaultCategory, r.Featured, r.Street, r.Street2, r.City, r.Region,
			r.Country, r.Zip, r.Latitude, r.Longitude, r.Location, r.Phone,
			r.Website, r.SiteURL, r.Email, r.FixedImage, r.SpotlightLink,
			r.ImageAlign, r.Layout, r.Facebook, r.Twitter,
			r.Instagram, r.Pinterest, r.YouTube, r.LinkedIn, r.TripAdvisor,
			r.Yelp, r.OtherSocialLabel, r.OtherSocialURL, r.OtherSocialIcon,
			r.EnableTabs, r.Tab1Description, r.YouTubeURL, r.YouTubeURLs,
			r.PostImages,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("export: failed to write import row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("export: failed to flush import file: %w", err)
	}
	return nil
}
