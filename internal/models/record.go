package models

// RawRecord is a typed view over one row of the directory export. Readers
// populate it from a header-name lookup, so column order and extra columns in
// the source file do not matter. A column that is absent from the export
// yields an empty string, never a failure.
type RawRecord struct {
	ID           string
	Title        string
	Content      string
	Status       string
	AuthorID     string
	Date         string
	ModifiedDate string
	Categories   string
	Tags         string

	Location string
	Phone    string
	Email    string
	Website  string
	SiteURL  string

	Images        string
	Slider        string
	FixedImage    string
	SpotlightLink string
	ImageAlign    string
	Layout        string

	Facebook    string
	Twitter     string
	Instagram   string
	Pinterest   string
	YouTube     string
	LinkedIn    string
	TripAdvisor string
	Yelp        string

	OtherSocialLabel string
	OtherSocialURL   string
	OtherSocialIcon  string

	TabsFilter string
	Tab1Name   string
}

// OutputRecord is one row of the GeoDirectory import file. Street is the only
// field whose value depends on the address cache; City, Region and Country are
// fixed destination constants and Zip is always empty.
type OutputRecord struct {
	ID              string
	Title           string
	Content         string
	Status          string
	Author          string
	PostType        string
	Date            string
	Modified        string
	TagIDs          string
	CategoryIDs     string
	DefaultCategory string
	Featured        string

	Street    string
	Street2   string
	City      string
	Region    string
	Country   string
	Zip       string
	Latitude  string
	Longitude string
	Location  string

	Phone   string
	Website string
	SiteURL string
	Email   string

	FixedImage    string
	SpotlightLink string
	ImageAlign    string
	Layout        string

	Facebook    string
	Twitter     string
	Instagram   string
	Pinterest   string
	YouTube     string
	LinkedIn    string
	TripAdvisor string
	Yelp        string

	OtherSocialLabel string
	OtherSocialURL   string
	OtherSocialIcon  string

	EnableTabs      string
	Tab1Description string

	YouTubeURL  string
	YouTubeURLs string
	PostImages  string
}

// BusinessListing is the deduplicated projection of one business used for the
// manual address-research worklist.
type BusinessListing struct {
	Name     string
	Location string
	Phone    string
	Website  string
}
