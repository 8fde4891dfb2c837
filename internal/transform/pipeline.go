package transform

import (
	"sort"

	"geodir-transform/internal/category"
	"geodir-transform/internal/config"
	"geodir-transform/internal/content"
	"geodir-transform/internal/geo"
	"geodir-transform/internal/models"
)

// testModeRows caps output when running with the test flag, enough to eyeball
// the mapping without producing a full file.
const testModeRows = 5

// AddressSource supplies cached street addresses keyed by exact business
// name. Enrichment only ever touches the street column, so the pipeline needs
// nothing more than lookup.
type AddressSource interface {
	Lookup(name string) (string, bool)
}

// Options select which records the pipeline keeps and how geographic fields
// are produced.
type Options struct {
	Categories []string
	Tags       []string
	Layouts    []string
	MatchMode  category.MatchMode

	// FixedCoords, when set, is stamped onto every row instead of looking
	// coordinates up per location.
	FixedCoords *geo.Coordinates

	// DefaultStreet, when non-empty, fills street for rows the cache did
	// not cover.
	DefaultStreet string

	StripBuilderTags bool
	TestMode         bool
}

// Summary reports one run for operator visibility.
type Summary struct {
	RowsRead    int
	RowsEmitted int
	Unmapped    []string
}

// Pipeline turns raw export records into import rows. It holds only
// read-only collaborators, records are processed independently.
type Pipeline struct {
	cfg     config.Config
	mapping *category.Mapping
	cache   AddressSource
	opts    Options

	categories *category.Classifier
	tags       *category.Classifier
	layouts    *category.Classifier
}

// New builds a pipeline. The cache may be an empty store; the mapping is
// required because every row encodes term IDs.
func New(cfg config.Config, mapping *category.Mapping, cache AddressSource, opts Options) *Pipeline {
	return &Pipeline{
		cfg:        cfg,
		mapping:    mapping,
		cache:      cache,
		opts:       opts,
		categories: category.NewClassifier(opts.Categories, opts.MatchMode),
		tags:       category.NewClassifier(opts.Tags, opts.MatchMode),
		layouts:    category.NewClassifier(opts.Layouts, opts.MatchMode),
	}
}

// Run processes all records in scan order. Selection depends only on the
// filters; the cache influences nothing but the street column.
func (p *Pipeline) Run(records []models.RawRecord) ([]models.OutputRecord, Summary) {
	summary := Summary{}
	var out []models.OutputRecord

	for _, record := range records {
		summary.RowsRead++

		if p.opts.TestMode && len(out) >= testModeRows {
			break
		}
		if !p.selects(record) {
			continue
		}

		out = append(out, p.transform(record))
		summary.RowsEmitted++
	}

	summary.Unmapped = sortedKeys(p.mapping.Unmapped)
	return out, summary
}

func (p *Pipeline) selects(record models.RawRecord) bool {
	return p.categories.Matches(record.Categories) &&
		p.tags.Matches(record.Tags) &&
		p.layouts.Matches(record.Layout)
}

func (p *Pipeline) transform(record models.RawRecord) models.OutputRecord {
	website := CleanURL(ChooseBest(record.Website, record.SiteURL))

	body := record.Content
	if p.opts.StripBuilderTags {
		body = content.StripBuilderTags(body)
	}

	categoryIDs := p.mapping.CategoryIDs(record.Categories)
	tagIDs := p.mapping.TagIDs(record.Tags)

	coords := p.coordinates(record)

	street := ""
	if cached, ok := p.cache.Lookup(record.Title); ok {
		street = cached
	}
	if street == "" && p.opts.DefaultStreet != "" {
		street = p.opts.DefaultStreet
	}

	gallery := content.NormalizeGallery(ChooseBest(record.Images, record.Slider))
	gallery = content.CombineGalleries(gallery, content.ExtractJPGs(body))

	enableTabs := "0"
	if record.TabsFilter != "" {
		enableTabs = "1"
	}

	return models.OutputRecord{
		ID:              record.ID,
		Title:           record.Title,
		Content:         body,
		Status:          ChooseBest(record.Status, p.cfg.DefaultStatus),
		Author:          ChooseBest(record.AuthorID, p.cfg.DefaultAuthor),
		PostType:        p.cfg.PostType,
		Date:            record.Date,
		Modified:        record.ModifiedDate,
		TagIDs:          tagIDs,
		CategoryIDs:     categoryIDs,
		DefaultCategory: category.FirstID(categoryIDs),
		Featured:        "0",

		Street:    street,
		Street2:   "",
		City:      p.cfg.City,
		Region:    p.cfg.Region,
		Country:   p.cfg.Country,
		Zip:       "",
		Latitude:  coords.Lat,
		Longitude: coords.Lng,
		Location:  record.Location,

		Phone:   FormatPhone(record.Phone),
		Website: website,
		SiteURL: website,
		Email:   record.Email,

		FixedImage:    CleanURL(record.FixedImage),
		SpotlightLink: CleanURL(record.SpotlightLink),
		ImageAlign:    record.ImageAlign,
		Layout:        record.Layout,

		Facebook:    SocialURL(Facebook, record.Facebook),
		Twitter:     SocialURL(Twitter, record.Twitter),
		Instagram:   SocialURL(Instagram, record.Instagram),
		Pinterest:   SocialURL(Pinterest, record.Pinterest),
		YouTube:     SocialURL(YouTube, record.YouTube),
		LinkedIn:    SocialURL(LinkedIn, record.LinkedIn),
		TripAdvisor: SocialURL(TripAdvisor, record.TripAdvisor),
		Yelp:        SocialURL(Yelp, record.Yelp),

		OtherSocialLabel: record.OtherSocialLabel,
		OtherSocialURL:   CleanURL(record.OtherSocialURL),
		OtherSocialIcon:  record.OtherSocialIcon,

		EnableTabs:      enableTabs,
		Tab1Description: record.Tab1Name,

		YouTubeURL:  "",
		YouTubeURLs: content.ExtractYouTube(body),
		PostImages:  gallery,
	}
}

func (p *Pipeline) coordinates(record models.RawRecord) geo.Coordinates {
	if p.opts.FixedCoords != nil {
		return *p.opts.FixedCoords
	}
	return geo.LookupOrDefault(record.Location)
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
