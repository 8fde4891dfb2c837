package content

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Gallery encoding expected by the directory importer: each entry is
// URL|ID|TITLE|DESCRIPTION with the trailing fields left empty, entries
// joined by "::".
const (
	entryFieldSep = "|"
	entrySep      = "::"
)

// EncodeGallery renders a list of media URLs in the importer's gallery
// encoding. An empty list encodes to "".
func EncodeGallery(urls []string) string {
	if len(urls) == 0 {
		return ""
	}
	entries := make([]string, len(urls))
	for i, url := range urls {
		entries[i] = strings.Join([]string{url, "", "", ""}, entryFieldSep)
	}
	return strings.Join(entries, entrySep)
}

// CombineGalleries joins two already-encoded gallery strings, tolerating
// either being empty.
func CombineGalleries(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + entrySep + b
	}
}

var bareURLPattern = regexp.MustCompile(`https?://[^\s",\]]+`)

var jpgURLPattern = regexp.MustCompile(`(?i)(?:src=|href=)?["']?(https?://[^\s"'<>]+\.jpe?g)["']?`)

// resolutionSuffix matches WordPress-style scaled-image names like
// photo-1024x768.jpg.
var resolutionSuffix = regexp.MustCompile(`(?i)-(\d+)x(\d+)(\.jpe?g)$`)

// preferredWidth is the site's full-content rendition; when no suffixless
// master exists for an image it is the best stand-in.
const preferredWidth = 1440

// ExtractJPGs collects JPEG URLs referenced by listing content and returns
// them gallery-encoded. Scaled renditions of the same image collapse to one
// master: the suffixless URL when present, else the 1440-wide rendition, else
// the widest.
func ExtractJPGs(html string) string {
	if html == "" {
		return ""
	}

	var found []string
	seen := map[string]struct{}{}
	add := func(url string) {
		if url == "" || !jpgURLPattern.MatchString(url) {
			return
		}
		if _, dup := seen[url]; dup {
			return
		}
		seen[url] = struct{}{}
		found = append(found, url)
	}

	// Parse as a document first so attribute values survive markup quirks,
	// then regex-sweep for URLs living in plain text or block payloads.
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		doc.Find("img[src], a[href]").Each(func(_ int, sel *goquery.Selection) {
			if src, ok := sel.Attr("src"); ok {
				add(src)
			}
			if href, ok := sel.Attr("href"); ok {
				add(href)
			}
		})
	}
	for _, m := range jpgURLPattern.FindAllStringSubmatch(html, -1) {
		add(m[1])
	}

	if len(found) == 0 {
		return ""
	}

	return EncodeGallery(selectMasters(found))
}

type variant struct {
	url   string
	width int // 0 means no resolution suffix
}

// selectMasters groups scaled renditions under their base name and keeps one
// URL per image, preserving first-seen order of the groups.
func selectMasters(urls []string) []string {
	groups := map[string][]variant{}
	var order []string

	for _, url := range urls {
		base := url
		width := 0
		if m := resolutionSuffix.FindStringSubmatch(url); m != nil {
			width, _ = strconv.Atoi(m[1])
			base = resolutionSuffix.ReplaceAllString(url, "$3")
		}
		if _, ok := groups[base]; !ok {
			order = append(order, base)
		}
		groups[base] = append(groups[base], variant{url: url, width: width})
	}

	var masters []string
	seen := map[string]struct{}{}
	for _, base := range order {
		variants := groups[base]
		sort.SliceStable(variants, func(i, j int) bool {
			vi, vj := variants[i], variants[j]
			if (vi.width == 0) != (vj.width == 0) {
				return vi.width == 0
			}
			if (vi.width == preferredWidth) != (vj.width == preferredWidth) {
				return vi.width == preferredWidth
			}
			return vi.width > vj.width
		})

		master := variants[0].url
		key := strings.ToLower(master)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		masters = append(masters, master)
	}

	return masters
}

// YouTube references appear as embeds, watch links and short links.
var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:https?:)?//(?:www\.)?youtube\.com/embed/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?i)(?:https?:)?//(?:www\.)?youtube\.com/watch\?v=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?i)(?:https?:)?//youtu\.be/([a-zA-Z0-9_-]+)`),
}

// ExtractYouTube collects YouTube video references from listing content and
// returns them gallery-encoded as canonical embed URLs, sorted by video id
// for stable output.
func ExtractYouTube(html string) string {
	if html == "" {
		return ""
	}

	ids := map[string]struct{}{}
	for _, pattern := range youtubePatterns {
		for _, m := range pattern.FindAllStringSubmatch(html, -1) {
			ids[m[1]] = struct{}{}
		}
	}
	if len(ids) == 0 {
		return ""
	}

	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	urls := make([]string, len(sorted))
	for i, id := range sorted {
		urls[i] = "https://www.youtube.com/embed/" + id
	}
	return EncodeGallery(urls)
}

// NormalizeGallery converts a raw gallery column into the importer encoding.
// The export mixes formats: single URLs, comma lists, single-pipe lists,
// JSON-ish arrays, and values already encoded.
func NormalizeGallery(field string) string {
	field = strings.TrimSpace(field)
	if field == "" {
		return ""
	}

	var urls []string
	switch {
	case strings.Contains(field, entrySep):
		// Already encoded.
		return field
	// The array check must precede the pipe and comma checks: a multi-URL
	// array contains commas, and taking the comma branch would leak the
	// quotes and brackets into the output.
	case strings.HasPrefix(field, "["):
		urls = bareURLPattern.FindAllString(field, -1)
	case strings.Contains(field, "|"):
		urls = splitAndTrim(field, "|")
	case strings.Contains(field, ",") && strings.Contains(field, "http"):
		urls = splitAndTrim(field, ",")
	default:
		urls = []string{field}
	}

	return EncodeGallery(urls)
}

func splitAndTrim(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
