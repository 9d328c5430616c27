package handler

import (
	"encoding/xml"
	"net/http"
	"sort"
	"strings"

	"pesona/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlugLister is the slice of a content repository the sitemap needs.
type SlugLister func() ([]string, error)

// SitemapHandler generates sitemap.xml and robots.txt. Each published
// content item contributes one URL per supported locale.
type SitemapHandler struct {
	baseURL  string
	sections map[string]SlugLister // URL path segment -> published slugs
	log      *zap.Logger
}

func NewSitemapHandler(baseURL string, sections map[string]SlugLister, log *zap.Logger) *SitemapHandler {
	return &SitemapHandler{baseURL: strings.TrimRight(baseURL, "/"), sections: sections, log: log}
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

var staticPaths = []string{"", "destinations", "events", "culinary", "accommodations", "transport", "articles"}

func (h *SitemapHandler) Sitemap(c *gin.Context) {
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, locale := range domain.Locales {
		for _, p := range staticPaths {
			set.URLs = append(set.URLs, sitemapURL{Loc: h.join(locale, p)})
		}
	}
	sections := make([]string, 0, len(h.sections))
	for section := range h.sections {
		sections = append(sections, section)
	}
	sort.Strings(sections)
	for _, section := range sections {
		slugs, err := h.sections[section]()
		if err != nil {
			h.log.Error("sitemap slugs failed", zap.String("section", section), zap.Error(err))
			continue
		}
		for _, locale := range domain.Locales {
			for _, s := range slugs {
				set.URLs = append(set.URLs, sitemapURL{Loc: h.join(locale, section+"/"+s)})
			}
		}
	}
	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		respondError(c, http.StatusInternalServerError, "sitemap generation failed")
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}

func (h *SitemapHandler) join(locale, path string) string {
	if path == "" {
		return h.baseURL + "/" + locale
	}
	return h.baseURL + "/" + locale + "/" + path
}

func (h *SitemapHandler) Robots(c *gin.Context) {
	body := "User-agent: *\nDisallow: /admin\nDisallow: /api\n\nSitemap: " + h.baseURL + "/sitemap.xml\n"
	c.String(http.StatusOK, body)
}
