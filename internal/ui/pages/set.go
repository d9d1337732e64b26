package pages

import "github.com/llehouerou/clubview/internal/route"

// Set holds the routed pages of the site.
type Set struct {
	site    Site
	pages   map[string]Page
	gallery *GalleryPage
}

// NewSet builds every page for site; gallery serves the gallery route.
func NewSet(site Site, gallery *GalleryPage) *Set {
	s := &Set{site: site, gallery: gallery, pages: make(map[string]Page)}
	for _, p := range []Page{
		NewHome(site),
		NewExecutive(site),
		NewNewsletters(site),
		gallery,
		NewSponsors(site),
		NewCodeOfEthics(site),
		NewInMemoriam(site),
	} {
		s.pages[p.Path()] = p
	}
	return s
}

// Resolve returns the page for path, or a not-found page.
func (s *Set) Resolve(path string) Page {
	if p, ok := s.pages[route.Normalize(path)]; ok {
		return p
	}
	return NewNotFound(s.site, path)
}

// Gallery returns the gallery page.
func (s *Set) Gallery() *GalleryPage {
	return s.gallery
}

// Each calls fn for every routed page in navigation order.
func (s *Set) Each(fn func(Page)) {
	for _, r := range route.All {
		fn(s.pages[r.Path])
	}
}
