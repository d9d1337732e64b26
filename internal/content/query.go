package content

import (
	"math"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
)

// MainCharityType marks the charity featured in the contributions total.
const MainCharityType = "Main Charity"

// FallbackContributions is shown when no main charity reports a total.
const FallbackContributions = "$52,600"

var months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func monthIndex(name string) int {
	return slices.Index(months, name)
}

// NewslettersNewestFirst returns the issues newest first: year descending, then
// calendar month descending. The document is not modified.
func (c *SiteContent) NewslettersNewestFirst() []Newsletter {
	out := slices.Clone(c.Newsletters)
	slices.SortStableFunc(out, func(a, b Newsletter) int {
		if a.Year != b.Year {
			return b.Year - a.Year
		}
		return monthIndex(b.Month) - monthIndex(a.Month)
	})
	return out
}

// MainCharity returns the first charity typed as the main charity.
func (c *SiteContent) MainCharity() (Charity, bool) {
	for _, ch := range c.Charities {
		if ch.Type == MainCharityType {
			return ch, true
		}
	}
	return Charity{}, false
}

// TotalContributions is the headline figure on the home page.
func (c *SiteContent) TotalContributions() string {
	if ch, ok := c.MainCharity(); ok && ch.TotalDonated > 0 {
		return FormatCurrency(ch.TotalDonated)
	}
	return FallbackContributions
}

// Gallery looks up a gallery by title, case-insensitively.
func (c *SiteContent) Gallery(title string) (Gallery, bool) {
	for _, g := range c.Galleries {
		if strings.EqualFold(g.Title, title) {
			return g, true
		}
	}
	return Gallery{}, false
}

// NewsletterPath is the site path of a newsletter PDF.
func NewsletterPath(file string) string {
	return "/content/pdfs/newsletters/" + file
}

// MembershipFormPath is the site path of the membership form PDF.
func MembershipFormPath(file string) string {
	return "/content/pdfs/" + file
}

// ImagePath is the site path of an image in a category folder.
func ImagePath(category, file string) string {
	return "/content/images/" + category + "/" + file
}

// SiteURL joins a site base URL and a site path.
func SiteURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// FormatCurrency formats whole Canadian dollars, e.g. "$52,600".
func FormatCurrency(amount float64) string {
	n := int64(math.Round(amount))
	if n < 0 {
		return "-$" + humanize.Comma(-n)
	}
	return "$" + humanize.Comma(n)
}
