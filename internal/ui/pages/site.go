package pages

import (
	"fmt"
	"strconv"
	"time"

	"github.com/llehouerou/clubview/internal/content"
	"github.com/llehouerou/clubview/internal/gallery"
	"github.com/llehouerou/clubview/internal/icons"
	"github.com/llehouerou/clubview/internal/route"
	"github.com/llehouerou/clubview/internal/ui/render"
	"github.com/llehouerou/clubview/internal/ui/styles"
)

// Site is what every page is built from.
type Site struct {
	Content *content.SiteContent
	BaseURL string
	Lock    *gallery.ScrollLock
	Now     func() time.Time
}

func (s Site) year() int {
	if s.Now == nil {
		return time.Now().Year()
	}
	return s.Now().Year()
}

func (s Site) url(path string) string {
	return content.SiteURL(s.BaseURL, path)
}

func mailto(addr string) string {
	return "mailto:" + addr
}

// NewHome builds the landing page.
func NewHome(site Site) Page {
	c := site.Content
	return newTextPage(route.Home, "Home", site.Lock, func(width, selected int) Doc {
		s := styles.T().S()
		club := c.Club
		b := newDoc(width, selected)

		b.header(club.Name, fmt.Sprintf("%s in %s. Proudly serving the community since %d.",
			club.Tagline, club.Location, club.Established))
		b.link("Meet Our Team", "", route.Executive)
		if club.Email != "" {
			b.link("Contact Us", mailto(club.Email), "")
		}
		b.blank()

		b.section("Welcome to the Club", "")
		b.text(s.Base, "We are a dedicated group of Corvette enthusiasts who share a passion for America's Sports Car. "+
			"Whether you own a classic C1 or the latest C8, you'll find a welcoming community here.")
		b.blank()
		b.text(s.Base, "Our club meets monthly for general meetings and regularly organizes cruises, "+
			"car shows, and charity events throughout the Durham Region and beyond.")
		b.blank()
		m := club.Meetings
		b.line(s.Title.Render("Meetings"))
		b.text(s.Base, fmt.Sprintf("%s meetings on the %s at %s", m.Frequency, m.Day, m.Time))
		b.text(s.Muted, m.Venue)
		b.blank()

		b.section("Giving Back to Our Community", "Supporting local causes that matter")
		for _, ch := range c.Charities {
			b.line(s.Title.Render(ch.Name) + s.Muted.Render(" · "+ch.Type))
			if ch.TotalDonated > 0 {
				b.line("  " + s.Accent.Render(content.FormatCurrency(ch.TotalDonated)+"+"))
			}
			if ch.Status != "" {
				b.line("  " + s.Muted.Render(ch.Status))
			}
		}
		b.blank()
		b.line(s.Title.Render("Total Contributions ") + s.Accent.Render(c.TotalContributions()+"+"))
		b.line(s.Muted.Render("Donated to local charities"))
		b.blank()

		if len(c.Activities) > 0 {
			b.section("Club Activities", "")
			b.bullets("•", c.Activities)
			b.blank()
		}

		b.section("Ready to Join?", "")
		b.text(s.Base, "Whether you're a longtime Corvette owner or just getting started, "+
			"we'd love to welcome you to our club.")
		if c.Membership.FormFile != "" {
			b.link("Download Membership Form", site.url(content.MembershipFormPath(c.Membership.FormFile)), "")
		}
		if c.Membership.Contact != "" {
			b.link("Email Us", mailto(c.Membership.Contact), "")
		}
		b.blank()

		if len(club.Affiliations) > 0 {
			b.section("Affiliations", "")
			for _, a := range club.Affiliations {
				label := a.Name
				if a.Rep != "" {
					label += " (rep: " + a.Rep + ")"
				}
				if a.URL != "" {
					b.link(label, a.URL, "")
				} else {
					b.line("  " + s.Base.Render(label))
				}
			}
			b.blank()
		}

		b.line(s.Subtle.Render(fmt.Sprintf("© %d %s. All rights reserved.", site.year(), club.Name)))
		return b.done()
	})
}

// NewExecutive lists directors and officers.
func NewExecutive(site Site) Page {
	c := site.Content
	return newTextPage(route.Executive, "Executive", site.Lock, func(width, selected int) Doc {
		s := styles.T().S()
		b := newDoc(width, selected)
		b.header("Executive Team", "Meet the dedicated volunteers who lead our club")

		if c.Club.Email != "" {
			b.line(s.Muted.Render("For inquiries, please contact us at:"))
			b.link(c.Club.Email, mailto(c.Club.Email), "")
			b.blank()
		}

		people := func(title, subtitle string, list []content.Person) {
			b.section(title, subtitle)
			roleWidth := 0
			for _, p := range list {
				roleWidth = max(roleWidth, len(p.Role))
			}
			roleWidth = min(roleWidth, width/2)
			for _, p := range list {
				b.line(s.Muted.Render(render.TruncateAndPad(p.Role, roleWidth)) + "  " + s.Title.Render(p.Name))
			}
			b.blank()
		}
		people("Executive Directors", "Our elected leadership team", c.Executive.Directors)
		people("Officers", "Committee chairs and coordinators", c.Executive.Officers)
		return b.done()
	})
}

// NewNewsletters lists the issues newest first, grouped by year.
func NewNewsletters(site Site) Page {
	c := site.Content
	return newTextPage(route.Newsletters, "Newsletters", site.Lock, func(width, selected int) Doc {
		s := styles.T().S()
		b := newDoc(width, selected)
		b.header("Newsletters", "Stay informed with our monthly club updates")

		issues := c.NewslettersNewestFirst()
		if len(issues) == 0 {
			b.line(s.Muted.Render("No newsletters yet."))
			return b.done()
		}
		year := 0
		for _, n := range issues {
			if n.Year != year {
				if year != 0 {
					b.blank()
				}
				year = n.Year
				b.section(strconv.Itoa(year), "")
			}
			b.link(n.Month+" "+strconv.Itoa(n.Year), site.url(content.NewsletterPath(n.File)), "")
		}
		b.blank()
		b.line(s.Subtle.Render("Press enter to open a newsletter as PDF"))
		return b.done()
	})
}

// NewSponsors lists gold then silver sponsors.
func NewSponsors(site Site) Page {
	c := site.Content
	return newTextPage(route.Sponsors, "Club Sponsors", site.Lock, func(width, selected int) Doc {
		s := styles.T().S()
		b := newDoc(width, selected)
		b.header("Club Sponsors", "Thank you to the businesses who support our club")

		tier := func(title, subtitle, badge string, list []content.Sponsor, gold bool) {
			b.section(icons.Star()+" "+title, subtitle)
			name := s.Silver
			if gold {
				name = s.Gold
			}
			for _, sp := range list {
				if sp.URL != "" {
					b.link(sp.Name+"  ("+badge+")", sp.URL, "")
				} else {
					b.line("  " + name.Render(sp.Name) + s.Subtle.Render("  "+badge))
				}
			}
			b.blank()
		}
		tier("Gold Sponsors", "Our premier partners", "Gold Partner", c.Sponsors.Gold, true)
		tier("Silver Sponsors", "Valued club supporters", "Silver Partner", c.Sponsors.Silver, false)

		b.section("Become a Sponsor", "")
		b.text(s.Base, fmt.Sprintf("Interested in supporting %s? We offer various sponsorship opportunities "+
			"for businesses in Durham Region.", c.Club.Name))
		if c.Club.Email != "" {
			b.link("Contact us at "+c.Club.Email, mailto(c.Club.Email), "")
		}
		return b.done()
	})
}

// NewCodeOfEthics shows member expectations and club promises.
func NewCodeOfEthics(site Site) Page {
	c := site.Content
	return newTextPage(route.CodeOfEthics, "Code of Ethics", site.Lock, func(width, selected int) Doc {
		s := styles.T().S()
		b := newDoc(width, selected)
		b.header("Code of Ethics", "The principles that guide our club")

		b.section("Members are Expected to", "")
		b.numbered(c.CodeOfEthics.MemberExpectations)
		b.blank()
		b.section("The Club Promises its Members to", "")
		b.numbered(c.CodeOfEthics.ClubPromises)
		if d := c.CodeOfEthics.AdoptedDate; d != "" {
			b.blank()
			b.line(s.Muted.Render("This Code of Ethics was adopted on ") + s.Title.Render(d))
		}
		return b.done()
	})
}

// NewInMemoriam remembers departed members.
func NewInMemoriam(site Site) Page {
	c := site.Content
	return newTextPage(route.InMemoriam, "In Memoriam", site.Lock, func(width, selected int) Doc {
		s := styles.T().S()
		b := newDoc(width, selected)
		b.header("In Memoriam", "Honoring the memory of our departed friends")
		b.text(s.Muted, "We remember and honor these members of our Corvettes of Durham family who have passed on. "+
			"Their passion for Corvettes and friendship will always be remembered.")
		b.blank()

		for _, m := range c.InMemoriam {
			b.line(s.Title.Render(m.Name))
			if m.Dates != "" {
				b.line(s.Muted.Render(m.Dates))
			}
			if m.Note != "" {
				b.text(s.Quote, m.Note)
			}
			b.blank()
		}
		b.centered(s.Quote.Render("“Gone from our sight, but never from our hearts.”"))
		return b.done()
	})
}

// NewNotFound is shown for unknown routes.
func NewNotFound(site Site, path string) Page {
	return newTextPage(path, "Not Found", site.Lock, func(width, selected int) Doc {
		s := styles.T().S()
		b := newDoc(width, selected)
		b.header("404", "Page Not Found")
		b.text(s.Base, "Sorry, we couldn't find the page you're looking for. "+
			"It might have been moved or no longer exists.")
		b.line(s.Subtle.Render(render.Truncate("Requested: "+path, width)))
		b.blank()
		b.link("Back to Home", "", route.Home)
		b.link("Meet Our Team", "", route.Executive)
		b.blank()
		b.line(s.Muted.Render("Quick links"))
		b.link("Newsletters", "", route.Newsletters)
		b.link("Gallery", "", route.Gallery)
		b.link("Sponsors", "", route.Sponsors)
		return b.done()
	})
}
