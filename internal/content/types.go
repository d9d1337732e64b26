package content

// SiteContent is the whole club site document.
type SiteContent struct {
	Club         ClubInfo       `json:"club"`
	Charities    []Charity      `json:"charities"    validate:"dive"`
	Executive    Executive      `json:"executive"`
	CodeOfEthics CodeOfEthics   `json:"codeOfEthics"`
	InMemoriam   []Memorial     `json:"inMemoriam"   validate:"dive"`
	Sponsors     Sponsors       `json:"sponsors"`
	Newsletters  []Newsletter   `json:"newsletters"  validate:"dive"`
	Membership   MembershipInfo `json:"membership"`
	Activities   []string       `json:"activities"   validate:"dive,required"`
	Galleries    []Gallery      `json:"galleries"    validate:"dive"`
	Meta         MetaInfo       `json:"meta"`
}

type ClubInfo struct {
	Name         string        `json:"name"         validate:"required"`
	Tagline      string        `json:"tagline"`
	Established  int           `json:"established"  validate:"omitempty,gte=1900,lte=2100"`
	Email        string        `json:"email"        validate:"omitempty,email"`
	Location     string        `json:"location"`
	Meetings     MeetingInfo   `json:"meetings"`
	Affiliations []Affiliation `json:"affiliations" validate:"dive"`
}

type MeetingInfo struct {
	Frequency string `json:"frequency"`
	Day       string `json:"day"`
	Time      string `json:"time"`
	Venue     string `json:"venue"`
}

type Affiliation struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url,omitempty"  validate:"omitempty,url"`
	Rep  string `json:"rep,omitempty"`
}

// Charity is a cause the club supports. TotalDonated is in whole dollars.
type Charity struct {
	Name         string  `json:"name"                   validate:"required"`
	Type         string  `json:"type"`
	TotalDonated float64 `json:"totalDonated,omitempty" validate:"gte=0"`
	Status       string  `json:"status,omitempty"`
}

type Executive struct {
	Directors []Person `json:"directors" validate:"dive"`
	Officers  []Person `json:"officers"  validate:"dive"`
}

type Person struct {
	Role string `json:"role" validate:"required"`
	Name string `json:"name" validate:"required"`
}

type CodeOfEthics struct {
	MemberExpectations []string `json:"memberExpectations" validate:"dive,required"`
	ClubPromises       []string `json:"clubPromises"       validate:"dive,required"`
	AdoptedDate        string   `json:"adoptedDate"`
}

type Memorial struct {
	Name  string `json:"name"            validate:"required"`
	Dates string `json:"dates"`
	Note  string `json:"note,omitempty"`
	Image string `json:"image,omitempty"`
}

type Sponsors struct {
	Gold   []Sponsor `json:"gold"   validate:"dive"`
	Silver []Sponsor `json:"silver" validate:"dive"`
}

type Sponsor struct {
	Name  string `json:"name"            validate:"required"`
	URL   string `json:"url,omitempty"   validate:"omitempty,url"`
	Image string `json:"image,omitempty"`
}

// Newsletter is one monthly issue; Month is a full English month name.
type Newsletter struct {
	Month string `json:"month" validate:"required,month"`
	Year  int    `json:"year"  validate:"gte=1900,lte=2100"`
	File  string `json:"file"  validate:"required"`
}

type MembershipInfo struct {
	FormFile string `json:"formFile"`
	Contact  string `json:"contact" validate:"omitempty,email"`
}

// Gallery is a titled collection of image identifiers. PreviewCount of zero
// means the configured default.
type Gallery struct {
	Title        string   `json:"title"                  validate:"required"`
	Images       []string `json:"images"                 validate:"dive,required"`
	PreviewCount int      `json:"previewCount,omitempty" validate:"gte=0"`
}

type MetaInfo struct {
	ScrapedAt        string `json:"scrapedAt"`
	SourceURL        string `json:"sourceUrl" validate:"omitempty,url"`
	OriginalPlatform string `json:"originalPlatform"`
}
