// Package ideaform is the client side of idea generation: it holds the form
// state, validates selections against the catalogs and drives one submission
// at a time against the generation endpoint.
package ideaform

// Categories is the selectable category catalog, in display order.
var Categories = []string{
	"Healthcare",
	"Education",
	"Economic",
	"Environment",
	"Technology",
	"Social Good",
	"Entertainment",
	"Sports",
	"Artificial Intelligence",
	"Machine Learning",
	"Blockchain",
	"Cybersecurity",
	"Augmented Reality (AR)",
	"Virtual Reality (VR)",
	"Internet of Things (IoT)",
	"Cloud Computing",
	"Data Science",
	"Big Data",
	"Gaming",
	"Sustainability",
	"E-commerce",
	"Finance",
	"Automation",
	"Robotics",
	"Transportation",
	"Smart Cities",
	"Energy",
	"Agriculture",
	"Media",
	"Space Exploration",
	"Accessibility",
	"Legal Tech",
	"Travel",
	"Food and Nutrition",
	"Music and Arts",
	"Mental Health",
	"Disaster Management",
	"Communication",
	"Startups",
	"Personal Productivity",
	"Fashion",
	"Design",
	"Computer Vision",
}

// ProjectTypes is the catalog offered by the typed form variant.
var ProjectTypes = []string{
	"Web Application",
	"Mobile Application",
	"Desktop Application",
	"Game",
	"IoT Device",
	"Machine Learning Model",
	"Data Analytics Dashboard",
	"API / Backend Service",
}

var (
	categorySet    = toSet(Categories)
	projectTypeSet = toSet(ProjectTypes)
)

// Variant selects which selector groups a form instance shows.
type Variant struct {
	Name         string
	ProjectTypes bool
}

var (
	CategoriesOnly   = Variant{Name: "categories"}
	WithProjectTypes = Variant{Name: "project-types", ProjectTypes: true}
)

func IsCategory(s string) bool {
	_, ok := categorySet[s]
	return ok
}

func IsProjectType(s string) bool {
	_, ok := projectTypeSet[s]
	return ok
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
