// Package skill holds the static catalog of skills users can offer or
// request. It is pure reference data; profiles store skill names as strings
// and the catalog is only consulted for display grouping and membership
// checks.
package skill

// Category groups related skills under a display name.
type Category struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

var catalog = []Category{
	{
		Name: "Programming & Development",
		Skills: []string{
			"JavaScript", "Python", "React", "Node.js", "TypeScript", "HTML/CSS", "Java", "C++", "PHP", "Ruby",
			"Vue.js", "Angular", "Flutter", "React Native", "Swift", "Kotlin", "Go", "Rust", "SQL", "MongoDB",
		},
	},
	{
		Name: "Design & Creative",
		Skills: []string{
			"UI/UX Design", "Graphic Design", "Figma", "Adobe Photoshop", "Adobe Illustrator", "Sketch", "InDesign",
			"Video Editing", "Animation", "Photography", "Digital Art", "Logo Design", "Web Design", "Branding",
		},
	},
	{
		Name: "Business & Marketing",
		Skills: []string{
			"Digital Marketing", "SEO", "Social Media Marketing", "Content Writing", "Copywriting", "Email Marketing",
			"Google Ads", "Facebook Ads", "Analytics", "Project Management", "Business Strategy", "Sales",
		},
	},
	{
		Name: "Data & Analytics",
		Skills: []string{
			"Data Science", "Machine Learning", "Data Analysis", "Excel", "Power BI", "Tableau", "R Programming",
			"Statistics", "Big Data", "AI/ML", "Data Visualization",
		},
	},
	{
		Name: "Languages",
		Skills: []string{
			"English", "Spanish", "French", "German", "Chinese", "Japanese", "Korean", "Italian", "Portuguese", "Arabic",
		},
	},
	{
		Name: "Music & Arts",
		Skills: []string{
			"Guitar", "Piano", "Singing", "Music Production", "Drawing", "Painting", "Dancing", "Writing", "Poetry",
		},
	},
	{
		Name: "Life Skills",
		Skills: []string{
			"Cooking", "Fitness Training", "Yoga", "Meditation", "Public Speaking", "Leadership", "Time Management",
			"Financial Planning", "Gardening", "DIY/Crafts",
		},
	},
}

var known map[string]bool

func init() {
	known = make(map[string]bool)
	for _, cat := range catalog {
		for _, s := range cat.Skills {
			known[s] = true
		}
	}
}

// Categories returns the full catalog grouped by category.
func Categories() []Category {
	return catalog
}

// All returns every skill name in catalog order.
func All() []string {
	var all []string
	for _, cat := range catalog {
		all = append(all, cat.Skills...)
	}
	return all
}

// IsKnown reports whether name is part of the catalog. The profile and
// request flows treat unknown skills as a soft condition (the UI restricts
// selection); only callers that want hard validation use this.
func IsKnown(name string) bool {
	return known[name]
}
