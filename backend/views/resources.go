package views

// Link is a titled hyperlink.
type Link struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Book is a recommended read.
type Book struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// ResourceList is the static content of the resources page. The notes area
// rendered next to it has no save action; whatever is typed there is gone
// once the user navigates away.
type ResourceList struct {
	Books []Book `json:"books"`
	Links []Link `json:"links"`
}

func Resources() ResourceList {
	return ResourceList{
		Books: []Book{
			{Title: "Mindset: The New Psychology of Success", Author: "Carol S. Dweck"},
			{Title: "Atomic Habits", Author: "James Clear"},
			{Title: "Deep Work: Rules for Focused Success in a Distracted World", Author: "Cal Newport"},
		},
		Links: []Link{
			{Title: "TED Talk: The power of believing that you can improve", URL: "https://www.ted.com/talks/carol_dweck_the_power_of_believing_that_you_can_improve"},
			{Title: "Article: What is a Growth Mindset?", URL: "https://www.mindsetworks.com/science/impact"},
			{Title: "Blog Post: Cultivating a Growth Mindset", URL: "https://fs.blog/2015/01/growth-mindset/"},
		},
	}
}
