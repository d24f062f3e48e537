// Package survey builds paired image-comparison survey documents from two
// folders of generated images.
package survey

const (
	// DefaultTitle is the survey title used when none is configured.
	DefaultTitle = "Image Preference Survey"
	// DefaultDescription is the instruction shown to raters.
	DefaultDescription = "Please select the image with the best preservation, aesthetic and alignment to the instruction"

	// PromptTableFile is the prompt lookup file inside the generation dir.
	PromptTableFile = "index2prompt.json"
	// ReferenceDir holds the reference images inside the generation dir.
	ReferenceDir = "reference_editing_pics"

	referenceAlt = "Reference image"
)

// Method is a named folder of images produced by one generation technique.
type Method struct {
	Name string
	Dir  string
}

// Image is one picture shown on a survey page. Method is empty for the
// reference image.
type Image struct {
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	Method string `json:"method,omitempty"`
}

// Page is a single paired comparison shown to a rater.
type Page struct {
	ID             int    `json:"id"`
	Prompt         string `json:"prompt"`
	ReferenceImage Image  `json:"referenceImage"`
	ImageA         Image  `json:"imageA"`
	ImageB         Image  `json:"imageB"`
}

// Document is a complete survey definition.
type Document struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Pages       []Page `json:"pages"`
}

// OutputName returns the file name a comparison between the two methods is
// written to.
func OutputName(methodA, methodB string) string {
	return methodA + "-" + methodB + ".json"
}
