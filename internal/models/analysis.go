package models

// CropRegion is a rectangle inside an image, expressed as fractions of the
// image's width and height so it is independent of resolution.
type CropRegion struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ItemAnalysis is what the image tagging service infers from a photo.
// It is a draft: nothing is stored until the user saves it as an item.
type ItemAnalysis struct {
	Category    Category   `json:"category"`
	Seasons     []Season   `json:"seasons"`
	SizeLabel   string     `json:"sizeLabel"`
	Brand       string     `json:"brand,omitempty"`
	Color       string     `json:"color,omitempty"`
	Description string     `json:"description,omitempty"`
	Crop        CropRegion `json:"crop"`
}
