package imagegen

import "fmt"

// ArtStyles are the rendering styles one of which is applied to every prompt
var ArtStyles = []string{
	"fantasy illustration with dramatic lighting",
	"detailed digital painting with vibrant colors",
	"stylized concept art with bold shapes",
	"realistic rendered 3D art with atmospheric effects",
	"painted artwork with rich textures",
	"dark fantasy art with high contrast",
	"colorful stylized illustration",
}

// StylePrompt wraps a subject prompt with an art style and the card art constraints
func StylePrompt(style, prompt string) string {
	return fmt.Sprintf("A high-quality trading card game artwork in the style of %s, depicting: %s. "+
		"The image should be centrally composed with rich detail and appropriate for a portrait card format. "+
		"Include suitable background elements that enhance the theme. "+
		"Art only - NO TEXT, NO CARD FRAMES, NO NUMBERS, NO SYMBOLS overlaid on the image.", style, prompt)
}
