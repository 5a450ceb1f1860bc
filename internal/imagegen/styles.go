package imagegen

import "github.com/jaypaulb/infinite-kanvas/internal/atom"

// Style is an artistic preset whose prompt is appended to the user's prompt
type Style struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Prompt string `json:"prompt"`
}

// DefaultStyleID is used when no style, or an unknown one, is requested
const DefaultStyleID = "simpsons"

// Styles lists the presets in the order they are offered
var Styles = []Style{
	{ID: "simpsons", Name: "Simpsons", Prompt: "in the style of The Simpsons, yellow skin, flat cartoon colors"},
	{ID: "lego", Name: "Lego", Prompt: "built from LEGO bricks, plastic minifigure style"},
	{ID: "anime", Name: "Anime", Prompt: "anime style, cel shading, vibrant colors"},
	{ID: "pixel", Name: "Pixel Art", Prompt: "pixel art, 16-bit retro game sprite"},
	{ID: "clay", Name: "Clay", Prompt: "claymation style, handmade plasticine figures"},
	{ID: "ghibli", Name: "Ghibli", Prompt: "Studio Ghibli style, soft painted backgrounds"},
	{ID: "watercolor", Name: "Watercolor", Prompt: "watercolor painting, soft washes on textured paper"},
	{ID: "pencil_drawing", Name: "Pencil Drawing", Prompt: "graphite pencil drawing, cross-hatched shading"},
	{ID: "minimalist", Name: "Minimalist", Prompt: "minimalist flat illustration, limited palette, clean shapes"},
	{ID: "3d", Name: "3D", Prompt: "3D render, soft studio lighting, smooth materials"},
	{ID: "plushie", Name: "Plushie", Prompt: "cute plush toy, soft fabric texture, stitched seams"},
	{ID: "metallic", Name: "Metallic", Prompt: "polished chrome metallic sculpture, reflective surfaces"},
	{ID: "snoopy", Name: "Snoopy", Prompt: "in the style of Peanuts comic strips, simple ink lines"},
	{ID: "jojo", Name: "JoJo", Prompt: "JoJo's Bizarre Adventure style, dramatic poses, bold shading"},
	{ID: "americancartoon", Name: "American Cartoon", Prompt: "classic American cartoon style, thick outlines, bright colors"},
}

// LookupStyle returns the preset with the given id, falling back to the default
func LookupStyle(id string) Style {
	var fallback Style
	for _, s := range Styles {
		if s.ID == id {
			return s
		}
		if s.ID == DefaultStyleID {
			fallback = s
		}
	}
	return fallback
}

// FinalPrompt combines the user's prompt with the style suffix
func FinalPrompt(prompt, styleID string) (string, Style) {
	style := LookupStyle(styleID)
	return atom.ComposeStylePrompt(prompt, style.Prompt), style
}
