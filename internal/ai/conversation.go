package ai

import "encoding/json"

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ImageRef is an embeddable image reference, typically a base64 data URL
// produced by extraction.
type ImageRef struct {
	URL string `json:"url"`
}

// Turn is one conversation message. When Image is nil the content is the
// plain Text string; when Image is set the content is a two-part payload
// (Text segment plus image reference), which is the only other shape the
// provider contract supports.
type Turn struct {
	Role  string
	Text  string
	Image *ImageRef
}

// Conversation is the ordered turn sequence sent to the provider. Order is
// part of the contract and must be preserved as built.
type Conversation []Turn

func SystemTurn(text string) Turn {
	return Turn{Role: RoleSystem, Text: text}
}

func UserTurn(text string) Turn {
	return Turn{Role: RoleUser, Text: text}
}

func UserImageTurn(text, imageURL string) Turn {
	return Turn{Role: RoleUser, Text: text, Image: &ImageRef{URL: imageURL}}
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageRef `json:"image_url,omitempty"`
}

func (t Turn) MarshalJSON() ([]byte, error) {
	if t.Image == nil {
		return json.Marshal(struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		}{Role: t.Role, Content: t.Text})
	}
	return json.Marshal(struct {
		Role    string        `json:"role"`
		Content []contentPart `json:"content"`
	}{
		Role: t.Role,
		Content: []contentPart{
			{Type: "text", Text: t.Text},
			{Type: "image_url", ImageURL: t.Image},
		},
	})
}
