package blog

import (
	"encoding/json"
	"fmt"
)

type BlockType string

const (
	BlockHeading    BlockType = "heading"
	BlockSubheading BlockType = "subheading"
	BlockParagraph  BlockType = "paragraph"
	BlockImage      BlockType = "image"
	BlockList       BlockType = "list"
	BlockQuote      BlockType = "quote"
	BlockButton     BlockType = "button"
	BlockDropdown   BlockType = "dropdown"
)

// Block is a tagged union: exactly one variant pointer is non-nil and it
// matches Type. The wire shape is {"type": ..., "order": ..., "data": {...}}.
type Block struct {
	Type  BlockType
	Order int

	Heading   *HeadingData
	Paragraph *ParagraphData
	Image     *ImageData
	List      *ListData
	Quote     *QuoteData
	Button    *ButtonData
	Dropdown  *DropdownData
}

type Blocks []Block

type HeadingData struct {
	Text  string `json:"text"`
	Level int    `json:"level,omitempty"`
}

type ParagraphData struct {
	Text string `json:"text"`
}

type ImageData struct {
	URL     string `json:"url"`
	Caption string `json:"caption,omitempty"`
	AltText string `json:"altText,omitempty"`
	Width   string `json:"width,omitempty"`
}

type ListData struct {
	Items []string `json:"items"`
	Style string   `json:"style,omitempty"` // "ordered" | "unordered"
}

type QuoteData struct {
	QuoteText   string `json:"quoteText"`
	QuoteAuthor string `json:"quoteAuthor,omitempty"`
}

type ButtonData struct {
	ButtonText  string `json:"buttonText"`
	ButtonLink  string `json:"buttonLink"`
	ButtonStyle string `json:"buttonStyle,omitempty"` // "primary" | "outline" | "text"
}

type DropdownData struct {
	DropdownTitle   string `json:"dropdownTitle"`
	DropdownContent string `json:"dropdownContent"`
}

type blockEnvelope struct {
	Type  BlockType       `json:"type"`
	Order int             `json:"order"`
	Data  json.RawMessage `json:"data"`
}

func (b *Block) UnmarshalJSON(raw []byte) error {
	var env blockEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return err
	}

	b.Type = env.Type
	b.Order = env.Order

	data := env.Data
	if len(data) == 0 {
		data = []byte("{}")
	}

	switch env.Type {
	case BlockHeading, BlockSubheading:
		b.Heading = &HeadingData{}
		return json.Unmarshal(data, b.Heading)
	case BlockParagraph:
		b.Paragraph = &ParagraphData{}
		return json.Unmarshal(data, b.Paragraph)
	case BlockImage:
		b.Image = &ImageData{}
		return json.Unmarshal(data, b.Image)
	case BlockList:
		b.List = &ListData{}
		return json.Unmarshal(data, b.List)
	case BlockQuote:
		b.Quote = &QuoteData{}
		return json.Unmarshal(data, b.Quote)
	case BlockButton:
		b.Button = &ButtonData{}
		return json.Unmarshal(data, b.Button)
	case BlockDropdown:
		b.Dropdown = &DropdownData{}
		return json.Unmarshal(data, b.Dropdown)
	default:
		return fmt.Errorf("unknown content block type %q", env.Type)
	}
}

func (b Block) MarshalJSON() ([]byte, error) {
	var data any
	switch b.Type {
	case BlockHeading, BlockSubheading:
		data = b.Heading
	case BlockParagraph:
		data = b.Paragraph
	case BlockImage:
		data = b.Image
	case BlockList:
		data = b.List
	case BlockQuote:
		data = b.Quote
	case BlockButton:
		data = b.Button
	case BlockDropdown:
		data = b.Dropdown
	default:
		return nil, fmt.Errorf("unknown content block type %q", b.Type)
	}

	return json.Marshal(struct {
		Type  BlockType `json:"type"`
		Order int       `json:"order"`
		Data  any       `json:"data"`
	}{b.Type, b.Order, data})
}

// Validate checks every block carries the payload its type requires.
func (bs Blocks) Validate() error {
	for i, b := range bs {
		if err := b.validate(); err != nil {
			return fmt.Errorf("content block %d: %w", i, err)
		}
	}
	return nil
}

func (b Block) validate() error {
	switch b.Type {
	case BlockHeading, BlockSubheading:
		if b.Heading == nil || b.Heading.Text == "" {
			return fmt.Errorf("%s block requires text", b.Type)
		}
	case BlockParagraph:
		if b.Paragraph == nil || b.Paragraph.Text == "" {
			return fmt.Errorf("paragraph block requires text")
		}
	case BlockImage:
		if b.Image == nil || b.Image.URL == "" {
			return fmt.Errorf("image block requires url")
		}
	case BlockList:
		if b.List == nil || len(b.List.Items) == 0 {
			return fmt.Errorf("list block requires items")
		}
	case BlockQuote:
		if b.Quote == nil || b.Quote.QuoteText == "" {
			return fmt.Errorf("quote block requires quoteText")
		}
	case BlockButton:
		if b.Button == nil || b.Button.ButtonText == "" || b.Button.ButtonLink == "" {
			return fmt.Errorf("button block requires buttonText and buttonLink")
		}
	case BlockDropdown:
		if b.Dropdown == nil || b.Dropdown.DropdownTitle == "" {
			return fmt.Errorf("dropdown block requires dropdownTitle")
		}
	default:
		return fmt.Errorf("unknown content block type %q", b.Type)
	}
	return nil
}
