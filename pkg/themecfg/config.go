// Package themecfg loads explorer themes from YAML files.
//
// A file names a preset and overrides parts of it:
//
//	preset: dark
//	dir: {fg: "#5fafff", attrs: [bold]}
//	highlight_symbol: "▶ "
//	block:
//	  type: rounded
//	titles_bottom:
//	  - text: "{index}/{count}"
//	    align: right
package themecfg

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/filetug/ftexplorer/pkg/explorer"
	"github.com/filetug/ftexplorer/pkg/fsutils"
	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// StyleConfig describes a tcell style. Colors are tcell color names or
// #rrggbb values.
type StyleConfig struct {
	Fg    string   `yaml:"fg,omitempty"`
	Bg    string   `yaml:"bg,omitempty"`
	Attrs []string `yaml:"attrs,omitempty"`
}

// BlockConfig overrides the frame of the preset, or of a plain bordered
// block when the preset has none.
type BlockConfig struct {
	Borders     []string     `yaml:"borders,omitempty"`
	Type        string       `yaml:"type,omitempty"`
	Style       *StyleConfig `yaml:"style,omitempty"`
	BorderStyle *StyleConfig `yaml:"border_style,omitempty"`
	// Padding is top, right, bottom, left.
	Padding    []int  `yaml:"padding,omitempty"`
	TitleAlign string `yaml:"title_align,omitempty"`
}

// TitleConfig is a title template, see Template for the placeholders.
type TitleConfig struct {
	Text  string       `yaml:"text"`
	Align string       `yaml:"align,omitempty"`
	Style *StyleConfig `yaml:"style,omitempty"`
}

// Config holds the theme settings of a file. Unset fields keep the
// preset's values; titles are added after the preset's own titles.
type Config struct {
	Preset           string        `yaml:"preset"`
	NoBlock          bool          `yaml:"no_block,omitempty"`
	Block            *BlockConfig  `yaml:"block,omitempty"`
	Style            *StyleConfig  `yaml:"style,omitempty"`
	Item             *StyleConfig  `yaml:"item,omitempty"`
	Dir              *StyleConfig  `yaml:"dir,omitempty"`
	Highlight        *StyleConfig  `yaml:"highlight,omitempty"`
	HighlightDir     *StyleConfig  `yaml:"highlight_dir,omitempty"`
	HighlightSymbol  *string       `yaml:"highlight_symbol,omitempty"`
	HighlightSpacing string        `yaml:"highlight_spacing,omitempty"`
	ScrollPadding    *int          `yaml:"scroll_padding,omitempty"`
	TitlesTop        []TitleConfig `yaml:"titles_top,omitempty"`
	TitlesBottom     []TitleConfig `yaml:"titles_bottom,omitempty"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Preset: PresetDefault,
	}
}

// yamlDecoder rejects unknown keys and accepts empty documents.
type yamlDecoder struct {
	*yaml.Decoder
}

func newDecoder(r io.Reader) fsutils.Decoder {
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	return yamlDecoder{Decoder: d}
}

func (d yamlDecoder) Decode(o any) error {
	if err := d.Decoder.Decode(o); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Load reads and validates a theme file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := fsutils.ReadFile(path, true, cfg, newDecoder); err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", path, err)
	}
	if _, err := cfg.Theme(); err != nil {
		return nil, fmt.Errorf("invalid theme %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig and checks that the result
// builds a theme.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := newDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Theme(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the config back to YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Theme builds the explorer theme the config describes.
func (c *Config) Theme() (explorer.Theme, error) {
	theme, err := Preset(c.Preset)
	if err != nil {
		return theme, err
	}
	if c.NoBlock {
		theme = theme.WithoutBlock()
	}
	if c.Block != nil {
		block, ok := theme.Block()
		if !ok {
			block = explorer.Bordered()
		}
		if block, err = c.Block.apply(block); err != nil {
			return theme, fmt.Errorf("block: %w", err)
		}
		theme = theme.WithBlock(block)
	}

	styles := []struct {
		name string
		cfg  *StyleConfig
		set  func(explorer.Theme, tcell.Style) explorer.Theme
	}{
		{"style", c.Style, explorer.Theme.WithStyle},
		{"item", c.Item, explorer.Theme.WithItemStyle},
		{"dir", c.Dir, explorer.Theme.WithDirStyle},
		{"highlight", c.Highlight, explorer.Theme.WithHighlightStyle},
		{"highlight_dir", c.HighlightDir, explorer.Theme.WithHighlightDirStyle},
	}
	for _, s := range styles {
		if s.cfg == nil {
			continue
		}
		style, err := s.cfg.Style()
		if err != nil {
			return theme, fmt.Errorf("%s: %w", s.name, err)
		}
		theme = s.set(theme, style)
	}

	if c.HighlightSymbol != nil {
		theme = theme.WithHighlightSymbol(*c.HighlightSymbol)
	}
	if c.HighlightSpacing != "" {
		spacing, err := parseSpacing(c.HighlightSpacing)
		if err != nil {
			return theme, err
		}
		theme = theme.WithHighlightSpacing(spacing)
	}
	if c.ScrollPadding != nil {
		theme = theme.WithScrollPadding(*c.ScrollPadding)
	}
	for _, t := range c.TitlesTop {
		f, err := t.compile()
		if err != nil {
			return theme, fmt.Errorf("titles_top: %w", err)
		}
		theme = theme.WithTitleTop(f)
	}
	for _, t := range c.TitlesBottom {
		f, err := t.compile()
		if err != nil {
			return theme, fmt.Errorf("titles_bottom: %w", err)
		}
		theme = theme.WithTitleBottom(f)
	}
	return theme, nil
}

func (b *BlockConfig) apply(block explorer.Block) (explorer.Block, error) {
	if len(b.Borders) > 0 {
		borders, err := parseBorders(b.Borders)
		if err != nil {
			return block, err
		}
		block = block.WithBorders(borders)
	}
	if b.Type != "" {
		t, err := parseBorderType(b.Type)
		if err != nil {
			return block, err
		}
		block = block.WithBorderType(t)
	}
	if b.Style != nil {
		style, err := b.Style.Style()
		if err != nil {
			return block, err
		}
		block = block.WithStyle(style)
	}
	if b.BorderStyle != nil {
		style, err := b.BorderStyle.Style()
		if err != nil {
			return block, err
		}
		block = block.WithBorderStyle(style)
	}
	if b.Padding != nil {
		if len(b.Padding) != 4 {
			return block, fmt.Errorf("padding needs 4 values (top, right, bottom, left), got %d", len(b.Padding))
		}
		block = block.WithPadding(explorer.Padding{
			Top: b.Padding[0], Right: b.Padding[1], Bottom: b.Padding[2], Left: b.Padding[3],
		})
	}
	if b.TitleAlign != "" {
		align, err := parseAlignment(b.TitleAlign)
		if err != nil {
			return block, err
		}
		block = block.WithTitleAlignment(align)
	}
	return block, nil
}
