// Package content holds the static copy of the landing page.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultYAML []byte

// ErrNoReply is returned when a transcript has no assistant message.
var ErrNoReply = errors.New("content: transcript has no assistant reply")

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role Role   `yaml:"role"`
	Text string `yaml:"text"`
}

// Transcript is the scripted chat shown in the hero preview.
type Transcript []Message

// Prompt returns the first user message.
func (t Transcript) Prompt() string {
	for _, m := range t {
		if m.Role == RoleUser {
			return m.Text
		}
	}
	return ""
}

// Reply returns the last assistant message, which the preview streams.
func (t Transcript) Reply() (string, error) {
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Role == RoleAssistant {
			return t[i].Text, nil
		}
	}
	return "", ErrNoReply
}

type Brand struct {
	Name  string `yaml:"name"`
	Color string `yaml:"color"`
}

type Hero struct {
	Badge        string `yaml:"badge"`
	Headline     string `yaml:"headline"`
	Highlight    string `yaml:"highlight"`
	Subtitle     string `yaml:"subtitle"`
	PrimaryCTA   string `yaml:"primary_cta"`
	SecondaryCTA string `yaml:"secondary_cta"`
	Note         string `yaml:"note"`
}

type Heading struct {
	Eyebrow  string `yaml:"eyebrow"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

type Feature struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Features struct {
	Heading `yaml:",inline"`
	Items   []Feature `yaml:"items"`
}

type Integrations struct {
	Heading `yaml:",inline"`
	Items   []Brand `yaml:"items"`
}

type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Tier struct {
	Name        string   `yaml:"name"`
	Price       string   `yaml:"price"`
	Period      string   `yaml:"period"`
	CTA         string   `yaml:"cta"`
	Badge       string   `yaml:"badge"`
	Highlighted bool     `yaml:"highlighted"`
	Features    []string `yaml:"features"`
}

type Pricing struct {
	Heading `yaml:",inline"`
	Tiers   []Tier `yaml:"tiers"`
}

type FAQ struct {
	Question string `yaml:"q"`
	Answer   string `yaml:"a"`
}

type FAQs struct {
	Heading `yaml:",inline"`
	Items   []FAQ `yaml:"items"`
}

type CTA struct {
	Badge     string `yaml:"badge"`
	Title     string `yaml:"title"`
	Subtitle  string `yaml:"subtitle"`
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
}

type Footer struct {
	Links     []string `yaml:"links"`
	Copyright string   `yaml:"copyright"`
}

type Page struct {
	Brand         string       `yaml:"brand"`
	Nav           []string     `yaml:"nav"`
	LoginLabel    string       `yaml:"login_label"`
	Hero          Hero         `yaml:"hero"`
	Conversation  Transcript   `yaml:"conversation"`
	TrustedBy     []Brand      `yaml:"trusted_by"`
	Features      Features     `yaml:"features"`
	Integrations  Integrations `yaml:"integrations"`
	Stats         []Stat       `yaml:"stats"`
	DailyMessages []float64    `yaml:"daily_messages"`
	Pricing       Pricing      `yaml:"pricing"`
	FAQs          FAQs         `yaml:"faqs"`
	CTA           CTA          `yaml:"cta"`
	Footer        Footer       `yaml:"footer"`
}

// Default returns the embedded page copy.
func Default() *Page {
	p, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: embedded page is invalid: %v", err))
	}
	return p
}

func Parse(data []byte) (*Page, error) {
	var p Page
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("content: %w", err)
	}
	if _, err := p.Conversation.Reply(); err != nil {
		return nil, err
	}
	return &p, nil
}

func Load(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
