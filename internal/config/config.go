// Load envs from .env
// Load YAML scan profile
// Apply env overrides and defaults

package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultProfilePath = "configs/config.yaml"

// Tier is one priority level a matched posting can land in. Weight drives
// the digest ordering, Glyph decorates the display title.
type Tier struct {
	Name   string `yaml:"name"`
	Glyph  string `yaml:"glyph"`
	Weight int    `yaml:"weight"`
}

// ContextRule pairs a context keyword set with the tier it promotes to.
type ContextRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
	Tier     Tier     `yaml:"tier"`
}

// Classify describes the classification policy of a scan profile.
// Policy "simple" uses TargetTitles + Contexts + BaseTier; policy "tiered"
// uses the aspirational/symptom/context sets and their three tiers.
type Classify struct {
	Policy      string `yaml:"policy"`
	FoldAccents bool   `yaml:"fold_accents"`

	TargetTitles []string      `yaml:"target_titles"`
	Contexts     []ContextRule `yaml:"contexts"`
	BaseTier     Tier          `yaml:"base_tier"`

	AspirationalTitles []string `yaml:"aspirational_titles"`
	SymptomTitles      []string `yaml:"symptom_titles"`
	ContextKeywords    []string `yaml:"context_keywords"`
	PerfectTier        Tier     `yaml:"perfect_tier"`
	AspirationalTier   Tier     `yaml:"aspirational_tier"`
	SymptomTier        Tier     `yaml:"symptom_tier"`
}

// Source describes one job board and how to read it.
// Kind "rss" needs only Endpoints; kind "listapi" additionally needs the
// field keys mapping the board's JSON shape onto postings.
type Source struct {
	Name         string   `yaml:"name"`
	Kind         string   `yaml:"kind"`
	Endpoints    []string `yaml:"endpoints"`
	RecencyHours int      `yaml:"recency_hours"` // 0 disables the recency check

	ItemsKey   string `yaml:"items_key"`  // envelope key; empty means top-level array
	SkipFirst  bool   `yaml:"skip_first"` // boards that prepend a legal-notice record
	TitleKey   string `yaml:"title_key"`
	DescKey    string `yaml:"desc_key"`
	URLKey     string `yaml:"url_key"`
	DateKey    string `yaml:"date_key"`
	DateLayout string `yaml:"date_layout"`
	UserAgent  string `yaml:"user_agent"`
}

type Config struct {
	ProfileName  string   `yaml:"profile_name"`
	HeaderFormat string   `yaml:"header_format"` // fmt format with one %d verb
	EmptyMessage string   `yaml:"empty_message"`
	DisplayCap   int      `yaml:"display_cap"`
	Classify     Classify `yaml:"classify"`
	Sources      []Source `yaml:"sources"`

	//Sink endpoints come from the environment only
	SlackWebhookURL string `yaml:"-"`
	TelegramToken   string `yaml:"-"`
	TelegramChatID  int64  `yaml:"-"`
}

// LoadFile reads and validates one scan profile.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}

	//Set default values if not set
	if cfg.DisplayCap == 0 {
		cfg.DisplayCap = 25
	}
	if cfg.Classify.Policy == "" {
		cfg.Classify.Policy = "simple"
	}
	if cfg.HeaderFormat == "" {
		cfg.HeaderFormat = "🚀 %d Roles Found"
	}
	if cfg.EmptyMessage == "" {
		cfg.EmptyMessage = "✅ *Scan Ran:* No new matches found."
	}

	//Validate sources
	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("profile %s defines no sources", path)
	}
	for _, src := range cfg.Sources {
		if src.Kind != "rss" && src.Kind != "listapi" {
			return nil, fmt.Errorf("source %s: unknown kind %q", src.Name, src.Kind)
		}
		if len(src.Endpoints) == 0 {
			return nil, fmt.Errorf("source %s: no endpoints", src.Name)
		}
	}

	return cfg, nil
}

// Load builds the full runtime config: .env, then the profile named by
// CONFIG_PATH (default configs/config.yaml), then env sink overrides.
// Missing sink endpoints are fine — the run still happens, log-only.
func Load() *Config {
	_ = godotenv.Load()

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultProfilePath
	}

	cfg, err := LoadFile(path)
	if err != nil {
		log.Fatalf("Error loading scan profile: %v", err)
	}

	cfg.SlackWebhookURL = os.Getenv("SLACK_WEBHOOK_URL")

	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if chatID := os.Getenv("TELEGRAM_CHAT_ID"); chatID != "" {
		id, err := strconv.ParseInt(chatID, 10, 64)
		if err != nil {
			log.Fatalf("Invalid TELEGRAM_CHAT_ID: %v", err)
		}
		cfg.TelegramChatID = id
	}

	return cfg
}
