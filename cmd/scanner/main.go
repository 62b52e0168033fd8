package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"go-jobradar/internal/collector"
	"go-jobradar/internal/config"
	"go-jobradar/internal/digest"
	"go-jobradar/internal/filter"
	"go-jobradar/internal/reporter"
	"go-jobradar/internal/source"
	"go-jobradar/internal/source/listapi"
	"go-jobradar/internal/source/rss"
)

func main() {
	//load config
	cfg := config.Load()
	log.Printf("🔧 Profile %q loaded. %d sources, display cap %d", cfg.ProfileName, len(cfg.Sources), cfg.DisplayCap)

	classifier, err := filter.FromConfig(cfg.Classify)
	if err != nil {
		log.Fatalf("❌ Invalid classify config: %v", err)
	}

	sinks := buildSinks(cfg)

	//sequential by design: one board at a time, fixed config order
	ctx := context.Background()

	var all []collector.Record
	for _, sc := range cfg.Sources {
		src, err := buildSource(sc)
		if err != nil {
			log.Printf("❌ Skipping source %s: %v", sc.Name, err)
			continue
		}

		log.Printf("▶️ Checking %s...", sc.Name)
		window := time.Duration(sc.RecencyHours) * time.Hour
		res := collector.New(src, classifier, window).Run(ctx)
		if res.Err != nil {
			log.Printf("⚠️ Error %s: %v", res.Source, res.Err)
		}
		log.Printf("✅ %s finished. Found %d matches.", res.Source, len(res.Records))
		all = append(all, res.Records...)
	}

	log.Printf("📦 Total matches collected: %d", len(all))

	d := digest.Build(all, cfg.DisplayCap)
	log.Printf("🔍 Deduplication: %d collected -> %d unique", len(all), d.Total)

	reporter.New(cfg.HeaderFormat, cfg.EmptyMessage, sinks).Notify(d)

	log.Println("🏁 Execution finished.")
}

func buildSource(sc config.Source) (source.Source, error) {
	switch sc.Kind {
	case "rss":
		return rss.New(sc.Name, sc.Endpoints), nil
	case "listapi":
		shape := listapi.Shape{
			ItemsKey:   sc.ItemsKey,
			SkipFirst:  sc.SkipFirst,
			TitleKey:   sc.TitleKey,
			DescKey:    sc.DescKey,
			URLKey:     sc.URLKey,
			DateKey:    sc.DateKey,
			DateLayout: sc.DateLayout,
		}
		return listapi.New(sc.Name, sc.Endpoints, shape, sc.UserAgent), nil
	}
	return nil, fmt.Errorf("unknown source kind %q", sc.Kind)
}

func buildSinks(cfg *config.Config) []reporter.Sink {
	var sinks []reporter.Sink

	if cfg.SlackWebhookURL != "" {
		sinks = append(sinks, reporter.NewWebhookSink(cfg.SlackWebhookURL, cfg.HeaderFormat, cfg.EmptyMessage))
		log.Println("💬 Slack webhook sink enabled.")
	}

	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		sink, err := reporter.NewTelegramSink(cfg.TelegramToken, cfg.TelegramChatID, cfg.HeaderFormat, cfg.EmptyMessage)
		if err != nil {
			log.Printf("⚠️ Telegram sink disabled: %v", err)
		} else {
			sinks = append(sinks, sink)
			log.Println("🤖 Telegram sink enabled.")
		}
	}

	return sinks
}
