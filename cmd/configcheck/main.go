//nolint:forbidigo // CLI tool prints its report to stdout
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/Roma7-7-7/survey-bot/internal/linkcheck"
	"github.com/Roma7-7-7/survey-bot/internal/study"
	"github.com/Roma7-7-7/survey-bot/internal/timeplan"
)

const dateTimeLayout = "2006-01-02 15:04"

func main() {
	configPath := flag.String("config", "study.json", "Path to the study configuration")
	at := flag.String("at", "", "Simulated subscription moment (YYYY-MM-DD HH:MM, default: subscription start)")
	wakeup := flag.String("wakeup", "", "Simulated wake-up time (HH:MM) for wake-up based categories")
	condition := flag.Int("condition", 1, "Condition group to preview (1-based)")
	links := flag.Bool("links", false, "Fetch every survey URL and check it serves a titled page")
	flag.Parse()

	conf, err := study.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid study configuration: %v\n", err)
		os.Exit(1)
	}

	if *condition < 1 || *condition > conf.Conditions {
		fmt.Fprintf(os.Stderr, "Condition %d is out of range, the study has %d\n", *condition, conf.Conditions)
		os.Exit(1)
	}

	sub, err := subscription(conf, *at, *wakeup)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	printSummary(conf, sub)
	printPlan(conf, sub, *condition-1)

	if *links {
		if !checkLinks(conf) {
			os.Exit(1)
		}
	}
}

func subscription(conf *study.Config, at, wakeup string) (timeplan.Subscription, error) {
	sub := timeplan.Subscription{SubscribedAt: conf.SubscriptionStart}

	if at != "" {
		t, err := time.ParseInLocation(dateTimeLayout, at, conf.Location)
		if err != nil {
			return sub, fmt.Errorf("invalid -at value %q: %w", at, err)
		}
		sub.SubscribedAt = t
	}

	if wakeup != "" {
		tod, err := study.ParseTimeOfDay(wakeup)
		if err != nil {
			return sub, fmt.Errorf("invalid -wakeup value %q: %w", wakeup, err)
		}
		sub.Wakeup = &tod
	}

	return sub, nil
}

func printSummary(conf *study.Config, sub timeplan.Subscription) {
	fmt.Printf("Study: %s (timezone %s)\n", conf.StudyName, conf.Location)
	fmt.Printf("Subscription window: %s - %s\n",
		conf.SubscriptionStart.Format(dateTimeLayout),
		conf.SubscriptionDeadline.Format(dateTimeLayout))
	selfReport := ""
	if conf.ConditionSelfReport {
		selfReport = ", self-reported"
	}
	fmt.Printf("Conditions: %d%s\n", conf.Conditions, selfReport)

	if sub.SubscribedAt.Before(conf.SubscriptionStart) || !sub.SubscribedAt.Before(conf.SubscriptionDeadline) {
		fmt.Printf("Note: -at %s is outside the subscription window\n", sub.SubscribedAt.Format(dateTimeLayout))
	}
	fmt.Println()
}

func printPlan(conf *study.Config, sub timeplan.Subscription, condition int) {
	// Fixed seeds keep the jitter sample stable between runs.
	rnd := rand.New(rand.NewPCG(1, 1))

	for _, id := range study.Categories() {
		cat := conf.Category(id)
		if !cat.Enabled() {
			continue
		}

		occs, err := timeplan.Resolve(cat, sub, conf.Location, rnd)
		if err != nil {
			if errors.Is(err, timeplan.ErrMissingWakeupTime) {
				fmt.Printf("%s: skipped, pass -wakeup HH:MM to preview wake-up based times\n\n", id)
				continue
			}
			fmt.Fprintf(os.Stderr, "Resolve %s plan: %v\n", id, err)
			os.Exit(1)
		}

		fmt.Printf("%s: %d deliveries%s, links %s\n", id, len(occs), jitterNote(cat), describeVisibility(cat))
		for _, occ := range occs {
			url := cat.URL(condition, occ.Day, occ.Slot, occ.Index, rnd)
			fmt.Printf("  %2d. %s  %s\n", occ.Index+1, occ.At.Format("Mon 2006-01-02 15:04"), url)
		}
		if id == study.CategoryEnd && conf.EndReminderDelay > 0 {
			fmt.Printf("      completion reminder %s after delivery\n", conf.EndReminderDelay)
		}
		fmt.Println()
	}
}

func jitterNote(cat study.Category) string {
	if cat.Jitter <= 0 {
		return ""
	}
	return fmt.Sprintf(" (sampled jitter up to %s)", cat.Jitter)
}

func describeVisibility(cat study.Category) string {
	switch cat.Visibility {
	case study.VisibilityFixedDelay:
		return fmt.Sprintf("deleted %s after sending", cat.DeleteAfter)
	case study.VisibilityOnNext:
		return "deleted when the next one is sent"
	case study.VisibilityAtDeadline:
		return "deleted at the subscription deadline"
	default:
		return "kept in chat"
	}
}

func checkLinks(conf *study.Config) bool {
	fmt.Println("Checking survey links:")

	ok := true
	for _, res := range linkcheck.New().CheckAll(context.Background(), conf) {
		if res.Err != nil {
			ok = false
			fmt.Printf("  FAIL %s: %v\n", res.URL, res.Err)
			continue
		}
		fmt.Printf("  ok   %s (%s)\n", res.URL, res.Title)
	}
	if !ok {
		fmt.Println("Some links are broken")
	}
	return ok
}
