// Package qa - browser.go executes scripted UI scenarios in a headless browser.
package qa

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"

	"github.com/jonathan/devteam-agent/internal/agent"
	"github.com/jonathan/devteam-agent/internal/types"
)

// DefaultScenarioTimeout bounds a single scenario run.
const DefaultScenarioTimeout = 30 * time.Second

// BrowserRunner runs UI scenarios with headless Chrome. Requires
// Chrome/Chromium to be installed on the system.
type BrowserRunner struct {
	Timeout time.Duration
}

// NewBrowserRunner returns a runner with the default scenario timeout.
func NewBrowserRunner() *BrowserRunner {
	return &BrowserRunner{Timeout: DefaultScenarioTimeout}
}

// RunScenario navigates to the scenario's path under baseURL, performs each
// step in order, and checks assertions against the final DOM. Assertion
// failures produce a failed verdict; browser-level failures return an error.
func (r *BrowserRunner) RunScenario(ctx context.Context, baseURL string, scenario *types.TestScenario) (*types.TestVerdict, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultScenarioTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	actions := []chromedp.Action{
		chromedp.Navigate(strings.TrimRight(baseURL, "/") + scenario.Path),
		chromedp.WaitReady("body"),
	}
	for _, step := range scenario.Steps {
		if action := interactionAction(step); action != nil {
			actions = append(actions, action)
		}
	}

	var html string
	actions = append(actions, chromedp.OuterHTML("html", &html))

	if err := chromedp.Run(browserCtx, actions...); err != nil {
		return nil, &agent.GenerationError{
			Message: fmt.Sprintf("browser run failed for scenario %s", scenario.ID),
			Cause:   err,
		}
	}

	if notes := checkAssertions(html, scenario.Steps); notes != "" {
		return &types.TestVerdict{ID: scenario.ID, Status: "fail", Notes: notes}, nil
	}
	return &types.TestVerdict{ID: scenario.ID, Status: "pass"}, nil
}

// interactionAction maps a scripted step to its browser action. Assertion
// steps return nil; they run against the captured DOM afterwards.
func interactionAction(step types.TestStep) chromedp.Action {
	switch step.Action {
	case "click", "check":
		return chromedp.Click(step.Selector, chromedp.NodeVisible)
	case "fill":
		return chromedp.SendKeys(step.Selector, step.Value, chromedp.NodeVisible)
	default:
		return nil
	}
}

// checkAssertions evaluates assert_text and assert_element steps against the
// rendered HTML. Returns an empty string when every assertion holds.
func checkAssertions(html string, steps []types.TestStep) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "failed to parse rendered HTML: " + err.Error()
	}

	var failures []string
	for _, step := range steps {
		switch step.Action {
		case "assert_element":
			if doc.Find(step.Selector).Length() == 0 {
				failures = append(failures, "element not found: "+step.Selector)
			}
		case "assert_text":
			selection := doc.Find(step.Selector)
			if selection.Length() == 0 {
				failures = append(failures, "element not found: "+step.Selector)
				continue
			}
			if !strings.Contains(selection.Text(), step.Value) {
				failures = append(failures, fmt.Sprintf("text %q not found in %s", step.Value, step.Selector))
			}
		}
	}
	return strings.Join(failures, "; ")
}
