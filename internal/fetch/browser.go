package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// MinBrowserFallbackLength is the extracted length under which a page is treated as
// a client-rendered app and retried in a headless browser.
const MinBrowserFallbackLength = 500

// DefaultBrowserTimeout bounds a whole headless render.
const DefaultBrowserTimeout = 30 * time.Second

// ShouldUseBrowser reports whether extracted text is too short to be a real posting.
func ShouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < MinBrowserFallbackLength
}

// WithBrowser renders a page in headless Chrome and returns the resulting HTML.
// Chrome or Chromium must be installed.
func WithBrowser(ctx context.Context, pageURL string, timeout time.Duration, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = DefaultBrowserTimeout
	}
	log.Debug("starting headless browser", zap.String("url", pageURL))

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(DefaultUserAgent),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: pageURL, Message: "browser rendering failed", Cause: err}
	}

	log.Debug("rendered page", zap.String("url", pageURL), zap.Int("bytes", len(html)))
	return html, nil
}

// Page fetches a posting and extracts its text with platform-aware selectors. When
// useBrowser is set and the plain HTTP result looks empty, the page is rendered in
// headless Chrome and extracted again.
func Page(ctx context.Context, pageURL string, useBrowser bool, log *zap.Logger) (string, Platform, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := ValidateURL(pageURL); err != nil {
		return "", PlatformUnknown, err
	}
	platform := DetectPlatform(pageURL)
	content := PlatformContentSelectors(platform)
	noise := PlatformNoiseSelectors(platform)

	var text string
	result, fetchErr := URL(ctx, pageURL, nil)
	if fetchErr == nil {
		extracted, err := ExtractMainText(result.HTML, content, noise...)
		if err != nil {
			return "", platform, fmt.Errorf("failed to extract text: %w", err)
		}
		text = extracted
	}

	if !useBrowser || (fetchErr == nil && !ShouldUseBrowser(text)) {
		return text, platform, fetchErr
	}

	log.Info("falling back to headless browser",
		zap.String("url", pageURL),
		zap.Int("http_text_len", len(text)),
	)
	html, err := WithBrowser(ctx, pageURL, DefaultBrowserTimeout, log)
	if err != nil {
		if fetchErr != nil {
			return "", platform, fetchErr
		}
		log.Warn("browser fallback failed, keeping HTTP result", zap.Error(err))
		return text, platform, nil
	}
	text, err = ExtractMainText(html, content, noise...)
	if err != nil {
		return "", platform, fmt.Errorf("failed to extract rendered text: %w", err)
	}
	return text, platform, nil
}
