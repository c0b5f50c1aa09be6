package fetch

import (
	"net/url"
	"strings"
)

// Platform represents a known job board platform.
type Platform string

// Known job boards
const (
	PlatformLinkedIn   Platform = "linkedin"
	PlatformIndeed     Platform = "indeed"
	PlatformGreenhouse Platform = "greenhouse"
	PlatformLever      Platform = "lever"
	PlatformWorkday    Platform = "workday"
	PlatformUnknown    Platform = "unknown"
)

type platformRule struct {
	platform Platform
	hosts    []string
	content  []string
	noise    []string
}

var platformRules = []platformRule{
	{
		platform: PlatformLinkedIn,
		hosts:    []string{"linkedin.com"},
		content: []string{
			".show-more-less-html__markup",
			".description__text",
			".jobs-description__content",
			".jobs-box__html-content",
		},
		noise: []string{".top-card-layout__cta-container", ".similar-jobs", ".sign-in-modal", ".contextual-sign-in-modal"},
	},
	{
		platform: PlatformIndeed,
		hosts:    []string{"indeed.com"},
		content:  []string{"#jobDescriptionText", ".jobsearch-jobDescriptionText", ".jobsearch-JobComponent-description"},
		noise:    []string{".jobsearch-IndeedApplyButton", "#jobsearch-ViewJobButtons-container", ".icl-Card--salary"},
	},
	{
		platform: PlatformGreenhouse,
		hosts:    []string{"greenhouse.io"},
		content:  []string{".job__description.body", ".job__description", ".job-description__content", "#content", ".job-post-container"},
		noise:    []string{".application--wrapper", ".voluntary-self-id", ".voluntary-self-id-wrapper", "#usa_self_id_section", ".post-apply"},
	},
	{
		platform: PlatformLever,
		hosts:    []string{"lever.co"},
		content:  []string{".posting-page", ".section-wrapper.page-full-width", ".posting-description", ".content"},
		noise:    []string{".apply-section", ".lever-application-form", ".posting-apply"},
	},
	{
		platform: PlatformWorkday,
		hosts:    []string{"workday.com", "myworkdayjobs.com"},
		content:  []string{"[data-automation-id='jobDescription']", ".gwt-HTML", ".job-description"},
		noise:    []string{"[data-automation-id='applyButton']", ".application-section"},
	},
}

// commonNoise covers application forms, EEO notices and share widgets found on most boards
var commonNoise = []string{
	"form",
	"#application-form",
	".application-form",
	".apply-button-container",
	"[data-testid='application-form']",
	".eeo-statement",
	".eeo-section",
	".legal-disclosure",
	".social-share",
	".share-buttons",
	".cookie-banner",
	".cookie-consent",
	".gdpr-notice",
}

// DetectPlatform identifies the job board platform from a URL host.
func DetectPlatform(rawURL string) Platform {
	if rule := ruleFor(rawURL); rule != nil {
		return rule.platform
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors for a platform, or the
// generic job posting selectors for unknown boards.
func PlatformContentSelectors(platform Platform) []string {
	for _, rule := range platformRules {
		if rule.platform == platform {
			return append(append([]string{}, rule.content...), JobPostingSelectors()...)
		}
	}
	return JobPostingSelectors()
}

// PlatformNoiseSelectors returns the common noise selectors plus any for the platform.
func PlatformNoiseSelectors(platform Platform) []string {
	out := append([]string{}, commonNoise...)
	for _, rule := range platformRules {
		if rule.platform == platform {
			out = append(out, rule.noise...)
		}
	}
	return out
}

func ruleFor(rawURL string) *platformRule {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	host := strings.ToLower(parsed.Hostname())
	for i := range platformRules {
		for _, h := range platformRules[i].hosts {
			if host == h || strings.HasSuffix(host, "."+h) {
				return &platformRules[i]
			}
		}
	}
	return nil
}
