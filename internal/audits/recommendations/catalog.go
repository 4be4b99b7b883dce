package recommendations

import "seopulse-backend/internal/scoring"

// catalogEntry maps one sub-score to a remediation. trigger is the score
// below which the entry fires; severeBelow optionally escalates the
// impact when the score is even lower.
type catalogEntry struct {
	subScore     string
	category     string
	trigger      int
	severeBelow  int
	severeImpact Impact
	impact       Impact
	effort       Effort

	issue          string
	description    string
	recommendation string
	steps          []string
	tools          []string
	estimatedTime  string
	expectedImpact string
}

// catalog order is the tie-break for recommendations with equal
// priority: content, then technical, then UX.
var catalog = []catalogEntry{
	{
		subScore:       "meta_title",
		category:       scoring.CategoryContent,
		trigger:        70,
		severeBelow:    40,
		severeImpact:   ImpactCritical,
		impact:         ImpactHigh,
		effort:         EffortModerate,
		issue:          "Meta Title Optimization",
		description:    "Many pages have missing or poorly optimized meta titles",
		recommendation: "Create unique, descriptive titles (30-60 characters) for each page that include primary keywords naturally",
		steps: []string{
			"Audit all pages with missing or short titles",
			"Research primary keywords for each page",
			"Write compelling titles that include keywords naturally",
			"Ensure titles are between 30-60 characters",
			"Test titles for click-through rate improvements",
		},
		tools:          []string{"Screaming Frog", "Google Search Console", "Keyword research tool"},
		estimatedTime:  "2-4 hours per 100 pages",
		expectedImpact: "+15-25% improvement in CTR from search results",
	},
	{
		subScore:       "meta_description",
		category:       scoring.CategoryContent,
		trigger:        70,
		severeBelow:    40,
		severeImpact:   ImpactHigh,
		impact:         ImpactMedium,
		effort:         EffortEasy,
		issue:          "Meta Description Enhancement",
		description:    "Meta descriptions are missing or not optimized for click-through rates",
		recommendation: "Write compelling meta descriptions (120-160 characters) that summarize page content and include a call-to-action",
		steps: []string{
			"Identify pages with missing/poor meta descriptions",
			"Write unique descriptions for each page",
			"Include primary keywords naturally",
			"Add compelling calls-to-action",
			"Keep within 120-160 character limit",
		},
		tools:          []string{"CMS/Website editor", "SERP preview tool"},
		estimatedTime:  "1-2 hours per 100 pages",
		expectedImpact: "+10-20% improvement in CTR from search results",
	},
	{
		subScore:       "h1_tags",
		category:       scoring.CategoryContent,
		trigger:        70,
		impact:         ImpactMedium,
		effort:         EffortEasy,
		issue:          "H1 Tag Optimization",
		description:    "Pages are missing H1 tags or have poorly structured headings",
		recommendation: "Ensure every page has a unique, descriptive H1 tag that includes the primary keyword",
		steps: []string{
			"Audit pages missing H1 tags",
			"Create unique H1 for each page",
			"Include primary keyword in H1",
			"Ensure proper heading hierarchy (H1 > H2 > H3)",
		},
		tools:          []string{"Website editor", "SEO crawler"},
		estimatedTime:  "30 minutes per 100 pages",
		expectedImpact: "+5-10% improvement in page relevance scores",
	},
	{
		subScore:       "internal_linking",
		category:       scoring.CategoryContent,
		trigger:        60,
		impact:         ImpactHigh,
		effort:         EffortModerate,
		issue:          "Internal Linking Strategy",
		description:    "Poor internal linking structure affecting page authority distribution",
		recommendation: "Implement strategic internal linking to distribute page authority and improve navigation",
		steps: []string{
			"Map out site architecture and key pages",
			"Identify high-authority pages that can pass link equity",
			"Create contextual internal links with descriptive anchor text",
			"Link to important pages from multiple sources",
			"Monitor internal link distribution",
		},
		tools:          []string{"Site crawler", "Internal link analysis tool"},
		estimatedTime:  "4-8 hours for initial setup",
		expectedImpact: "+10-20% improvement in page rankings",
	},
	{
		subScore:       "content_quality",
		category:       scoring.CategoryContent,
		trigger:        60,
		impact:         ImpactHigh,
		effort:         EffortComplex,
		issue:          "Content Quality Enhancement",
		description:    "Content is too short or has poor readability scores",
		recommendation: "Improve content depth and readability to better serve user intent",
		steps: []string{
			"Identify pages with thin content (<300 words)",
			"Research user intent and competitor content",
			"Expand content with valuable, relevant information",
			"Improve readability with shorter sentences and paragraphs",
			"Add relevant images, lists, and formatting",
		},
		tools:          []string{"Content research tools", "Readability checker", "Competitor analysis"},
		estimatedTime:  "2-4 hours per page",
		expectedImpact: "+20-40% improvement in user engagement and rankings",
	},
	{
		subScore:       "structured_data",
		category:       scoring.CategoryContent,
		trigger:        60,
		impact:         ImpactLow,
		effort:         EffortModerate,
		issue:          "Structured Data Coverage",
		description:    "Pages lack schema.org markup, limiting rich-result eligibility",
		recommendation: "Add structured data markup for the content types present on each page",
		steps: []string{
			"Identify page templates without structured data",
			"Choose the schema.org types matching each template",
			"Add JSON-LD markup to templates",
			"Validate markup with the rich results test",
		},
		tools:          []string{"Rich Results Test", "Schema markup generator"},
		estimatedTime:  "1-2 days for common templates",
		expectedImpact: "+5-15% improvement in SERP visibility via rich results",
	},
	{
		subScore:       "image_alt_text",
		category:       scoring.CategoryContent,
		trigger:        60,
		impact:         ImpactMedium,
		effort:         EffortEasy,
		issue:          "Image Alt Text Coverage",
		description:    "Images are missing alt text, hurting accessibility and image search",
		recommendation: "Add descriptive alt text to every meaningful image",
		steps: []string{
			"Export pages with images missing alt text",
			"Write descriptive alt text including relevant keywords",
			"Mark decorative images with empty alt attributes",
		},
		tools:          []string{"SEO crawler", "CMS/Website editor"},
		estimatedTime:  "1-2 hours per 100 images",
		expectedImpact: "+5-10% improvement in image search traffic",
	},
	{
		subScore:       "response_time",
		category:       scoring.CategoryTechnical,
		trigger:        70,
		severeBelow:    40,
		severeImpact:   ImpactCritical,
		impact:         ImpactHigh,
		effort:         EffortComplex,
		issue:          "Page Speed Optimization",
		description:    "Slow server response times affecting user experience and rankings",
		recommendation: "Optimize server performance and implement caching strategies",
		steps: []string{
			"Analyze server performance metrics",
			"Implement browser and server-side caching",
			"Optimize database queries",
			"Use Content Delivery Network (CDN)",
			"Compress images and minify CSS/JS",
			"Consider upgrading hosting plan",
		},
		tools:          []string{"PageSpeed Insights", "GTmetrix", "Web hosting admin"},
		estimatedTime:  "1-2 weeks for comprehensive optimization",
		expectedImpact: "+15-30% improvement in user experience and rankings",
	},
	{
		subScore:       "status_codes",
		category:       scoring.CategoryTechnical,
		trigger:        80,
		impact:         ImpactHigh,
		effort:         EffortModerate,
		issue:          "HTTP Status Code Cleanup",
		description:    "Multiple pages returning error status codes (404, 500, etc.)",
		recommendation: "Fix or redirect pages with error status codes to improve crawl efficiency",
		steps: []string{
			"Identify all pages with 4xx and 5xx errors",
			"Determine if pages should be fixed or redirected",
			"Implement 301 redirects for moved content",
			"Fix broken internal links",
			"Update XML sitemap to remove error pages",
		},
		tools:          []string{"Crawling tool", "Server access", "Redirect manager"},
		estimatedTime:  "4-8 hours depending on error count",
		expectedImpact: "+10-15% improvement in crawl efficiency",
	},
	{
		subScore:       "indexability",
		category:       scoring.CategoryTechnical,
		trigger:        80,
		impact:         ImpactCritical,
		effort:         EffortModerate,
		issue:          "Indexability Optimization",
		description:    "Pages are blocked from search engine indexing",
		recommendation: "Review and fix indexability issues to ensure important pages can be found",
		steps: []string{
			"Review robots.txt file for blocking rules",
			"Check meta robots tags on important pages",
			"Ensure XML sitemap includes indexable pages",
			"Remove noindex tags from important content",
			"Submit updated sitemap to search engines",
		},
		tools:          []string{"Robots.txt editor", "XML sitemap generator", "Search Console"},
		estimatedTime:  "2-4 hours for audit and fixes",
		expectedImpact: "+20-40% increase in indexed pages",
	},
	{
		subScore:       "canonical_tags",
		category:       scoring.CategoryTechnical,
		trigger:        70,
		impact:         ImpactMedium,
		effort:         EffortModerate,
		issue:          "Canonical Tag Implementation",
		description:    "Missing or incorrect canonical tags causing duplicate content issues",
		recommendation: "Implement proper canonical tags to consolidate page authority and avoid duplicate content penalties",
		steps: []string{
			"Identify pages with missing canonical tags",
			"Find duplicate or near-duplicate content",
			"Implement self-referencing canonicals on unique pages",
			"Point duplicate pages to preferred versions",
			"Test canonical implementation",
		},
		tools:          []string{"SEO crawler", "Duplicate content checker", "Website editor"},
		estimatedTime:  "3-6 hours for implementation",
		expectedImpact: "+5-15% improvement in page authority consolidation",
	},
	{
		subScore:       "https",
		category:       scoring.CategoryTechnical,
		trigger:        90,
		impact:         ImpactCritical,
		effort:         EffortEasy,
		issue:          "HTTPS Migration",
		description:    "Pages are still served over insecure HTTP",
		recommendation: "Serve every page over HTTPS and redirect HTTP variants permanently",
		steps: []string{
			"Install or renew the TLS certificate",
			"Add 301 redirects from HTTP to HTTPS",
			"Update internal links and canonicals to HTTPS",
			"Check for mixed-content warnings",
		},
		tools:          []string{"TLS certificate provider", "Redirect manager"},
		estimatedTime:  "2-4 hours",
		expectedImpact: "+5-10% trust and ranking improvement on affected pages",
	},
	{
		subScore:       "hreflang",
		category:       scoring.CategoryTechnical,
		trigger:        50,
		impact:         ImpactInformational,
		effort:         EffortModerate,
		issue:          "Hreflang Coverage",
		description:    "International page variants lack hreflang annotations",
		recommendation: "Annotate localized page variants with reciprocal hreflang tags if the site targets multiple locales",
		steps: []string{
			"Confirm the site actually serves multiple locales",
			"Map each page to its language/region variants",
			"Add reciprocal hreflang annotations",
			"Validate with an hreflang testing tool",
		},
		tools:          []string{"Hreflang testing tool", "CMS/Website editor"},
		estimatedTime:  "1-2 days for a localized site",
		expectedImpact: "Correct locale targeting in international SERPs",
	},
	{
		subScore:       "mobile_friendly",
		category:       scoring.CategoryUX,
		trigger:        70,
		impact:         ImpactCritical,
		effort:         EffortMajor,
		issue:          "Mobile Optimization",
		description:    "Website is not optimized for mobile devices",
		recommendation: "Implement responsive design and mobile-first optimization",
		steps: []string{
			"Audit mobile user experience",
			"Implement responsive CSS framework",
			"Optimize touch targets and navigation",
			"Test on multiple mobile devices",
			"Optimize mobile page speed",
		},
		tools:          []string{"Mobile testing tools", "Responsive design framework", "Device testing"},
		estimatedTime:  "2-4 weeks for full mobile optimization",
		expectedImpact: "+25-50% improvement in mobile user engagement",
	},
	{
		subScore:       "largest_contentful_paint",
		category:       scoring.CategoryUX,
		trigger:        70,
		impact:         ImpactHigh,
		effort:         EffortComplex,
		issue:          "Core Web Vitals Optimization",
		description:    "Poor Core Web Vitals scores affecting user experience and rankings",
		recommendation: "Optimize Largest Contentful Paint, First Input Delay, and Cumulative Layout Shift",
		steps: []string{
			"Measure current Core Web Vitals performance",
			"Optimize LCP by improving server response times",
			"Reduce FID by optimizing JavaScript execution",
			"Fix CLS by setting image and video dimensions",
			"Monitor improvements with real user data",
		},
		tools:          []string{"PageSpeed Insights", "Web Vitals extension", "Performance monitoring"},
		estimatedTime:  "1-2 weeks for comprehensive optimization",
		expectedImpact: "+15-25% improvement in user experience metrics",
	},
	{
		subScore:       "cumulative_layout_shift",
		category:       scoring.CategoryUX,
		trigger:        70,
		impact:         ImpactMedium,
		effort:         EffortComplex,
		issue:          "Layout Stability Fixes",
		description:    "Pages shift visibly while loading (high CLS)",
		recommendation: "Reserve space for late-loading content so the layout stays stable",
		steps: []string{
			"Set explicit dimensions on images, videos, and embeds",
			"Reserve slots for ads and dynamic widgets",
			"Preload fonts to avoid late swaps",
			"Re-measure CLS with field data",
		},
		tools:          []string{"PageSpeed Insights", "Layout shift debugger"},
		estimatedTime:  "3-5 days",
		expectedImpact: "+10-20% improvement in layout stability metrics",
	},
}
