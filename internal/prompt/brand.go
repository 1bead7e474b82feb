// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package prompt composes image-generation prompts from the fixed brand
// identities of the BrandPress content collections. Everything in this
// package is pure string assembly with no I/O and no provider calls.
package prompt

// BrandProfile describes the visual and tonal identity rules for one
// content collection. Profiles are static configuration: each known
// collection resolves to exactly one profile, and unknown collections
// resolve to a generic default.
type BrandProfile struct {
	BrandName            string
	TargetAudience       string
	VisualStyle          string
	ColorPalette         string
	Tone                 string
	IncludeHumans        bool
	HumanRepresentation  string // empty when IncludeHumans is false
	AvoidElements        string
	CompositionRules     string
	AdditionalGuidelines string
}

// Collection identifiers recognised by the prompt composer. These match
// the collectionType values the CMS admin panel sends.
const (
	CollectionYaicos    = "yaicos-article"
	CollectionAmabex    = "amabex-article"
	CollectionGuardScan = "guardscan-article"
)

// brandProfiles is the canonical brand settings table, one entry per
// content collection.
var brandProfiles = map[string]BrandProfile{
	CollectionYaicos: {
		BrandName:           "Yaicos",
		TargetAudience:      "International students aged 18-30 seeking education and career opportunities",
		VisualStyle:         "PROFESSIONAL DOCUMENTARY PHOTOGRAPHY - friendly, welcoming, modern, educational, vibrant, aspirational",
		ColorPalette:        "bright blues (#2196F3), warm oranges (#FF9800), energetic yellows (#FFC107), natural daylight, white backgrounds",
		Tone:                "friendly and aspirational",
		IncludeHumans:       true,
		HumanRepresentation: "REAL diverse international students from Asian, African, European, Latin American, and Middle Eastern backgrounds, aged 18-30, captured in authentic documentary photography style, shown from behind or at angles (no direct faces), engaged in learning activities, collaborative work, campus life, genuine candid moments",
		AvoidElements:       "text, logos, cluttered elements, stock photo poses, cartoon style, illustrations, 3D renders, CGI, animated look, plastic appearance",
		CompositionRules:    "wide landscape format (16:9), centered subject with people interacting, bright natural lighting",
		AdditionalGuidelines: "CRITICAL: Use PROFESSIONAL PHOTOGRAPHY ONLY - shot on Canon EOS R5 or Nikon Z9, documentary/photojournalism style. " +
			"Images should feel welcoming and inspiring. Show diversity and international representation with REAL HUMANS in authentic educational or campus settings. " +
			"Focus on connection, learning, and opportunity. Capture genuine candid moments like street photography or documentary style. " +
			"Natural lighting, real environments, authentic expressions. " +
			"STRICTLY AVOID: cartoon style, illustrations, 3D renders, CGI, animated look, artificial appearance. " +
			"This must look like professional photography you would see in National Geographic or TIME Magazine education features.",
	},

	CollectionAmabex: {
		BrandName:        "Amabex",
		TargetAudience:   "Corporate procurement professionals and business decision-makers",
		VisualStyle:      "corporate, professional, trustworthy, sophisticated, clean, systematic",
		ColorPalette:     "corporate blues (#003D7A, #0066CC), silver/gray accents (#7C8B9C), white, minimal use of color",
		Tone:             "corporate and professional",
		IncludeHumans:    false,
		AvoidElements:    "text, logos, faces, hands, informal elements, bright colors, consumer imagery",
		CompositionRules: "wide landscape format (16:9), clean centered composition, professional studio lighting, emphasis on structure and organization",
		AdditionalGuidelines: "Images should convey trust, efficiency, and professionalism. " +
			"Use abstract representations of procurement processes, supply chains, business networks, or enterprise systems. " +
			"Focus on structure, data visualization, and systematic approaches. " +
			"Maintain a serious, corporate aesthetic similar to Fortune 500 companies. " +
			"Show business workflows, organizational charts, or process diagrams in a clean, modern style.",
	},

	CollectionGuardScan: {
		BrandName:        "GuardScan",
		TargetAudience:   "IT security professionals, system administrators, CISOs, and cybersecurity teams",
		VisualStyle:      "technical, secure, high-tech, cutting-edge, sophisticated, dramatic",
		ColorPalette:     "deep blues (#001F3F), cyber green (#00FF41), electric blue (#00D4FF), dark backgrounds (#0A0E27), neon accents",
		Tone:             "technical and cutting-edge",
		IncludeHumans:    false,
		AvoidElements:    "text, logos, faces, hands, generic security symbols, consumer-grade imagery, simple padlocks",
		CompositionRules: "wide landscape format (16:9), centered technical visualization, dramatic lighting with blue/green accents, high-tech atmosphere",
		AdditionalGuidelines: "Images should feel technically sophisticated and cutting-edge. " +
			"Use advanced visualizations of networks, encryption, data protection, threat detection, and security systems. " +
			"Include circuit patterns, digital shields, encrypted data streams, network topologies, or security architecture diagrams. " +
			"Avoid cliché padlock or simple shield imagery. " +
			"Focus on enterprise-grade security visualization similar to platforms like CrowdStrike, Palo Alto Networks, or high-end SOC (Security Operations Center) environments. " +
			"Use Matrix-style aesthetics with digital elements.",
	},
}

// defaultProfile is used for any collection identifier that has no entry
// in the brand table. It never includes humans.
var defaultProfile = BrandProfile{
	BrandName:        "the brand",
	TargetAudience:   "professional audience",
	VisualStyle:      "modern, professional, clean",
	ColorPalette:     "vibrant blues, whites, subtle gradients",
	Tone:             "professional",
	IncludeHumans:    false,
	AvoidElements:    "text, logos, faces, cluttered elements",
	CompositionRules: "wide landscape format (16:9), centered subject, professional lighting",
}

// ProfileFor resolves a collection identifier to its brand profile.
// Unknown identifiers return the generic default profile.
func ProfileFor(collection string) BrandProfile {
	if p, ok := brandProfiles[collection]; ok {
		return p
	}
	return defaultProfile
}

// KnownCollections returns the collection identifiers that have a
// dedicated brand profile.
func KnownCollections() []string {
	return []string{CollectionYaicos, CollectionAmabex, CollectionGuardScan}
}

// categoryTemplates maps content category tags to short visual-theme
// descriptions so images within a category stay visually consistent.
var categoryTemplates = map[string]string{
	"technology":           "Futuristic tech environment with glowing interfaces, circuit patterns, or digital networks",
	"ai-machine-learning":  "Neural network visualization, data streams, algorithmic patterns, or AI brain concept",
	"cybersecurity":        "Digital shield, encrypted data visualization, security locks, or network protection concept",
	"business":             "Modern office environment with growth charts, business strategy elements, or professional workspace",
	"marketing":            "Marketing funnel visualization, campaign elements, customer journey map, or brand strategy board",
	"automation":           "Automated workflow system, connected processes, robotic arms, or efficiency visualization",
	"cloud-computing":      "Cloud infrastructure, server networks, distributed systems, or data center visualization",
	"data-analytics":       "Data dashboard, charts and graphs, analytics visualization, or metrics display",
	"software-development": "Code editor interface, development workflow, programming concepts, or software architecture",
	"e-commerce":           "Digital storefront, shopping cart visualization, online retail elements, or payment systems",
	"productivity":         "Organized workflow, task management board, time optimization, or efficiency tools",
	"social-media":         "Social network visualization, engagement metrics, content distribution, or platform interface",
	"seo-sem":              "Search results visualization, ranking metrics, keyword clouds, or search algorithm concept",
}

// defaultCategoryTemplate covers unknown or absent categories.
const defaultCategoryTemplate = "Professional abstract representation of the concept with modern design elements"

// CategoryTemplateFor resolves a category tag to its visual template,
// falling back to the generic abstract template for unknown categories.
func CategoryTemplateFor(category string) string {
	if t, ok := categoryTemplates[category]; ok {
		return t
	}
	return defaultCategoryTemplate
}
