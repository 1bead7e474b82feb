// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"fmt"
	"strings"
)

// Overrides are caller-supplied replacements for individual brand
// profile fields. Empty fields keep the profile's value.
type Overrides struct {
	Style       string `json:"style,omitempty"`
	Colors      string `json:"colors,omitempty"`
	Avoid       string `json:"avoid,omitempty"`
	Composition string `json:"composition,omitempty"`
}

// contentExcerptLimit bounds how much article body is embedded in the
// meta-prompt for context.
const contentExcerptLimit = 800

// Merged holds the effective visual settings after applying overrides
// over a brand profile, field by field.
type Merged struct {
	Profile     BrandProfile
	Style       string
	Colors      string
	Avoid       string
	Composition string
}

// Merge applies the caller's overrides over the profile defaults.
// Overrides win per field; unset fields keep the profile value.
func Merge(p BrandProfile, ov Overrides) Merged {
	m := Merged{
		Profile:     p,
		Style:       p.VisualStyle,
		Colors:      p.ColorPalette,
		Avoid:       p.AvoidElements,
		Composition: p.CompositionRules,
	}
	if ov.Style != "" {
		m.Style = ov.Style
	}
	if ov.Colors != "" {
		m.Colors = ov.Colors
	}
	if ov.Avoid != "" {
		m.Avoid = ov.Avoid
	}
	if ov.Composition != "" {
		m.Composition = ov.Composition
	}
	return m
}

// ComposeMetaPrompt builds the instruction sent to the text model asking
// it to draft a detailed image-generation prompt for the article. The
// output demands a title-driven concept, embeds the category template
// and a truncated content excerpt, and spells out the brand's visual
// standards and prohibitions.
func ComposeMetaPrompt(title, content string, ov Overrides, category, collection string) string {
	m := Merge(ProfileFor(collection), ov)
	p := m.Profile
	tmpl := CategoryTemplateFor(category)

	if category == "" {
		category = "general"
	}
	excerpt := content
	if len(excerpt) > contentExcerptLimit {
		excerpt = excerpt[:contentExcerptLimit]
	}

	var humanSection string
	if p.IncludeHumans {
		humanSection = fmt.Sprintf(`
7. HUMAN REPRESENTATION (REQUIRED):
   - Include %s
   - Show people in realistic, engaging scenarios
   - Avoid stock photo poses
   - Make it relatable to %s
   - People should be shown from behind or at angles (no direct face shots)`,
			p.HumanRepresentation, p.TargetAudience)
	}

	faceRule := "People's faces or hands"
	if p.IncludeHumans {
		faceRule = "Direct face shots (show people from behind or at angles)"
	}

	var guidelines string
	if p.AdditionalGuidelines != "" {
		guidelines = fmt.Sprintf("\n8. ADDITIONAL BRAND GUIDELINES:\n%s\n", p.AdditionalGuidelines)
	}

	return fmt.Sprintf(`Create a professional blog header image for this specific article:

BRAND: %s
TARGET AUDIENCE: %s
TONE: %s

ARTICLE TITLE (PRIMARY FOCUS): %q

Category: %s
Visual Template: %s

Content Summary:
%s

TASK: Write a detailed image-generation prompt that directly visualizes the article title.

MANDATORY REQUIREMENTS:

1. TITLE-DRIVEN CONCEPT (MOST IMPORTANT)
   - The image MUST visually represent %q
   - Every element should support the title's message
   - Be specific to THIS exact title, not generic to the category

2. CATEGORY VISUAL STYLE (for uniformity):
   - Use this template: %s
   - Adapt the template specifically for %q

3. STRICT VISUAL STANDARDS (same for ALL images):
   Base Colors: %s
   Style: %s
   Composition: %s
   Tone: %s
   Format: Wide landscape (1792x1024), perfect for blog header
   Quality: Professional editorial-grade photography
   Lighting: Natural daylight with soft diffused lighting

4. COMPOSITIONAL UNIFORMITY:
   - Central focal point at golden ratio
   - Subject occupies 60-70%% of frame
   - Breathing room around edges (10%% margin)
   - Horizontal orientation emphasized

5. TARGET AUDIENCE CONSIDERATION:
   - Design appeals to: %s
   - Tone should be: %s
   - Brand identity: %s

6. ABSOLUTE PROHIBITIONS:
   - %s
   - Any text, numbers, or letters
   - Company logos or brands
   - %s
   - Cliché imagery (handshakes, climbing arrows, lightbulbs)
   - Cluttered or busy compositions
   - Cartoon style, illustrations, 3D renders, CGI, animated or plastic appearance
%s%s
OUTPUT INSTRUCTIONS:
Write a detailed 150-200 word image-generation prompt that:
- Opens with the main concept directly related to %q
- Describes a professional photography scene in documentary/photojournalism style
- Specifies camera type, lens, and lighting conditions
- Includes exact color codes and composition details
- Appeals to %s and maintains a %s tone
- Explicitly prohibits cartoon, illustration, 3D render, CGI, or animated styles

Image prompt:`,
		p.BrandName, p.TargetAudience, p.Tone,
		title,
		category, tmpl,
		excerpt,
		title,
		tmpl, title,
		m.Colors, m.Style, m.Composition, p.Tone,
		p.TargetAudience, p.Tone, p.BrandName,
		m.Avoid,
		faceRule,
		humanSection, guidelines,
		title,
		p.TargetAudience, p.Tone,
	)
}

// UniformitySuffix is the deterministic closing clause appended to every
// generated image prompt. It pins camera, lighting, and format choices
// and restates the palette so output stays stylistically consistent
// regardless of what the text model produced.
func UniformitySuffix(colors string) string {
	return " | Professional blog header photograph" +
		" | 1792x1024 wide landscape format" +
		" | Shot on Canon EOS R5, 35mm f/2.8 lens" +
		" | Natural lighting, golden hour, soft shadows" +
		" | " + colors + " color palette" +
		" | Real environment setting" +
		" | Professional editorial photography" +
		" | Documentary style with authentic humans" +
		" | High-resolution DSLR image quality" +
		" | NO cartoon, illustration, 3D render, CGI, or animated style" +
		" | NO text, logos, or direct face shots" +
		" | Photojournalism aesthetic"
}

// Finalize cleans a model-drafted image prompt and appends the
// uniformity suffix. Markdown code fences are stripped since models
// occasionally wrap output despite instructions.
func Finalize(draft, colors string) string {
	draft = stripCodeFences(strings.TrimSpace(draft))
	return draft + UniformitySuffix(colors)
}

// stripCodeFences removes ``` fence lines anywhere in the text.
func stripCodeFences(s string) string {
	if !strings.Contains(s, "```") {
		return s
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			continue
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
