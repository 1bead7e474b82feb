// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import "fmt"

// staticFallbacks holds one hand-written descriptive paragraph per
// collection, used when the text model cannot draft a prompt. Each
// paragraph names its brand and is a %s template for the article title.
var staticFallbacks = map[string]string{
	CollectionYaicos: "Professional documentary photograph for a Yaicos education article titled %q: " +
		"diverse international students collaborating in a bright modern campus space, " +
		"shown from behind or at an angle with no direct faces, natural daylight, " +
		"bright blues (#2196F3) and warm oranges (#FF9800) against white backgrounds, " +
		"welcoming and aspirational atmosphere, candid photojournalism style",

	CollectionAmabex: "Clean corporate visualization for an Amabex procurement article titled %q: " +
		"abstract representation of supply chains and enterprise business networks, " +
		"interconnected nodes and systematic process flows, corporate blues (#003D7A, #0066CC) " +
		"with silver-gray accents on white, professional studio lighting, " +
		"sophisticated Fortune 500 aesthetic, no people",

	CollectionGuardScan: "High-tech cybersecurity visualization for a GuardScan article titled %q: " +
		"encrypted data streams and network topology rendered in cyber green (#00FF41) and " +
		"electric blue (#00D4FF) over a dark background (#0A0E27), circuit patterns and " +
		"digital shield architecture, dramatic neon-accented lighting, " +
		"enterprise security operations center atmosphere, no people",
}

// genericFallback covers unknown collections.
const genericFallback = "Modern professional blog header image for an article titled %q: " +
	"clean abstract composition representing the article's subject, vibrant blues and " +
	"whites with subtle gradients, centered subject with professional lighting, no people"

// StaticFallback returns the deterministic fallback image prompt for a
// collection, with the uniformity suffix already applied. It always
// yields a non-empty prompt.
func StaticFallback(title, collection string) string {
	tmpl, ok := staticFallbacks[collection]
	if !ok {
		tmpl = genericFallback
	}
	m := Merge(ProfileFor(collection), Overrides{})
	return fmt.Sprintf(tmpl, title) + UniformitySuffix(m.Colors)
}
