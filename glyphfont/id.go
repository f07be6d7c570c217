package glyphfont

import "strings"

// GenerateID computes the lowercase, underscore-joined font-id slug used
// as the top-level output directory and pbf fontstack name: family,
// then width (if not the midpoint "normal"), then the weight word,
// then "italic" if italic. The weight word is always present, including
// for the default weight, so that e.g. "Noto Sans" Regular becomes
// "noto_sans_regular" rather than just "noto_sans".
func GenerateID(m Metadata) string {
	parts := []string{slugify(m.Family)}
	if m.Width != "" && m.Width != "normal" {
		parts = append(parts, strings.ReplaceAll(m.Width, "-", "_"))
	}
	parts = append(parts, weightWord(m.Weight))
	if m.Italic {
		parts = append(parts, "italic")
	}
	return strings.Join(parts, "_")
}

// GenerateDisplayName produces a human-readable variant name, e.g. "Noto
// Sans Condensed Bold Italic". Neither font_families.json nor the debug
// output includes it.
func GenerateDisplayName(m Metadata) string {
	name := m.Family
	if m.Width != "" && m.Width != "normal" {
		name += " " + titleCaseWidth(m.Width)
	}
	name += " " + strings.Title(weightWord(m.Weight))
	if m.Italic {
		name += " Italic"
	}
	return name
}

func titleCaseWidth(width string) string {
	parts := strings.Split(width, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

func slugify(family string) string {
	var b strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(family) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "_")
}
