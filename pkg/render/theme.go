package render

import (
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// ThemeFromSelection flattens a go-theme selection into the renderer-facing
// configuration: variant templates and tokens override the manifest's,
// fallbacks fill partial gaps, and every token is mirrored as a --token CSS
// variable.
func ThemeFromSelection(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}

	cfg := &theme.RendererConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}

	manifest := selection.Manifest
	var variant theme.Variant
	if manifest != nil {
		if v, ok := manifest.Variants[selection.Variant]; ok {
			variant = v
		}
	}

	cfg.Partials = mergeStringMaps(fallbacks, manifestTemplates(manifest), variant.Templates)
	cfg.Tokens = mergeStringMaps(manifestTokens(manifest), variant.Tokens)

	if len(cfg.Tokens) > 0 {
		cfg.CSSVars = make(map[string]string, len(cfg.Tokens))
		for token, value := range cfg.Tokens {
			cfg.CSSVars["--"+token] = value
		}
	}

	cfg.AssetURL = assetResolver(manifest, variant)
	return cfg
}

// CSSVarsStyle renders the CSS variables of a theme configuration as a :root
// block, with keys sorted for stable output.
func CSSVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}

	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(cfg.CSSVars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

func manifestTemplates(m *theme.Manifest) map[string]string {
	if m == nil {
		return nil
	}
	return m.Templates
}

func manifestTokens(m *theme.Manifest) map[string]string {
	if m == nil {
		return nil
	}
	return m.Tokens
}

// mergeStringMaps layers maps left to right; later maps win.
func mergeStringMaps(maps ...map[string]string) map[string]string {
	out := make(map[string]string)
	for _, m := range maps {
		for key, value := range m {
			out[key] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func assetResolver(manifest *theme.Manifest, variant theme.Variant) func(string) string {
	if manifest == nil {
		return nil
	}

	prefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}
	files := mergeStringMaps(manifest.Assets.Files, variant.Assets.Files)

	return func(key string) string {
		file, ok := files[key]
		if !ok || file == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
	}
}
