// internal/sports/variants.go
//
// Variant lookup and resolution. Resolving a variant produces a new
// Config-shaped view with players/answerPool/columns swapped; the input
// config is never mutated.

package sports

// FindVariant returns the sport's variant with the given id, or nil when
// variantID is empty or unknown.
func FindVariant(cfg *Config, variantID string) *Variant {
	if variantID == "" {
		return nil
	}
	for i := range cfg.Variants {
		if cfg.Variants[i].ID == variantID {
			return &cfg.Variants[i]
		}
	}
	return nil
}

// Resolve applies a variant to a base config. When the variant exists, the
// returned config carries the variant's subtitle, players, answer pool, and
// columns with the active variant marked. Otherwise it equals the base config
// with any active variant cleared. Teams and sport identity are inherited
// either way.
func Resolve(cfg *Config, variantID string) *Config {
	out := *cfg
	v := FindVariant(cfg, variantID)
	if v == nil {
		out.ActiveVariantID = ""
		out.ActiveVariantLabel = ""
		return &out
	}
	if v.Subtitle != "" {
		out.Subtitle = v.Subtitle
	}
	out.Players = v.Players
	out.AnswerPool = v.AnswerPool
	out.Columns = v.Columns
	out.ActiveVariantID = v.ID
	out.ActiveVariantLabel = v.Label
	return &out
}
