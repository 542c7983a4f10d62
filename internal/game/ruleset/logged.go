package ruleset

import "go.uber.org/zap"

// LoadLogged returns the rule set at path, or the embedded default when path is empty,
// and logs a summary of what was loaded.
//
// Precondition: logger must be non-nil.
// Postcondition: Returns a ready-to-use *Rules or a non-nil error.
func LoadLogged(path string, logger *zap.Logger) (*Rules, error) {
	if path == "" {
		r := Default()
		logger.Debug("using embedded rules", rulesFields(r)...)
		return r, nil
	}
	r, err := LoadFile(path)
	if err != nil {
		logger.Error("loading rules", zap.String("path", path), zap.Error(err))
		return nil, err
	}
	logger.Info("loaded rules", append(rulesFields(r), zap.String("path", path))...)
	return r, nil
}

func rulesFields(r *Rules) []zap.Field {
	return []zap.Field{
		zap.Int("max_level", r.MaxLevel),
		zap.Int("tiers", len(r.Tiers)),
		zap.Int("advancements", len(r.Advancements)),
		zap.Int("classes", len(r.Classes)),
	}
}
