package service

import "catalog-service/internal/models"

// Colors returns the distinct sibling colors in order of first appearance
func Colors(siblings []models.VariantOption) []string {
	return distinct(siblings, func(v models.VariantOption) string { return v.Color })
}

// Storages returns the distinct sibling storage labels in order of first appearance
func Storages(siblings []models.VariantOption) []string {
	return distinct(siblings, func(v models.VariantOption) string { return v.Variant })
}

// ResolveColor picks the sibling with the requested color, preferring the
// current storage. ok is false when no sibling has that color.
func ResolveColor(current models.VariantOption, siblings []models.VariantOption, color string) (models.VariantOption, bool) {
	return resolve(siblings,
		func(v models.VariantOption) bool { return v.Color == color && v.Variant == current.Variant },
		func(v models.VariantOption) bool { return v.Color == color },
	)
}

// ResolveStorage picks the sibling with the requested storage, preferring
// the current color. ok is false when no sibling has that storage.
func ResolveStorage(current models.VariantOption, siblings []models.VariantOption, storage string) (models.VariantOption, bool) {
	return resolve(siblings,
		func(v models.VariantOption) bool { return v.Variant == storage && v.Color == current.Color },
		func(v models.VariantOption) bool { return v.Variant == storage },
	)
}

func resolve(siblings []models.VariantOption, preferred, fallback func(models.VariantOption) bool) (models.VariantOption, bool) {
	for _, v := range siblings {
		if preferred(v) {
			return v, true
		}
	}
	for _, v := range siblings {
		if fallback(v) {
			return v, true
		}
	}
	return models.VariantOption{}, false
}

func distinct(siblings []models.VariantOption, field func(models.VariantOption) string) []string {
	seen := make(map[string]struct{}, len(siblings))
	out := make([]string, 0, len(siblings))
	for _, v := range siblings {
		f := field(v)
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
