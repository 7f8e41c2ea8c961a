package agronomy

// kcTable maps (crop type, stage name) to a crop coefficient. Values follow
// FAO-56 style stage curves, flattened to one number per stage.
var kcTable = map[string]map[string]float64{
	"Tomato": {
		"Germination":          0.60,
		"Vegetative":           0.85,
		"Flowering":            1.15,
		"Fruit Development":    1.20,
		"Maturation & Harvest": 0.80,
	},
	"Onion": {
		"Germination":      0.50,
		"Vegetative":       0.70,
		"Bulb Initiation":  1.00,
		"Bulb Development": 1.05,
		"Maturation":       0.75,
	},
	"Grape": {
		"Bud Development": 0.45,
		"Flowering":       0.70,
		"Fruit Set":       0.85,
		"Veraison":        0.80,
		"Harvest":         0.60,
	},
}

const defaultKc = 0.8

// CropCoefficient looks up Kc for a crop type and stage; unknown combinations
// fall back to a mid-season default.
func CropCoefficient(cropType, stageName string) float64 {
	if stages, ok := kcTable[cropType]; ok {
		if kc, ok := stages[stageName]; ok {
			return kc
		}
	}
	return defaultKc
}
