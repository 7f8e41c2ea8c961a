package agronomy

// Stage is one phenological window on the DAP axis. The range is [Start, End):
// a crop is "in" the stage from day Start up to but not including day End.
type Stage struct {
	Name        string
	Description string
	Start       int
	End         int
}

// stageTables holds the ordered stage sequence per crop type. Ranges per crop
// must be contiguous and non-overlapping; the last stage's End is the total
// cycle length used for progress normalization.
var stageTables = map[string][]Stage{
	"Tomato": {
		{Name: "Germination", Description: "Seedling emergence and early root establishment", Start: 0, End: 15},
		{Name: "Vegetative", Description: "Leaf and stem growth, canopy development", Start: 15, End: 35},
		{Name: "Flowering", Description: "Flower clusters form, pollination window", Start: 35, End: 55},
		{Name: "Fruit Development", Description: "Fruit set and sizing, peak water demand", Start: 55, End: 90},
		{Name: "Maturation & Harvest", Description: "Ripening, staggered picking begins", Start: 90, End: 120},
	},
	"Onion": {
		{Name: "Germination", Description: "Emergence of flag leaf", Start: 0, End: 10},
		{Name: "Vegetative", Description: "Leaf blade production", Start: 10, End: 40},
		{Name: "Bulb Initiation", Description: "Bulbing triggered by day length", Start: 40, End: 70},
		{Name: "Bulb Development", Description: "Bulb swelling, highest nutrient uptake", Start: 70, End: 100},
		{Name: "Maturation", Description: "Tops fall over, curing before lifting", Start: 100, End: 110},
	},
	"Grape": {
		{Name: "Bud Development", Description: "Bud break and early shoot emergence after pruning", Start: 0, End: 40},
		{Name: "Flowering", Description: "Inflorescence bloom and berry set", Start: 40, End: 80},
		{Name: "Fruit Set", Description: "Berry growth, cluster thinning window", Start: 80, End: 120},
		{Name: "Veraison", Description: "Berries soften and colour, sugars accumulate", Start: 120, End: 160},
		{Name: "Harvest", Description: "Brix-based picking decisions", Start: 160, End: 180},
	},
}

// defaultCropType backs stage lookups for unregistered crop types. Advisory
// software prefers approximate guidance over refusing to answer.
const defaultCropType = "Tomato"

// StagesFor returns the stage table for a crop type, falling back to the
// default table for unknown types.
func StagesFor(cropType string) []Stage {
	if stages, ok := stageTables[cropType]; ok {
		return stages
	}
	return stageTables[defaultCropType]
}

// CycleLength returns the total crop-cycle length in days (the final stage's
// upper bound).
func CycleLength(cropType string) int {
	stages := StagesFor(cropType)
	return stages[len(stages)-1].End
}

// SupportedCropTypes lists the crop types with their own stage table.
func SupportedCropTypes() []string {
	return []string{"Grape", "Onion", "Tomato"}
}
