package cards

// Rarity bounds
const (
	MinRarity = 1
	MaxRarity = 5
)

var rarityTiers = [MaxRarity]string{
	"Common",
	"Uncommon",
	"Rare",
	"Very Rare",
	"Legendary",
}

// RarityText returns the tier name for a rarity, clamping out of range values
func RarityText(rarity int) string {
	return rarityTiers[ClampRarity(rarity)-1]
}

// ClampRarity forces a rarity into [MinRarity, MaxRarity]
func ClampRarity(rarity int) int {
	return min(max(rarity, MinRarity), MaxRarity)
}
