package catalog

import "github.com/nobunaga0709/sticker-habit/internal/models"

// PresetStickers returns the built-in sticker set: 12 normal, 6 rare,
// 3 super rare.
func PresetStickers() []models.Sticker {
	return []models.Sticker{
		{ID: "s001", Name: "Heart", Emoji: "❤️", Rarity: models.RarityNormal, Color: "#FFE0E6"},
		{ID: "s002", Name: "Star", Emoji: "⭐", Rarity: models.RarityNormal, Color: "#FFF9C4"},
		{ID: "s003", Name: "Flower", Emoji: "🌸", Rarity: models.RarityNormal, Color: "#FCE4EC"},
		{ID: "s004", Name: "Sunshine", Emoji: "☀️", Rarity: models.RarityNormal, Color: "#FFF3E0"},
		{ID: "s005", Name: "Rainbow", Emoji: "🌈", Rarity: models.RarityNormal, Color: "#E8F5E9"},
		{ID: "s006", Name: "Moon", Emoji: "🌙", Rarity: models.RarityNormal, Color: "#E8EAF6"},
		{ID: "s007", Name: "Butterfly", Emoji: "🦋", Rarity: models.RarityNormal, Color: "#F3E5F5"},
		{ID: "s008", Name: "Clover", Emoji: "🍀", Rarity: models.RarityNormal, Color: "#E8F5E9"},
		{ID: "s009", Name: "Bell", Emoji: "🔔", Rarity: models.RarityNormal, Color: "#FFFDE7"},
		{ID: "s010", Name: "Gem", Emoji: "💎", Rarity: models.RarityNormal, Color: "#E1F5FE"},
		{ID: "s011", Name: "Cake", Emoji: "🎂", Rarity: models.RarityNormal, Color: "#FBE9E7"},
		{ID: "s012", Name: "Balloon", Emoji: "🎈", Rarity: models.RarityNormal, Color: "#FCE4EC"},
		{ID: "s013", Name: "Unicorn", Emoji: "🦄", Rarity: models.RarityRare, Color: "#EDE7F6"},
		{ID: "s014", Name: "Dragon", Emoji: "🐉", Rarity: models.RarityRare, Color: "#E8F5E9"},
		{ID: "s015", Name: "Crown", Emoji: "👑", Rarity: models.RarityRare, Color: "#FFF8E1"},
		{ID: "s016", Name: "Diamond", Emoji: "💠", Rarity: models.RarityRare, Color: "#E1F5FE"},
		{ID: "s017", Name: "Magic", Emoji: "✨", Rarity: models.RarityRare, Color: "#F3E5F5"},
		{ID: "s018", Name: "Phoenix", Emoji: "🔥", Rarity: models.RarityRare, Color: "#FBE9E7"},
		{ID: "s019", Name: "Gold Star", Emoji: "🌟", Rarity: models.RaritySuperRare, Color: "#FFF9C4"},
		{ID: "s020", Name: "Rainbow Star", Emoji: "🎆", Rarity: models.RaritySuperRare, Color: "#F8BBD0"},
		{ID: "s021", Name: "Magic Star", Emoji: "🪄", Rarity: models.RaritySuperRare, Color: "#E8EAF6"},
	}
}
