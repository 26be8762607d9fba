// Package wordbank は組み込みの初期単語と、ファイルからの単語取り込みを扱います。
package wordbank

import (
	"slices"

	"go_5_vocab_cards/internal/model"
)

var seedWords = []model.ImportWordRow{
	// A1
	{Turkish: "Merhaba", English: "Hello", Level: model.LevelA1},
	{Turkish: "Teşekkürler", English: "Thank you", Level: model.LevelA1},
	{Turkish: "Evet", English: "Yes", Level: model.LevelA1},
	{Turkish: "Hayır", English: "No", Level: model.LevelA1},
	{Turkish: "Lütfen", English: "Please", Level: model.LevelA1},
	{Turkish: "Günaydın", English: "Good morning", Level: model.LevelA1},
	{Turkish: "İyi akşamlar", English: "Good evening", Level: model.LevelA1},
	{Turkish: "Su", English: "Water", Level: model.LevelA1},
	{Turkish: "Yemek", English: "Food", Level: model.LevelA1},
	{Turkish: "Ev", English: "House", Level: model.LevelA1},
	{Turkish: "Araba", English: "Car", Level: model.LevelA1},
	{Turkish: "Kitap", English: "Book", Level: model.LevelA1},
	{Turkish: "Okul", English: "School", Level: model.LevelA1},
	{Turkish: "Aile", English: "Family", Level: model.LevelA1},
	{Turkish: "Arkadaş", English: "Friend", Level: model.LevelA1},

	// A2
	{Turkish: "Düşünmek", English: "To think", Level: model.LevelA2},
	{Turkish: "Anlamak", English: "To understand", Level: model.LevelA2},
	{Turkish: "Öğrenmek", English: "To learn", Level: model.LevelA2},
	{Turkish: "Çalışmak", English: "To work", Level: model.LevelA2},
	{Turkish: "Yazmak", English: "To write", Level: model.LevelA2},
	{Turkish: "Konuşmak", English: "To speak", Level: model.LevelA2},
	{Turkish: "Dinlemek", English: "To listen", Level: model.LevelA2},
	{Turkish: "Görmek", English: "To see", Level: model.LevelA2},
	{Turkish: "Bilmek", English: "To know", Level: model.LevelA2},
	{Turkish: "Sevmek", English: "To love", Level: model.LevelA2},
	{Turkish: "İstemek", English: "To want", Level: model.LevelA2},
	{Turkish: "Gelmek", English: "To come", Level: model.LevelA2},
	{Turkish: "Gitmek", English: "To go", Level: model.LevelA2},
	{Turkish: "Yardım", English: "Help", Level: model.LevelA2},
	{Turkish: "Zaman", English: "Time", Level: model.LevelA2},

	// B1
	{Turkish: "Başarı", English: "Success", Level: model.LevelB1},
	{Turkish: "Deneyim", English: "Experience", Level: model.LevelB1},
	{Turkish: "Gelecek", English: "Future", Level: model.LevelB1},
	{Turkish: "Hatırlamak", English: "To remember", Level: model.LevelB1},
	{Turkish: "Unutmak", English: "To forget", Level: model.LevelB1},
	{Turkish: "Geliştirmek", English: "To develop", Level: model.LevelB1},
	{Turkish: "Değiştirmek", English: "To change", Level: model.LevelB1},
	{Turkish: "Açıklamak", English: "To explain", Level: model.LevelB1},
	{Turkish: "Karşılaştırmak", English: "To compare", Level: model.LevelB1},
	{Turkish: "Tartışmak", English: "To discuss", Level: model.LevelB1},
	{Turkish: "Karar", English: "Decision", Level: model.LevelB1},
	{Turkish: "Sorumluluk", English: "Responsibility", Level: model.LevelB1},
	{Turkish: "Önemli", English: "Important", Level: model.LevelB1},
	{Turkish: "Güven", English: "Trust", Level: model.LevelB1},
	{Turkish: "Fırsat", English: "Opportunity", Level: model.LevelB1},
}

// SeedWords は組み込みの初期単語 (各レベル15語) のコピーを返します。
func SeedWords() []model.ImportWordRow {
	return slices.Clone(seedWords)
}
