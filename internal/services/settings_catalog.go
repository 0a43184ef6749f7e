package services

import "ahudio-admin-server/internal/models"

const voiceProvider = "elevenlabs"

var voiceCatalog = []models.VoiceOption{
	{
		ID:          "EXAVITQu4vr4xnSDxMaL",
		Name:        "Bella",
		Gender:      "female",
		Language:    "tr-TR",
		PreviewURL:  "/static/voices/bella_preview.wav",
		Provider:    voiceProvider,
		Description: "Sıcak ve samimi kadın sesi",
	},
	{
		ID:          "jsCqWAovK2LkecY7zXl4",
		Name:        "Freya",
		Gender:      "female",
		Language:    "tr-TR",
		PreviewURL:  "/static/voices/freya_preview.wav",
		Provider:    voiceProvider,
		Description: "Profesyonel ve güven veren kadın sesi",
	},
	{
		ID:          "TX3LPaxmHKxFdv7VOQHJ",
		Name:        "Liam",
		Gender:      "male",
		Language:    "tr-TR",
		PreviewURL:  "/static/voices/liam_preview.wav",
		Provider:    voiceProvider,
		Description: "Güçlü ve ikna edici erkek sesi",
	},
	{
		ID:          "pNInz6obpgDQGcFmaJgB",
		Name:        "Adam",
		Gender:      "male",
		Language:    "tr-TR",
		PreviewURL:  "/static/voices/adam_preview.wav",
		Provider:    voiceProvider,
		Description: "Samimi ve rahat erkek sesi",
	},
}

var humorExamples = []models.ExamplePhrase{
	{HumorLevel: 0, GoalFocusLevel: 50, Phrase: "Randevunuz 15:00 için onaylandı. Başka bir konuda yardımcı olabilir miyim?"},
	{HumorLevel: 30, GoalFocusLevel: 50, Phrase: "Harika, randevunuz tamam! 15:00'te görüşmek üzere. Bir şey daha var mı sizin için yapabileceğim?"},
	{HumorLevel: 50, GoalFocusLevel: 50, Phrase: "Süper, randevunuz hazır! Sizi 15:00'te bekliyoruz, gecikmeyin ha! 😊 Başka nasıl yardımcı olabilirim?"},
	{HumorLevel: 70, GoalFocusLevel: 50, Phrase: "Tamam, not aldım! 15:00'te buluşuyoruz, kahvenizi hazırlarım! Bir isteğiniz daha var mı?"},
	{HumorLevel: 100, GoalFocusLevel: 50, Phrase: "Harikasınız! Randevunuz hazır, 15:00'te parti başlıyor! 🎉 Hadi bakalım, başka ne güzellikler yapabiliriz?"},
}

var goalFocusExamples = []models.ExamplePhrase{
	{HumorLevel: 30, GoalFocusLevel: 0, Phrase: "Anladım, düşünmeniz gerekiyor. İstediğiniz zaman bizi arayabilirsiniz."},
	{HumorLevel: 30, GoalFocusLevel: 30, Phrase: "Tabii, karar vermek için zaman alın. Ancak bu hafta özel bir kampanyamız var, bilginize."},
	{HumorLevel: 30, GoalFocusLevel: 50, Phrase: "Anlıyorum düşünmeniz gerektiğini. Şu anki kampanya cumaya kadar geçerli, kaçırmamanızı öneririm."},
	{HumorLevel: 30, GoalFocusLevel: 70, Phrase: "Düşünmenizi anlıyorum ama bu fırsat gerçekten kaçmaz. Size özel %20 indirim sunabilirim, ne dersiniz?"},
	{HumorLevel: 30, GoalFocusLevel: 100, Phrase: "Bu fırsatı bugün değerlendirmenizi şiddetle tavsiye ederim! Yarın bu fiyatlar geçerli olmayacak. Hemen randevunuzu oluşturalım mı?"},
}

var flexibilityExamples = []string{
	"0-20: Çok katı - Sadece belirlenen konular hakkında konuşur, sapma yapmaz",
	"20-40: Düşük esneklik - Çoğunlukla konuda kalır, minimal sapmalar",
	"40-60: Orta - Gerektiğinde konudan sapabilir ama ana hedefe döner",
	"60-80: Esnek - Müşteri sohbetine ayak uydurur, doğal akış",
	"80-100: Çok esnek - Serbest sohbet, müşteri yönlendirir",
}

// VoiceCatalog returns the fixed list of selectable voices
func VoiceCatalog() []models.VoiceOption {
	out := make([]models.VoiceOption, len(voiceCatalog))
	copy(out, voiceCatalog)
	return out
}

func inVoiceCatalog(id string) bool {
	for _, v := range voiceCatalog {
		if v.ID == id {
			return true
		}
	}
	return false
}

// levelText picks the description of the 20-wide band value falls in
func levelText(value int, bands [5]string) string {
	switch {
	case value < 20:
		return bands[0]
	case value < 40:
		return bands[1]
	case value < 60:
		return bands[2]
	case value < 80:
		return bands[3]
	default:
		return bands[4]
	}
}

var (
	humorBands     = [5]string{"çok ciddi", "ciddi", "dengeli", "samimi ve eğlenceli", "çok eğlenceli ve playful"}
	goalFocusBands = [5]string{"rahat, baskısız", "hafif yönlendirici", "dengeli ikna edici", "kararlı ve ikna edici", "çok ısrarcı ve hedef odaklı"}
)
