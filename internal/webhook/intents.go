package webhook

import (
	"strings"
	"time"
)

// MealSource feeds the menu intents with live dining data
type MealSource interface {
	MealsOn(date string) (lunch, dinner []string, ok bool)
}

// DepartureSource feeds the ring intent with live schedule data
type DepartureSource interface {
	RingTimes() []string
}

// Dispatcher maps chatbot intent names to their text builders
type Dispatcher struct {
	handlers map[string]func() string
}

// NewDispatcher wires the nine supported intents. The meal and departure
// sources replace the canned menu and ring texts with live collection data.
func NewDispatcher(meals MealSource, departures DepartureSource) *Dispatcher {
	d := &Dispatcher{}
	d.handlers = map[string]func() string{
		"menu.today":        func() string { return todayMenu(meals) },
		"menu.tomorrow":     tomorrowMenu,
		"transport.ring":    func() string { return ringSchedule(departures) },
		"transport.general": transportInfo,
		"schedule.today":    todaySchedule,
		"library.hours":     libraryHours,
		"contact.info":      contactInfo,
		"campus.info":       campusInfo,
		"help.general":      generalHelp,
	}
	return d
}

// Dispatch resolves an intent name to its response text.
// Unknown intents get a generic apology.
func (d *Dispatcher) Dispatch(intentName string) string {
	if h, ok := d.handlers[intentName]; ok {
		return h()
	}
	return "Üzgünüm, bu konuda size yardımcı olamıyorum. \"Yardım\" yazarak neler yapabileceğimi görebilirsiniz."
}

func todayMenu(meals MealSource) string {
	today := time.Now().Format("2006-01-02")
	lunch, dinner, ok := meals.MealsOn(today)
	if !ok || (len(lunch) == 0 && len(dinner) == 0) {
		return "Bugün için menü bilgisi bulunamadı. Lütfen daha sonra tekrar deneyin."
	}

	var b strings.Builder
	b.WriteString("🍽️ **Bugünün Menüsü**\n\n")
	if len(lunch) > 0 {
		b.WriteString("**Öğle Yemeği:**\n")
		for _, item := range lunch {
			b.WriteString("• " + item + "\n")
		}
		b.WriteString("\n")
	}
	if len(dinner) > 0 {
		b.WriteString("**Akşam Yemeği:**\n")
		for _, item := range dinner {
			b.WriteString("• " + item + "\n")
		}
	}
	b.WriteString("\nAfiyet olsun! 😊")
	return b.String()
}

func tomorrowMenu() string {
	return "Yarının menüsü henüz hazırlanmadı. Genellikle menüler bir gün önceden açıklanır. Lütfen yarın tekrar kontrol edin! 📅"
}

func ringSchedule(departures DepartureSource) string {
	times := departures.RingTimes()
	if len(times) == 0 {
		return "Ring servisi şu anda hizmet vermiyor. Detaylı bilgi için ulaşım ofisini arayabilirsiniz: (0212) 123-4567"
	}

	var b strings.Builder
	b.WriteString("🚌 **Kampüs Ring Sefer Saatleri**\n\n")
	b.WriteString("**Hafta İçi Sefer Saatleri:**\n")
	for i, t := range times {
		if i%3 == 0 {
			b.WriteString("\n")
		}
		b.WriteString(t + "  ")
	}
	b.WriteString("\n\n**Not:** Hafta sonu seferler sınırlıdır. Detaylı bilgi için ulaşım ofisini arayabilirsiniz: (0212) 123-4567")
	return b.String()
}

func transportInfo() string {
	return `🚌 **Kampüs Ulaşım Bilgileri**

**Ring Servisi:**
• Kampüs içi ücretsiz ulaşım
• 08:00 - 18:00 arası düzenli sefer
• Hafta sonları sınırlı sefer

**Toplu Taşıma:**
• Metro: Çapa - Vezneciler hattı
• Otobüs: 28, 87T, 55T
• Dolmuş: Eminönü - Çapa hattı

**Özel Araç:**
• Kampüs içi park alanları mevcut
• Ücretli park sistemi
• Öğrenci indirimli park ücreti

Detaylı bilgi için: ulaşım@universite.edu.tr`
}

func todaySchedule() string {
	return "Ders programınızı görmek için lütfen uygulamaya giriş yapın ve \"Ders Programım\" bölümünü ziyaret edin. 📚"
}

func libraryHours() string {
	return `📚 **Kütüphane Çalışma Saatleri**

**Merkez Kütüphane:**
• Pazartesi - Cuma: 08:00 - 22:00
• Cumartesi: 09:00 - 18:00
• Pazar: 10:00 - 18:00

**Fakülte Kütüphaneleri:**
• Pazartesi - Cuma: 08:00 - 20:00
• Hafta sonu: Kapalı

**24 Saat Çalışma Salonu:**
• Sürekli açık (sınav dönemlerinde)
• Öğrenci kartı ile giriş

**Rezervasyon:**
• Online rezervasyon: kutuphane.universite.edu.tr
• Telefon: (0212) 123-4578`
}

func contactInfo() string {
	return `📞 **İletişim Bilgileri**

**Genel Bilgi:**
• Telefon: (0212) 123-4567
• E-posta: bilgi@universite.edu.tr
• Adres: Üniversite Cad. No:1, İstanbul

**Öğrenci İşleri:**
• Telefon: (0212) 123-4568
• E-posta: ogrenci@universite.edu.tr

**Teknik Destek:**
• Telefon: (0212) 123-4569
• E-posta: teknik@universite.edu.tr

**Acil Durum:**
• Güvenlik: (0212) 123-4570
• Sağlık: (0212) 123-4571

**Sosyal Medya:**
• Instagram: @universitesi
• Twitter: @uni_resmi
• Facebook: /universitesi`
}

func campusInfo() string {
	return `🏫 **Kampüs Bilgileri**

**Fakülteler:**
• Mühendislik Fakültesi
• İktisadi ve İdari Bilimler Fakültesi
• Fen-Edebiyat Fakültesi
• Güzel Sanatlar Fakültesi

**Sosyal Tesisler:**
• Öğrenci Merkezi
• Spor Kompleksi
• Konferans Salonu
• Kafeterya ve Restoranlar

**Hizmetler:**
• Sağlık Merkezi
• Bankacılık Hizmetleri
• Kırtasiye ve Fotokopi
• Kitap ve Kıyafet Mağazaları

**Etkinlik Alanları:**
• Açık Hava Tiyatrosu
• Basketbol ve Tenis Kortları
• Yürüyüş Parkurları
• Piknik Alanları`
}

func generalHelp() string {
	return `🤖 **Nasıl Yardımcı Olabilirim?**

**Sık Sorulan Sorular:**
• "Bugün ne yemek var?" - Günlük menüyü öğrenin
• "Ring saatleri nedir?" - Sefer saatlerini görün
• "Kütüphane kaçta açık?" - Çalışma saatlerini öğrenin
• "İletişim bilgileri" - Telefon ve e-posta adresleri

**Diğer Konular:**
• Kampüs haritası ve yönlendirme
• Etkinlik ve duyuru bilgileri
• Öğrenci hizmetleri
• Teknik destek

Size nasıl yardımcı olabilirim? Soru sormaktan çekinmeyin! 😊`
}

//   This project is the monolithic backend API for the Smart Campus portal. Announcements, events, dining menus, course schedules, transport, file sharing, notifications and the campus chatbot webhook for our apps.
//   API Copyright (C) 2025 Smart Campus
//       This program is free software: you can redistribute it and/or modify
//       it under the terms of the GNU General Public License as published by
//       the Free Software Foundation, either version 3 of the License, or
//       (at your option) any later version.

//       This program is distributed in the hope that it will be useful,
//       but WITHOUT ANY WARRANTY; without even the implied warranty of
//       MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//       GNU General Public License for more details.

//       You should have received a copy of the GNU General Public License
//       along with this program.  If not, see <https://www.gnu.org/licenses/>.
