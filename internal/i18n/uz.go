package i18n

var uz = map[string]string{
	// Start & welcome
	"welcome_back":   "✅ Xush kelibsiz!\n\n• /submit — yangi trek yuklash\n• /profile — profilingizni ko'rish/tahrirlash\n• /language — tilni o'zgartirish\n• /cancel — bekor qilish",
	"welcome_new":    "🎵 <b>Sado Music</b>ga xush kelibsiz!\n\nMusiqangizni dunyo bilan baham ko'ring.\n\nTilni tanlang / Выберите язык:",
	"select_language": "🌐 Tilni tanlang / Выберите язык:",
	"language_saved": "✅ Til saqlandi!",

	// Errors
	"track_not_found":  "❌ Trek topilmadi.",
	"artist_not_found": "❌ Ijrochi topilmadi.",
	"donation_not_found": "❌ Donat topilmadi.",
	"track_inactive":   "❌ Trek endi faol emas.",
	"invalid_language": "Noto'g'ri til",
	"not_authorized":   "Sizda ruxsat yo'q.",
	"already_processed": "Allaqachon ko'rib chiqilgan.",
	"not_editable":     "Endi tahrirlab bo'lmaydi.",
	"unknown_action":   "Noma'lum amal.",

	// Profile
	"no_profile":      "Profil topilmadi. Avval /submit bosing.",
	"session_expired": "Sessiya tugadi. Qaytadan urinib ko'ring.",
	"updated":         "✅ Yangilandi!",

	// Profile editing
	"edit_name_prompt":    "Yangi ijrochi ismingizni yuboring:",
	"edit_payment_prompt": "Yangi to'lov havolasini yuboring (Click/Payme URL):",
	"edit_bio_prompt":     "Yangi bio yuboring ('-' tozalash uchun):",
	"choose_genre":        "Janrni tanlang:",
	"genre_updated":       "✅ Standart janr yangilandi: {genre}",

	// Onboarding
	"onboard_start":   "🎤 <b>Profil yaratish</b>\n\nIjrochi/sahna ismingizni yuboring:",
	"name_too_short":  "Ism juda qisqa. Qaytadan urinib ko'ring:",
	"payment_prompt":  "To'lov havolasini yuboring (Click/Payme URL):\n\n<i>Muxlislar shu yerga pul yuboradi.</i>",
	"invalid_url":     "Iltimos, http:// yoki https:// bilan boshlanadigan havola yuboring",
	"genre_prompt":    "Standart janringizni tanlang:",
	"bio_prompt":      "Ixtiyoriy: qisqa bio yuboring (1-2 qator), yoki '-' o'tkazib yuborish uchun.",
	"profile_created": "✅ Profil yaratildi!\n\nEndi audio faylingizni yuboring (Musiqa/Audio format).",

	// Submission
	"uploading_as":         "Yuklanyapti: <b>{name}</b>\n\nAudio faylingizni yuboring (Musiqa/Audio format).",
	"send_title":           "Trek nomini yuboring:",
	"title_too_short":      "Nom juda qisqa. Qaytadan urinib ko'ring:",
	"choose_genre_default": "Janrni tanlang (standart: {genre}):",
	"caption_prompt":       "Ixtiyoriy: qisqa tavsif yuboring, yoki '-' o'tkazib yuborish uchun.",
	"submission_received":  "✅ <b>Trek qabul qilindi!</b>\n\n<b>{title}</b> trekingiz ko'rib chiqish uchun yuborildi.\nTasdiqlangach xabar beramiz.\n\nYuborish ID: <code>{id}</code>",
	"submission_failed":    "❌ Yuborishda xatolik: {error}",
	"something_wrong":      "Xatolik yuz berdi. /submit qaytadan bosing.",

	// Submitter notifications
	"submitter_approved": "✅ <b>{title}</b> trekingiz tasdiqlandi va joylandi!",
	"submitter_rejected": "❌ <b>{title}</b> trekingiz tasdiqlanmadi.\n\nIltimos, qoidalarga rioya qiling va qaytadan urinib ko'ring.",

	// Donation flow
	"custom_amount_prompt": "✏️ Summani so'mda kiriting (masalan, 15000):",
	"amount_not_number":    "❌ Iltimos, to'g'ri raqam kiriting",
	"amount_below_min":     "❌ Eng kam summa — {min} so'm",
	"amount_above_max":     "❌ Eng ko'p summa — {max} so'm",
	"donation_throttled":   "⏳ Bu trek uchun soatlik donat chegarasiga yetdingiz. Birozdan so'ng urinib ko'ring.",
	"ask_note":             "✅ Summa: <b>{amount} so'm</b>\n\n🎵 {title}\n🎤 {artist}\n\nIjrochiga xabar qoldirasizmi?",
	"choose_visibility":    "Donat ko'rinishini tanlang:",
	"note_prompt":          "Xabaringizni yuboring (120 belgigacha). Havolalar olib tashlanadi.",
	"note_saved":           "✅ Xabar saqlandi.",
	"donation_canceled":    "❌ Donat bekor qilindi.",
	"donation_confirmed":   "✅ Donat tasdiqlandi (Demo). Ijrochini qo'llab-quvvatlaganingiz uchun rahmat!",
	"anon_updated":         "Yangilandi.",
	"confirmed_short":      "Tasdiqlandi ✅",
	"canceled_short":       "Bekor qilindi.",

	// Cancel & help
	"cancelled":         "Bekor qilindi.",
	"nothing_to_cancel": "Bekor qiladigan narsa yo'q.",
	"help_text":         "🎵 <b>Sado Music Bot - Yordam</b>\n\n<b>Asosiy buyruqlar:</b>\n• /start — Botni ishga tushirish\n• /channels — Kanallar ro'yxati\n• /search — Ijrochi yoki qo'shiq qidirish\n• /help — Bu yordam xabari\n\n<b>Ijrochilar uchun:</b>\n• /submit — Yangi trek yuborish\n• /profile — Profil ko'rish/tahrirlash\n\n<b>Boshqa:</b>\n• /language — Tilni o'zgartirish\n• /cancel — Bekor qilish\n• /chatid — Chat ID olish\n\n<i>Donat tugmalari hozircha Demo rejimida.</i>",

	// Channels
	"channels_list_header": "📺 <b>Bizning kanallar</b>\n\nQuyidagi kanallarda eng yaxshi musiqani topishingiz mumkin:",
	"no_channels":          "Hozircha kanallar mavjud emas.",

	// Search
	"search_prompt":         "🔍 <b>Qidiruv</b>\n\nIjrochi ismini yoki qo'shiq nomini yuboring:",
	"search_no_results":     "❌ Hech narsa topilmadi. Boshqa so'z bilan urinib ko'ring.",
	"search_results_header": "🔍 <b>Qidiruv natijalari:</b>\n",

	// Dispatcher prompts
	"choose_user_type":       "Siz kimsiz?",
	"listener_info":          "🎧 Ajoyib! Kanallarimizda yangi musiqa kashf qiling:\n/channels — kanallar ro'yxati\n/search — ijrochi yoki qo'shiq qidirish",
	"send_audio_prompt":      "🎵 Trek audio faylini yuboring:",
	"channel_not_configured": "⚠️ Bu janr uchun kanal sozlanmagan. Sozlamalarni tekshirib, qayta urinib ko'ring.",

	// Button labels
	"i_am_artist":        "🎤 Men ijrochiman",
	"i_am_listener":      "🎧 Men tinglovchiman",
	"cancel":             "❌ Bekor qilish",
	"confirm":            "✅ Tasdiqlash",
	"edit_name":          "✏️ Ismni o'zgartirish",
	"edit_payment":       "💳 To'lov havolasini o'zgartirish",
	"edit_genre":         "🎧 Janrni o'zgartirish",
	"edit_bio":           "📝 Bio o'zgartirish",
	"custom_amount":      "✍️ Boshqa summa",
	"add_note":           "💬 Izoh qo'shish",
	"skip_note":          "⏭ Izohsiz davom etish",
	"public_donation":    "👤 Ochiq",
	"anonymous_donation": "🕶 Anonim",
	"anon_on":            "🕶 Anonim: YOQILGAN",
	"anon_off":           "🕶 Anonim: O'CHIQ",
	"support_artist":     "❤️ Ijrochini qo'llab-quvvatlash",
}
