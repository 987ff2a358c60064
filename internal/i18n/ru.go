package i18n

var ru = map[string]string{
	// Start & welcome
	"welcome_back":   "✅ С возвращением!\n\n• /submit — загрузить новый трек\n• /profile — просмотр/редактирование профиля\n• /language — сменить язык\n• /cancel — отмена",
	"welcome_new":    "🎵 Добро пожаловать в <b>Sado Music</b>!\n\nДелитесь своей музыкой с миром.\n\nTilni tanlang / Выберите язык:",
	"select_language": "🌐 Tilni tanlang / Выберите язык:",
	"language_saved": "✅ Язык сохранён!",

	// Errors
	"track_not_found":  "❌ Трек не найден.",
	"artist_not_found": "❌ Артист не найден.",
	"donation_not_found": "❌ Донат не найден.",
	"track_inactive":   "❌ Трек больше не активен.",
	"invalid_language": "Неверный язык",
	"not_authorized":   "У вас нет доступа.",
	"already_processed": "Уже обработано.",
	"not_editable":     "Редактирование недоступно.",
	"unknown_action":   "Неизвестное действие.",

	// Profile
	"no_profile":      "Профиль не найден. Сначала нажмите /submit.",
	"session_expired": "Сессия истекла. Попробуйте снова.",
	"updated":         "✅ Обновлено!",

	// Profile editing
	"edit_name_prompt":    "Отправьте новое имя артиста:",
	"edit_payment_prompt": "Отправьте новую ссылку для оплаты (Click/Payme URL):",
	"edit_bio_prompt":     "Отправьте новое био ('-' чтобы очистить):",
	"choose_genre":        "Выберите жанр:",
	"genre_updated":       "✅ Жанр по умолчанию обновлён: {genre}",

	// Onboarding
	"onboard_start":   "🎤 <b>Создание профиля</b>\n\nОтправьте ваше сценическое имя:",
	"name_too_short":  "Имя слишком короткое. Попробуйте ещё:",
	"payment_prompt":  "Отправьте ссылку для оплаты (Click/Payme URL):\n\n<i>Сюда фанаты будут отправлять донаты.</i>",
	"invalid_url":     "Пожалуйста, отправьте ссылку начинающуюся с http:// или https://",
	"genre_prompt":    "Выберите жанр по умолчанию:",
	"bio_prompt":      "Опционально: отправьте короткое био (1-2 строки), или '-' чтобы пропустить.",
	"profile_created": "✅ Профиль создан!\n\nТеперь отправьте аудиофайл (формат Музыка/Аудио).",

	// Submission
	"uploading_as":         "Загрузка от: <b>{name}</b>\n\nОтправьте аудиофайл (формат Музыка/Аудио).",
	"send_title":           "Отправьте название трека:",
	"title_too_short":      "Название слишком короткое. Ещё раз:",
	"choose_genre_default": "Выберите жанр (по умолчанию: {genre}):",
	"caption_prompt":       "Опционально: отправьте короткое описание, или '-' чтобы пропустить.",
	"submission_received":  "✅ <b>Трек получен!</b>\n\nВаш трек <b>{title}</b> отправлен на модерацию.\nВы получите уведомление после одобрения.\n\nID отправки: <code>{id}</code>",
	"submission_failed":    "❌ Ошибка отправки: {error}",
	"something_wrong":      "Что-то пошло не так. Нажмите /submit снова.",

	// Submitter notifications
	"submitter_approved": "✅ Ваш трек <b>{title}</b> одобрен и опубликован!",
	"submitter_rejected": "❌ Ваш трек <b>{title}</b> не был одобрен.\n\nПожалуйста, убедитесь что отправка соответствует правилам и попробуйте снова.",

	// Donation flow
	"custom_amount_prompt": "✏️ Введите сумму в сумах (например, 15000):",
	"amount_not_number":    "❌ Пожалуйста, введите корректное число",
	"amount_below_min":     "❌ Минимальная сумма — {min} сум",
	"amount_above_max":     "❌ Максимальная сумма — {max} сум",
	"donation_throttled":   "⏳ Вы достигли часового лимита донатов для этого трека. Попробуйте позже.",
	"ask_note":             "✅ Сумма: <b>{amount} сум</b>\n\n🎵 {title}\n🎤 {artist}\n\nХотите оставить сообщение артисту?",
	"choose_visibility":    "Выберите видимость доната:",
	"note_prompt":          "Отправьте сообщение (до 120 символов). Ссылки будут удалены.",
	"note_saved":           "✅ Сообщение сохранено.",
	"donation_canceled":    "❌ Донат отменён.",
	"donation_confirmed":   "✅ Донат подтверждён (Демо). Спасибо за поддержку артиста!",
	"anon_updated":         "Обновлено.",
	"confirmed_short":      "Подтверждено ✅",
	"canceled_short":       "Отменено.",

	// Cancel & help
	"cancelled":         "Отменено.",
	"nothing_to_cancel": "Нечего отменять.",
	"help_text":         "🎵 <b>Sado Music Bot - Помощь</b>\n\n<b>Основные команды:</b>\n• /start — Запустить бота\n• /channels — Список каналов\n• /search — Поиск артиста или трека\n• /help — Это сообщение помощи\n\n<b>Для артистов:</b>\n• /submit — Загрузить новый трек\n• /profile — Просмотр/редактирование профиля\n\n<b>Прочее:</b>\n• /language — Сменить язык\n• /cancel — Отменить текущую операцию\n• /chatid — Получить ID чата\n\n<i>Кнопки донатов пока в демо-режиме.</i>",

	// Channels
	"channels_list_header": "📺 <b>Наши каналы</b>\n\nВ этих каналах вы найдёте лучшую музыку:",
	"no_channels":          "Пока нет каналов.",

	// Search
	"search_prompt":         "🔍 <b>Поиск</b>\n\nОтправьте имя артиста или название трека:",
	"search_no_results":     "❌ Ничего не найдено. Попробуйте другой запрос.",
	"search_results_header": "🔍 <b>Результаты поиска:</b>\n",

	// Dispatcher prompts
	"choose_user_type":       "Кто вы?",
	"listener_info":          "🎧 Отлично! Открывайте новую музыку в наших каналах:\n/channels — список каналов\n/search — поиск артиста или трека",
	"send_audio_prompt":      "🎵 Отправьте аудиофайл трека:",
	"channel_not_configured": "⚠️ Для этого жанра не настроен канал. Проверьте настройки и попробуйте снова.",

	// Button labels
	"i_am_artist":        "🎤 Я артист",
	"i_am_listener":      "🎧 Я слушатель",
	"cancel":             "❌ Отмена",
	"confirm":            "✅ Подтвердить",
	"edit_name":          "✏️ Изменить имя",
	"edit_payment":       "💳 Изменить платёжную ссылку",
	"edit_genre":         "🎧 Изменить жанр",
	"edit_bio":           "📝 Изменить био",
	"custom_amount":      "✍️ Другая сумма",
	"add_note":           "💬 Добавить заметку",
	"skip_note":          "⏭ Продолжить без заметки",
	"public_donation":    "👤 Публично",
	"anonymous_donation": "🕶 Анонимно",
	"anon_on":            "🕶 Анонимно: ВКЛ",
	"anon_off":           "🕶 Анонимно: ВЫКЛ",
	"support_artist":     "❤️ Поддержать артиста",
}
