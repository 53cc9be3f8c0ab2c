package i18n

var translations = map[string]map[string]string{
	LanguageEnglish: {
		KeyLanguageToggle:            "EN / RU",
		KeyEyebrow:                   "No-Storage Streamer",
		KeyTitle:                     "Video Downloader",
		KeyDescription:               "Paste a link from YouTube, TikTok, or any yt-dlp supported source.",
		KeyPastePlaceholder:          "Paste a link...",
		KeyVideo:                     "Video",
		KeyAudioOnly:                 "Audio Only (MP3)",
		KeyPaste:                     "Paste",
		KeyGetInfo:                   "Get Info",
		KeyFetching:                  "Fetching...",
		KeyNoPreview:                 "No preview available",
		KeyResultCard:                "Result Card",
		KeyDuration:                  "Duration",
		KeySize:                      "Size",
		KeyAudioOutput:               "Audio Output",
		KeyChooseQuality:             "Choose Quality",
		KeyConverting:                "Converting stream to MP3 on the fly...",
		KeySelected:                  "Selected",
		KeyVideoTooLong:              "Video is too long for instant server streaming.",
		KeyPreparing:                 "Preparing...",
		KeyDownloadMP3:               "Download MP3",
		KeyDownload:                  "Download",
		KeyRecentDownloads:           "Recent Downloads",
		KeyTapToReload:               "Tap to reload",
		KeyFooter:                    "Streams are proxied directly from the source. No files are stored on the server.",
		KeyErrorPasteURL:             "Please paste a video URL.",
		KeyErrorFetch:                "Failed to fetch video info.",
		KeyErrorClipboardUnsupported: "Clipboard access not supported.",
		KeySuccessClipboard:          "Pasted from clipboard.",
		KeyErrorClipboardRead:        "Unable to read clipboard.",
		KeyErrorSelectQuality:        "Please select a quality to download.",
		KeySuccessDownload:           "Download started:",
		KeyErrorDownload:             "Download failed.",

		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyDownloadDirectory: "Download Directory",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyOpenFolder:        "Show in Folder",
		KeyOpenFile:          "Open",
		KeyErrorOpeningFile:  "Error opening file",
	},
	LanguageRussian: {
		KeyLanguageToggle:            "EN / RU",
		KeyEyebrow:                   "Без хранения",
		KeyTitle:                     "Скачивание Видео",
		KeyDescription:               "Вставьте ссылку из YouTube, TikTok или любого источника yt-dlp.",
		KeyPastePlaceholder:          "Вставьте ссылку...",
		KeyVideo:                     "Видео",
		KeyAudioOnly:                 "Только Аудио",
		KeyPaste:                     "Вставить",
		KeyGetInfo:                   "Найти",
		KeyFetching:                  "Поиск...",
		KeyNoPreview:                 "Превью недоступно",
		KeyResultCard:                "Результат",
		KeyDuration:                  "Длительность",
		KeySize:                      "Размер",
		KeyAudioOutput:               "Аудио",
		KeyChooseQuality:             "Качество",
		KeyConverting:                "Конвертация...",
		KeySelected:                  "Выбрано",
		KeyVideoTooLong:              "Видео слишком длинное для мгновенной загрузки.",
		KeyPreparing:                 "Подготовка...",
		KeyDownloadMP3:               "Скачать MP3",
		KeyDownload:                  "Скачать",
		KeyRecentDownloads:           "История",
		KeyTapToReload:               "Нажмите, чтобы повторить",
		KeyFooter:                    "Потоки идут напрямую с источника. Файлы не хранятся на сервере.",
		KeyErrorPasteURL:             "Пожалуйста, вставьте ссылку.",
		KeyErrorFetch:                "Не удалось получить информацию.",
		KeyErrorClipboardUnsupported: "Буфер обмена недоступен.",
		KeySuccessClipboard:          "Вставлено из буфера обмена.",
		KeyErrorClipboardRead:        "Не удалось прочитать буфер обмена.",
		KeyErrorSelectQuality:        "Выберите качество для загрузки.",
		KeySuccessDownload:           "Загрузка началась:",
		KeyErrorDownload:             "Ошибка загрузки.",

		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyDownloadDirectory: "Папка загрузки",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyOpenFolder:        "Показать в папке",
		KeyOpenFile:          "Открыть",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
	},
}
