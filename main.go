package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/lang"

	"github.com/ytget/nostorage/internal/api"
	"github.com/ytget/nostorage/internal/config"
	"github.com/ytget/nostorage/internal/controller"
	"github.com/ytget/nostorage/internal/i18n"
	"github.com/ytget/nostorage/internal/logger"
	"github.com/ytget/nostorage/internal/model"
	"github.com/ytget/nostorage/internal/platform"
	"github.com/ytget/nostorage/internal/recent"
	"github.com/ytget/nostorage/internal/ui"
)

// Set during build via -ldflags "-X main.version=X.Y.Z -X main.apiBase=https://..."
var (
	version = "dev"
	apiBase = ""
)

const (
	AppID   = "com.ytget.nostorage"
	AppName = "No-Storage Downloader"

	// ConfigEnv names the optional YAML config file
	ConfigEnv = "NOSTORAGE_CONFIG"
)

func main() {
	cfg, err := config.Load(os.Getenv(ConfigEnv), apiBase, version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Log.Infow("starting",
		"app", AppName,
		"version", version,
		"api_base", cfg.API.BaseURL,
		"timeout", cfg.API.GetTimeout(),
	)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	systemLocale := lang.SystemLocale().String()

	localization := i18n.NewLocalization()
	localization.SetLanguage(i18n.ResolveLanguage(settings.GetLanguage(), systemLocale))

	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		logger.Log.Warnw("failed to ensure downloads dir", "dir", downloadsDir, "error", err)
	}

	httpClient := api.NewHTTPClient(api.HTTPConfig{
		Timeout:   cfg.API.GetTimeout(),
		UserAgent: cfg.API.UserAgent,
	})
	client := api.NewClient(cfg.API.BaseURL, httpClient, api.NewDirSaver(downloadsDir))
	client.SetUserAgent(cfg.API.UserAgent)

	store := recent.NewStore(myApp.Preferences())
	store.Load()

	ctrl := controller.New(controller.Deps{
		Fetcher:    client,
		Downloader: client,
		Recent:     store,
		Clipboard:  ui.NewClipboard(myApp),
		Translator: localization,
	})
	if mode, err := model.ParseMode(settings.GetLastMode()); err == nil {
		_ = ctrl.SetMode(mode)
	}

	ui.NewRootUI(ui.Options{
		Window:       myWindow,
		Controller:   ctrl,
		Settings:     settings,
		Thumbnails:   client,
		SystemLocale: systemLocale,
		OnDownloadDirChanged: func(dir string) {
			logger.Log.Infow("download directory changed", "dir", dir)
			client.SetSaver(api.NewDirSaver(dir))
		},
	})

	myWindow.ShowAndRun()
}
