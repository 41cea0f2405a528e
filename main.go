package main

import (
	"flag"
	"image"

	"github.com/automoto/ropewalk/assets"
	"github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/logger"
	"github.com/automoto/ropewalk/scenes"
	"github.com/automoto/ropewalk/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(watcher *config.Watcher) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, watcher)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML tuning file applied over the defaults")
	watch := flag.Bool("watch", false, "reload the tuning file when it changes")
	levelPath := flag.String("level", "", "level to play, embedded (levels/level1.tmx) or a path on disk")
	backend := flag.String("backend", "", "physics backend: resolv or chipmunk")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	logFile := flag.String("log-file", "", "also write logs to this file, rotated")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			// The logger isn't up yet; fall back to a console one.
			_ = logger.Init("info", "")
			logger.Fatal("invalid config", zap.Error(err))
		}
	}
	if *levelPath != "" {
		config.C.Level = *levelPath
	}
	if *backend != "" {
		config.Physics.Backend = *backend
	}
	if *logLevel != "" {
		config.Logging.Level = *logLevel
	}
	if *logFile != "" {
		config.Logging.File = *logFile
	}

	if err := logger.Init(config.Logging.Level, config.Logging.File); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	if err := config.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	var watcher *config.Watcher
	if *watch && *configPath != "" {
		w, err := config.Watch(*configPath)
		if err != nil {
			logger.Warn("could not watch config", zap.String("path", *configPath), zap.Error(err))
		} else {
			watcher = w
			defer watcher.Close()
		}
	}

	// Progress is kept in memory only when this fails
	_ = systems.InitPersistence("ropewalk")

	if config.Sound.Enabled {
		loader := assets.NewAudioLoader(audio.NewContext(config.Sound.SampleRate))
		loader.PreloadSFX()
		systems.SetSFXPlayer(loader)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	logger.Info("starting",
		zap.String("level", config.C.Level),
		zap.String("backend", config.Physics.Backend),
		zap.Int("tps", config.C.TPS),
	)
	if err := ebiten.RunGame(NewGame(watcher)); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
