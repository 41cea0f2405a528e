package scenes

import (
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/automoto/ropewalk/assets"
	"github.com/automoto/ropewalk/components"
	cfg "github.com/automoto/ropewalk/config"
	"github.com/automoto/ropewalk/input/keyboard"
	"github.com/automoto/ropewalk/level"
	"github.com/automoto/ropewalk/logger"
	"github.com/automoto/ropewalk/systems"
	"github.com/automoto/ropewalk/systems/factory"
	"github.com/automoto/ropewalk/systems/render"
	"github.com/automoto/ropewalk/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// SceneChanger swaps the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlatformerScene runs one level.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	watcher      *cfg.Watcher
	once         sync.Once
}

// NewPlatformerScene creates the scene for cfg.C.Level. watcher may be nil;
// when set, tuning changes are applied to the running player.
func NewPlatformerScene(sc SceneChanger, watcher *cfg.Watcher) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, watcher: watcher}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.reloadConfig()
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	lvl, err := loadLevel(cfg.C.Level)
	if err != nil {
		logger.Fatal("could not load level", zap.String("level", cfg.C.Level), zap.Error(err))
	}

	world := ecs.NewECS(donburi.NewWorld())

	// Input must be sampled before the player's frame tick
	world.AddSystem(systems.UpdateInput)
	world.AddSystem(systems.UpdatePlayer)
	world.AddSystem(systems.UpdatePhysics)
	world.AddSystem(systems.UpdateCamera)
	world.AddSystem(systems.UpdateLevelComplete)
	world.AddSystem(systems.UpdateAudio)

	world.AddRenderer(ecs.LayerDefault, render.DrawLevel)
	world.AddRenderer(ecs.LayerDefault, render.DrawPlayer)
	world.AddRenderer(ecs.LayerDefault, render.DrawDebug)
	world.AddRenderer(ecs.LayerDefault, render.DrawHUD)
	world.AddRenderer(ecs.LayerDefault, render.DrawLevelComplete)

	ps.ecs = world

	if _, err := factory.CreateLevel(ps.ecs, lvl, cfg.C.Level, keyboard.NewSource(), logger.Named("level")); err != nil {
		logger.Fatal("could not build level", zap.String("level", lvl.Name), zap.Error(err))
	}
	systems.SetCutscene(systems.BannerCutscene(ps.ecs))

	saved, err := systems.LoadProgress(lvl.Name)
	if err != nil {
		logger.Warn("could not load progress", zap.Error(err))
	}
	if entry, ok := components.Progress.First(ps.ecs.World); ok {
		components.Progress.SetValue(entry, components.ProgressData{Wins: saved.Wins, Deaths: saved.Deaths})
	}
}

// reloadConfig applies a changed tuning file. A file that fails to load
// leaves the current tuning in place.
func (ps *PlatformerScene) reloadConfig() {
	if ps.watcher == nil {
		return
	}
	path, ok := ps.watcher.Poll()
	if !ok {
		return
	}
	if err := cfg.LoadFile(path); err != nil {
		logger.Warn("config reload rejected", zap.String("path", path), zap.Error(err))
		return
	}
	tags.Player.Each(ps.ecs.World, func(e *donburi.Entry) {
		components.Player.Get(e).Controller.SetTuning(cfg.Player, cfg.Knockback)
	})
	logger.Info("config reloaded", zap.String("path", path))
}

// loadLevel reads name from the embedded levels, falling back to the
// filesystem so edited maps can be tried without rebuilding.
func loadLevel(name string) (*level.Level, error) {
	if _, err := fs.Stat(assets.Levels(), name); err == nil {
		return level.Load(assets.Levels(), name)
	}
	if _, err := os.Stat(name); err != nil {
		return nil, fmt.Errorf("level %s not found: %w", name, err)
	}
	return level.Load(os.DirFS(filepath.Dir(name)), filepath.Base(name))
}
