package scenes

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneFactory 场景工厂函数类型
// 延迟创建场景，避免场景之间的循环依赖
type SceneFactory func() Scene

// 场景名称
const (
	SceneStart = "start"
	SceneGame  = "game"
)

// SceneManager manages the game's high-level screens by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	factories    map[string]SceneFactory
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{
		factories: make(map[string]SceneFactory),
	}
}

// Register 注册命名场景的工厂函数
func (sm *SceneManager) Register(name string, factory SceneFactory) {
	sm.factories[name] = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// SwitchToNamed 通过已注册的工厂创建并切换到命名场景
// 返回是否切换成功
func (sm *SceneManager) SwitchToNamed(name string) bool {
	factory, ok := sm.factories[name]
	if !ok {
		log.Printf("[SceneManager] 错误: 场景 %q 未注册", name)
		return false
	}

	scene := factory()
	if scene == nil {
		log.Printf("[SceneManager] 错误: 无法创建场景: %s", name)
		return false
	}

	sm.SwitchTo(scene)
	log.Printf("[SceneManager] 切换到场景: %s", name)
	return true
}

// GetCurrentScene 返回当前活动的场景
//
// 用于游戏关闭时检查当前场景是否需要保存状态
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
