package components

import "github.com/decker502/neelum/pkg/types"

// FallingComponent 标记实体为飘落物，并存储其种类信息
// 飘落物从创建起由实体管理器独占，直到被碰撞结算、离屏回收或回合重置删除
type FallingComponent struct {
	Category  types.Category // 种类：水滴 / 阳光 / 污染物
	Size      float64        // 尺寸（像素），决定资源增益
	SpawnEdge types.Edge     // 从哪一侧进入屏幕
}
