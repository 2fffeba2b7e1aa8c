package systems

import (
	"log"

	"github.com/decker502/neelum/pkg/components"
	"github.com/decker502/neelum/pkg/ecs"
	"github.com/decker502/neelum/pkg/game"
	"github.com/decker502/neelum/pkg/types"
)

// CollisionResolver 把一次"玩家触碰飘落物"转换为游戏效果
//
// 增益在结算时直接写入回合的资源池；致死效果只返回，由会话决定是否结束回合。
// 实体在结算时立即删除，同一帧内对同一实体的第二次结算不产生任何效果。
type CollisionResolver struct {
	em *ecs.EntityManager
}

// NewCollisionResolver 创建碰撞结算器
func NewCollisionResolver(em *ecs.EntityManager) *CollisionResolver {
	return &CollisionResolver{em: em}
}

// Resolve 结算玩家与一个飘落物的碰撞
//
// 参数:
//   - round: 当前回合状态（资源池会被修改）
//   - id: 被触碰的飘落物
//
// 返回:
//   - []game.Effect: 产生的效果（实体不存在时为 nil）
func (r *CollisionResolver) Resolve(round *game.RoundState, id ecs.EntityID) []game.Effect {
	falling, ok := ecs.GetComponent[*components.FallingComponent](r.em, id)
	if !ok {
		return nil
	}

	// 立即删除，不等待帧末清理
	r.em.DestroyEntity(id)
	r.em.RemoveMarkedEntities()

	var effects []game.Effect
	switch falling.Category {
	case types.CategoryWater:
		amount := round.Water.GainFor(falling.Size)
		round.Water.Gain(amount)
		effects = append(effects, game.GainEffect(game.ResourceWater, amount))

	case types.CategorySun:
		amount := round.Sun.GainFor(falling.Size)
		round.Sun.Gain(amount)
		effects = append(effects, game.GainEffect(game.ResourceSun, amount))
		if round.Sun.IsOverflowed() {
			effects = append(effects, game.TerminalEffect(game.EndSunOverload))
		}

	case types.CategoryHazard:
		effects = append(effects, game.TerminalEffect(game.EndPollution))

	default:
		log.Printf("[CollisionResolver] WARNING: unknown category %d on entity %d", falling.Category, id)
	}

	return effects
}
