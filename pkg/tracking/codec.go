package tracking

import (
	"encoding/json"
	"fmt"

	"github.com/decker502/neelum/pkg/types"
)

// 消息类型
const (
	MsgReady  = "ready"
	MsgSample = "sample"
)

// Envelope 追踪端消息的外层结构：{"t": 类型, "p": 负载}
type Envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p,omitempty"`
}

// Point 屏幕坐标系中的一个点
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vec 转换为 types.Vec2
func (p Point) Vec() types.Vec2 {
	return types.Vec2{X: p.X, Y: p.Y}
}

// SamplePayload sample 消息的负载
// Keypoints 可选，只用于在追踪画面中绘制全部特征点
type SamplePayload struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Keypoints []Point `json:"keypoints,omitempty"`
}

// Encode 编码一条消息，payload 可为 nil（如 ready）
func Encode(t string, payload any) ([]byte, error) {
	if t == "" {
		return nil, fmt.Errorf("cannot encode envelope with empty type")
	}
	env := Envelope{T: t}
	if payload != nil {
		pb, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %q payload: %w", t, err)
		}
		env.P = pb
	}
	return json.Marshal(env)
}

// DecodeEnvelope 解析外层结构
func DecodeEnvelope(b []byte) (Envelope, error) {
	if len(b) == 0 {
		return Envelope{}, fmt.Errorf("cannot decode empty envelope")
	}
	var e Envelope
	if err := json.Unmarshal(b, &e); err != nil {
		return Envelope{}, fmt.Errorf("failed to decode envelope: %w", err)
	}
	if e.T == "" {
		return Envelope{}, fmt.Errorf("envelope has no type")
	}
	return e, nil
}

// DecodePayload 把负载解析为 T
func DecodePayload[T any](env Envelope) (T, error) {
	var out T
	if len(env.P) == 0 {
		return out, fmt.Errorf("empty payload for type %q", env.T)
	}
	if err := json.Unmarshal(env.P, &out); err != nil {
		return out, fmt.Errorf("failed to decode %q payload: %w", env.T, err)
	}
	return out, nil
}

// Apply 把一条消息写入 Feed
// 未知类型返回错误，调用方记录后跳过
func Apply(feed *Feed, raw []byte) error {
	env, err := DecodeEnvelope(raw)
	if err != nil {
		return err
	}

	switch env.T {
	case MsgReady:
		feed.MarkReady()
	case MsgSample:
		sample, err := DecodePayload[SamplePayload](env)
		if err != nil {
			return err
		}
		if len(sample.Keypoints) > 0 {
			points := make([]types.Vec2, len(sample.Keypoints))
			for i, kp := range sample.Keypoints {
				points[i] = kp.Vec()
			}
			feed.PushKeypoints(points)
		}
		feed.Push(types.Vec2{X: sample.X, Y: sample.Y})
	default:
		return fmt.Errorf("unknown message type %q", env.T)
	}
	return nil
}
