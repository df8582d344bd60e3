package fid

import (
	"errors"
	"sync"
	"time"
)

// Unit 时间戳刻度单位
type Unit int

const (
	// UnitMillisecond 毫秒刻度（默认）
	UnitMillisecond Unit = iota
	// UnitSecond 秒刻度，同样的 43 位可以覆盖更长的年限
	UnitSecond
)

// String 返回单位的字符串表示
func (u Unit) String() string {
	if u == UnitSecond {
		return "second"
	}
	return "millisecond"
}

// DefaultEpochOffset 默认纪元偏移（秒）
// 把纪元移到 2017-01-01T00:00:00Z，节省 timestamp 位宽
const DefaultEpochOffset int64 = -1483228800

// Builder 生成器配置构造器
// 值类型，每个 setter 返回修改后的副本，没有共享的可变状态：
//
//	gen, err := fid.NewBuilder(42).
//		Unit(fid.UnitSecond).
//		WaitSequence(false).
//		Build()
type Builder struct {
	generator     uint16
	epochOffset   int64
	lastTimestamp uint64
	sequence      uint16
	waitSequence  bool
	unit          Unit
}

// NewBuilder 创建构造器
// 默认值：纪元偏移 DefaultEpochOffset、初始 last timestamp 0、
// 初始 sequence 0、sequence 耗尽时等待下一刻度、毫秒刻度
func NewBuilder(generator uint16) Builder {
	return Builder{
		generator:    generator,
		epochOffset:  DefaultEpochOffset,
		waitSequence: true,
		unit:         UnitMillisecond,
	}
}

// EpochOffset 设置纪元偏移（秒，可为负）
// 偏移作用在原始 Unix 时间上，与刻度单位无关
func (b Builder) EpochOffset(v int64) Builder {
	b.epochOffset = v
	return b
}

// LastTimestamp 设置初始的 last timestamp
func (b Builder) LastTimestamp(v uint64) Builder {
	b.lastTimestamp = v
	return b
}

// Sequence 设置初始 sequence
func (b Builder) Sequence(v uint16) Builder {
	b.sequence = v
	return b
}

// WaitSequence 设置 sequence 耗尽时是否等待下一刻度
// 为 false 时 Next 立即返回 ErrSequenceOverflow，由调用方决定重试
func (b Builder) WaitSequence(v bool) Builder {
	b.waitSequence = v
	return b
}

// Unit 设置时间戳刻度单位
func (b Builder) Unit(v Unit) Builder {
	b.unit = v
	return b
}

// Build 校验配置并创建生成器
// 只校验 generator 编号范围（超出 10 位返回 ErrGeneratorOverflow），
// 纪元偏移和刻度单位由调用方负责，配错只能重建生成器
func (b Builder) Build() (*Generator, error) {
	if b.generator > MaxGenerator {
		return nil, overflowError(ErrGeneratorOverflow, uint64(b.generator))
	}
	return &Generator{
		generator:     b.generator,
		epochOffset:   b.epochOffset,
		waitSequence:  b.waitSequence,
		unit:          b.unit,
		lastTimestamp: b.lastTimestamp,
		sequence:      b.sequence,
		now:           time.Now,
	}, nil
}

// Generator Flower ID 生成器
// (lastTimestamp, sequence) 是唯一的可变状态，由互斥锁保证
// 完整的读-改-写是原子的，可以被多个 goroutine 并发调用
type Generator struct {
	mu            sync.Mutex
	lastTimestamp uint64
	sequence      uint16

	// 以下字段构建后不再变化
	generator    uint16
	epochOffset  int64
	waitSequence bool
	unit         Unit

	// now 可在测试中替换以固定时钟
	now func() time.Time
}

// Next 生成下一个 ID
//
// 可能的错误：
//   - ErrSequenceOverflow：当前刻度内已发出 2048 个 ID 且未开启等待，
//     状态不变，下一刻度重试即可
//   - ErrSysTimeIsInPast：时钟回拨（或早于纪元），状态不变，
//     时钟恢复后可继续生成
//   - ErrTimestampOverflow：43 位 timestamp 已耗尽，对该配置是
//     永久性错误
//
// 开启等待时 sequence 耗尽只阻塞当前调用，等待期间不持有锁，
// 其他调用方不会被串行在等待者之后
func (g *Generator) Next() (FID, error) {
	for {
		id, err := g.tryNext()
		if err == nil {
			return id, nil
		}
		if !g.waitSequence || !errors.Is(err, ErrSequenceOverflow) {
			return 0, err
		}
		time.Sleep(g.waitInterval())
	}
}

// tryNext 执行一次完整的状态转移，持锁覆盖时钟采样和整个读-改-写
// 采样必须在锁内，否则拿着旧采样的调用方在锁竞争中落后于
// 新采样的调用方时，会把单调前进的时钟误判为回拨
func (g *Generator) tryNext() (FID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now, err := g.tick()
	if err != nil {
		return 0, err
	}

	switch {
	case now > g.lastTimestamp:
		g.lastTimestamp = now
		g.sequence = 0
	case now == g.lastTimestamp:
		if g.sequence >= MaxSequence {
			return 0, overflowError(ErrSequenceOverflow, uint64(g.sequence))
		}
		g.sequence++
	default:
		// 时钟回拨，不修改任何状态
		return 0, ErrSysTimeIsInPast
	}
	return New(g.lastTimestamp, g.sequence, g.generator)
}

// tick 采样系统时钟并换算为配置刻度下的 timestamp
func (g *Generator) tick() (uint64, error) {
	ms := g.now().UnixMilli() + g.epochOffset*1000
	if ms < 0 {
		// 时钟早于纪元
		return 0, ErrSysTimeIsInPast
	}
	t := uint64(ms)
	if g.unit == UnitSecond {
		t /= 1000
	}
	if t > MaxTimestamp {
		return 0, overflowError(ErrTimestampOverflow, t)
	}
	return t, nil
}

// waitInterval sequence 耗尽后重新采样时钟的间隔
func (g *Generator) waitInterval() time.Duration {
	if g.unit == UnitSecond {
		return 100 * time.Millisecond
	}
	return time.Millisecond
}
