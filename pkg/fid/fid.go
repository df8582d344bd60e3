package fid

import (
	"encoding/base64"
	"encoding/binary"
)

// 字段位宽，高位到低位依次为 timestamp、sequence、generator
const (
	TimestampBits = 43
	SequenceBits  = 11
	GeneratorBits = 10

	// MaxTimestamp timestamp 字段的最大值
	MaxTimestamp uint64 = 1<<TimestampBits - 1
	// MaxSequence sequence 字段的最大值
	MaxSequence uint16 = 1<<SequenceBits - 1
	// MaxGenerator generator 编号的最大值
	MaxGenerator uint16 = 1<<GeneratorBits - 1

	// BinaryLen 二进制形式的长度（大端序）
	BinaryLen = 8
	// EncodedLen 文本形式的长度（URL 安全 Base64，无填充）
	EncodedLen = 11

	sequenceShift  = GeneratorBits
	timestampShift = GeneratorBits + SequenceBits
)

// textEncoding 文本编码使用 URL 安全字母表、无填充
// Strict 模式下末尾两个填充比特非零会被当作损坏数据拒绝
var textEncoding = base64.RawURLEncoding.Strict()

// FID 64 位 Flower ID
// 值类型，创建后不可变；数值大小即生成时间顺序
type FID uint64

// New 由三个字段打包出 FID
// 任一字段超出位宽时返回对应的溢出错误
func New(timestamp uint64, sequence uint16, generator uint16) (FID, error) {
	if timestamp > MaxTimestamp {
		return 0, overflowError(ErrTimestampOverflow, timestamp)
	}
	if sequence > MaxSequence {
		return 0, overflowError(ErrSequenceOverflow, uint64(sequence))
	}
	if generator > MaxGenerator {
		return 0, overflowError(ErrGeneratorOverflow, uint64(generator))
	}
	return FID(timestamp<<timestampShift |
		uint64(sequence)<<sequenceShift |
		uint64(generator)), nil
}

// FromUint64 由数值形式构造 FID
// 任何 64 位值在结构上都可以拆解，但只有按位宽打包出来的值
// 才保证单调有序、字段有意义
func FromUint64(v uint64) FID {
	return FID(v)
}

// FromBytes 由 8 字节大端序二进制形式解析 FID
// 长度不为 8 时返回 ErrWrongSliceSize
func FromBytes(b []byte) (FID, error) {
	if len(b) != BinaryLen {
		return 0, ErrWrongSliceSize
	}
	return FID(binary.BigEndian.Uint64(b)), nil
}

// FromString 由 11 字符文本形式解析 FID
// 长度不为 11、含有字母表之外的字符、或末尾填充比特非零时
// 返回 ErrBase64Decode
func FromString(s string) (FID, error) {
	if len(s) != EncodedLen {
		return 0, ErrBase64Decode
	}
	var buf [BinaryLen]byte
	if _, err := textEncoding.Decode(buf[:], []byte(s)); err != nil {
		return 0, decodeError(err)
	}
	return FID(binary.BigEndian.Uint64(buf[:])), nil
}

// Uint64 返回数值形式
func (f FID) Uint64() uint64 {
	return uint64(f)
}

// Timestamp 返回 timestamp 字段
func (f FID) Timestamp() uint64 {
	return uint64(f) >> timestampShift
}

// Sequence 返回 sequence 字段
func (f FID) Sequence() uint16 {
	return uint16(uint64(f) >> sequenceShift & uint64(MaxSequence))
}

// Generator 返回 generator 编号
func (f FID) Generator() uint16 {
	return uint16(uint64(f) & uint64(MaxGenerator))
}

// Bytes 返回 8 字节大端序二进制形式
func (f FID) Bytes() []byte {
	b := make([]byte, BinaryLen)
	binary.BigEndian.PutUint64(b, uint64(f))
	return b
}

// PutBytes 把二进制形式写入 dst
// dst 长度不为 8 时返回 ErrBufferWrongSize
func (f FID) PutBytes(dst []byte) error {
	if len(dst) != BinaryLen {
		return ErrBufferWrongSize
	}
	binary.BigEndian.PutUint64(dst, uint64(f))
	return nil
}

// EncodeText 把文本形式写入 dst 的前 11 字节
// dst 长度小于 11 时返回 ErrBufferWrongSize
func (f FID) EncodeText(dst []byte) error {
	if len(dst) < EncodedLen {
		return ErrBufferWrongSize
	}
	var buf [BinaryLen]byte
	binary.BigEndian.PutUint64(buf[:], uint64(f))
	textEncoding.Encode(dst, buf[:])
	return nil
}

// String 返回 11 字符文本形式，实现 fmt.Stringer
func (f FID) String() string {
	dst := make([]byte, EncodedLen)
	_ = f.EncodeText(dst)
	return string(dst)
}

// Compare 按无符号数值比较，返回 -1、0、1
func (f FID) Compare(other FID) int {
	switch {
	case f < other:
		return -1
	case f > other:
		return 1
	default:
		return 0
	}
}

// Less 报告 f 是否早于 other
func (f FID) Less(other FID) bool {
	return f < other
}

// MarshalText 实现 encoding.TextMarshaler
// JSON 序列化时 FID 表现为 11 字符文本形式
func (f FID) MarshalText() ([]byte, error) {
	dst := make([]byte, EncodedLen)
	if err := f.EncodeText(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// UnmarshalText 实现 encoding.TextUnmarshaler
func (f *FID) UnmarshalText(text []byte) error {
	id, err := FromString(string(text))
	if err != nil {
		return err
	}
	*f = id
	return nil
}
