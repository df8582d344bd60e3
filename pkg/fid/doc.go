// Package fid 提供 64 位时间有序分布式 ID（Flower ID）
//
// 一个 FID 由三个字段按高位到低位打包而成：
//   - timestamp：43 位，自可配置纪元以来的时间刻度
//   - sequence：11 位，同一刻度内的序号（0..2047）
//   - generator：10 位，生成器编号（0..1023）
//
// 由于 timestamp 占据高位，FID 的无符号数值大小即生成时间顺序，
// 可以直接用 <、== 等运算符比较。
//
// 三种外部表示：
//   - 数值形式：64 位无符号整数
//   - 二进制形式：8 字节大端序
//   - 文本形式：11 个字符的 URL 安全 Base64（无填充）
//
// 使用方式：
//
//	gen, err := fid.NewBuilder(42).Build()
//	if err != nil {
//		// 生成器编号超出 10 位范围
//	}
//	id, err := gen.Next()
//	// id.String(): "V-q48AQglKA" 这样的 11 字符文本
//	// id.Uint64(): 对应的 64 位数值
//
// 解析已有的 ID：
//
//	id, err := fid.FromString("V-q48AQglKA")
//	ts, seq, g := id.Timestamp(), id.Sequence(), id.Generator()
//
// 多个进程各自持有不同的 generator 编号即可独立生成不冲突的 ID，
// 编号的分配需要由外部协调，本包不负责。
package fid
