// Package config 提供 flowerid 服务的配置加载
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/jimyag/flowerid/pkg/fid"
)

// Config 服务配置
// 加载顺序：内置默认值 < YAML 配置文件 < 环境变量
type Config struct {
	// Address 是 HTTP 监听地址
	// 可以通过环境变量 FLOWERID_ADDRESS 配置
	Address string `yaml:"address"`

	// DataDir 是数据目录，存放流注册表的 sqlite 数据库
	// 可以通过环境变量 FLOWERID_DATA_DIR 配置
	// 默认：~/.local/share/flowerid
	DataDir string `yaml:"data_dir"`

	// Default 是服务启动时自动创建的默认流的生成器配置
	Default GeneratorConfig `yaml:"default"`
}

// GeneratorConfig 单个流的生成器配置
type GeneratorConfig struct {
	// Generator 是生成器编号，0..1023
	// 不同的服务实例必须配置不同的编号，分配由部署方负责
	// 可以通过环境变量 FLOWERID_GENERATOR 配置
	Generator uint16 `yaml:"generator"`

	// Unit 是时间戳刻度单位："millisecond" 或 "second"
	// 可以通过环境变量 FLOWERID_UNIT 配置
	Unit string `yaml:"unit"`

	// EpochOffset 是纪元偏移（秒），默认把纪元移到 2017-01-01
	// 可以通过环境变量 FLOWERID_EPOCH_OFFSET 配置
	EpochOffset int64 `yaml:"epoch_offset"`

	// WaitSequence 表示 sequence 耗尽时是否等待下一刻度
	// 可以通过环境变量 FLOWERID_WAIT_SEQUENCE 配置
	WaitSequence bool `yaml:"wait_sequence"`
}

// UnitMillisecond / UnitSecond 配置文件中的单位取值
const (
	UnitMillisecond = "millisecond"
	UnitSecond      = "second"
)

// New 加载配置
// 如果环境变量 FLOWERID_CONFIG 指向一个 YAML 文件，会先读取该文件，
// 再用其他环境变量覆盖
func New() (*Config, error) {
	cfg := &Config{
		Address: ":8080",
		DataDir: defaultDataDir(),
		Default: GeneratorConfig{
			Generator:    0,
			Unit:         UnitMillisecond,
			EpochOffset:  fid.DefaultEpochOffset,
			WaitSequence: true,
		},
	}

	if path := os.Getenv("FLOWERID_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DatabasePath 返回流注册表数据库的路径
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "flowerid.db")
}

// applyEnv 用环境变量覆盖配置
func (c *Config) applyEnv() error {
	if v := os.Getenv("FLOWERID_ADDRESS"); v != "" {
		c.Address = v
	}
	if v := os.Getenv("FLOWERID_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("FLOWERID_GENERATOR"); v != "" {
		id, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return fmt.Errorf("parse FLOWERID_GENERATOR: %w", err)
		}
		c.Default.Generator = uint16(id)
	}
	if v := os.Getenv("FLOWERID_UNIT"); v != "" {
		c.Default.Unit = v
	}
	if v := os.Getenv("FLOWERID_EPOCH_OFFSET"); v != "" {
		offset, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse FLOWERID_EPOCH_OFFSET: %w", err)
		}
		c.Default.EpochOffset = offset
	}
	if v := os.Getenv("FLOWERID_WAIT_SEQUENCE"); v != "" {
		wait, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse FLOWERID_WAIT_SEQUENCE: %w", err)
		}
		c.Default.WaitSequence = wait
	}
	return nil
}

// validate 校验配置
func (c *Config) validate() error {
	if c.Default.Generator > fid.MaxGenerator {
		return fmt.Errorf("generator %d out of range 0..%d", c.Default.Generator, fid.MaxGenerator)
	}
	if c.Default.Unit != UnitMillisecond && c.Default.Unit != UnitSecond {
		return fmt.Errorf("unknown timestamp unit %q", c.Default.Unit)
	}
	return nil
}

// defaultDataDir 默认数据目录，优先用户主目录下的 .local/share/flowerid
func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "flowerid")
	}
	return filepath.Join(os.TempDir(), "flowerid")
}
