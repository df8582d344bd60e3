package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jimyag/flowerid/internal/flowerid/repository"
)

// TestServices 包含测试所需的服务和依赖
type TestServices struct {
	Repo          *repository.Repository
	StreamService *StreamService
}

// setupTestServices 为每个测试用例创建独立的测试环境
// 每个测试用例都会获得自己的数据库文件和 service 实例
func setupTestServices(t *testing.T) *TestServices {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	repo, err := repository.New(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = repo.Close()
	})

	streamService, err := NewStreamService(context.Background(), repository.NewStreamRepository(repo.DB()))
	require.NoError(t, err)

	return &TestServices{
		Repo:          repo,
		StreamService: streamService,
	}
}

// uint16Ptr 测试用的取地址辅助
func uint16Ptr(v uint16) *uint16 { return &v }

func boolPtr(v bool) *bool { return &v }

func int64Ptr(v int64) *int64 { return &v }
