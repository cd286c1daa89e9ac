// init_test.go - 测试环境初始化

package embedded

import "testing/fstest"

// resetForTest 重置包状态，避免测试之间互相影响
func resetForTest() {
	mu.Lock()
	defer mu.Unlock()
	dataFS, overrideFS, assetsFS = nil, nil, nil
	initialized = false
}

// testDataFS 模拟根目录 embed.go 嵌入的 data 目录
func testDataFS() fstest.MapFS {
	return fstest.MapFS{
		"data/vortex.yaml":    {Data: []byte("particleCount: 700\n")},
		"data/portfolio.yaml": {Data: []byte("author: Portfolio\n")},
	}
}
