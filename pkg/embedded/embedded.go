// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的资源。
//
// 资源分两类：
//   - "data/"   配置文件，默认来自嵌入的 FS，可由 --config-dir 目录覆盖
//   - "assets/" 图片等大文件，不嵌入，从磁盘读取（缺失时由资源管理器生成占位图）
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu          sync.RWMutex
	dataFS      fs.FS
	overrideFS  fs.FS
	assetsFS    fs.FS
	initialized bool
)

// Init 初始化数据文件系统
// 必须在 main() 开始时、任何资源加载之前调用。
// data 的根目录下应包含 "data/" 目录。
func Init(data fs.FS) {
	mu.Lock()
	defer mu.Unlock()
	dataFS = data
	if assetsFS == nil {
		assetsFS = os.DirFS(".")
	}
	initialized = true
}

// SetOverrideDir 设置配置覆盖目录
// 目录中的文件按文件名覆盖 "data/" 下的同名嵌入文件；传入空字符串取消覆盖。
func SetOverrideDir(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if dir == "" {
		overrideFS = nil
		return
	}
	overrideFS = os.DirFS(dir)
}

// SetAssetsFS 设置资源文件系统，其根目录下应包含 "assets/" 目录
// 默认为当前工作目录。
func SetAssetsFS(assets fs.FS) {
	mu.Lock()
	defer mu.Unlock()
	assetsFS = assets
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return initialized
}

// normalize 标准化路径分隔符为正斜杠并移除 "./" 前缀
func normalize(p string) string {
	return strings.TrimPrefix(filepath.ToSlash(p), "./")
}

// resolve 根据路径前缀选择文件系统
// 返回按优先级排列的候选 (FS, 路径) 列表
func resolve(p string) ([]fs.FS, []string, error) {
	mu.RLock()
	defer mu.RUnlock()
	if !initialized {
		return nil, nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}

	switch {
	case strings.HasPrefix(p, "data/"):
		var fss []fs.FS
		var paths []string
		if overrideFS != nil {
			fss = append(fss, overrideFS)
			paths = append(paths, strings.TrimPrefix(p, "data/"))
		}
		return append(fss, dataFS), append(paths, p), nil
	case strings.HasPrefix(p, "assets/"):
		return []fs.FS{assetsFS}, []string{p}, nil
	}
	return nil, nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", p)
}

// Open 根据路径前缀选择正确的文件系统并打开文件
// 路径必须以 "assets/" 或 "data/" 开头
func Open(name string) (fs.File, error) {
	name = normalize(name)
	fss, paths, err := resolve(name)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for i, fsys := range fss {
		f, err := fsys.Open(paths[i])
		if err == nil {
			return f, nil
		}
		lastErr = err
		if !errors.Is(err, fs.ErrNotExist) {
			break
		}
	}
	return nil, lastErr
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
// 路径必须以 "assets/" 或 "data/" 开头
func ReadFile(name string) ([]byte, error) {
	name = normalize(name)
	fss, paths, err := resolve(name)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for i, fsys := range fss {
		data, err := fs.ReadFile(fsys, paths[i])
		if err == nil {
			return data, nil
		}
		lastErr = err
		if !errors.Is(err, fs.ErrNotExist) {
			break
		}
	}
	return nil, lastErr
}

// Exists 检查文件是否存在
func Exists(name string) bool {
	file, err := Open(name)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 匹配嵌入（或资源）文件系统中的文件，不包含覆盖目录
// 路径模式必须以 "assets/" 或 "data/" 开头
func Glob(pattern string) ([]string, error) {
	pattern = normalize(pattern)
	fss, paths, err := resolve(pattern)
	if err != nil {
		return nil, err
	}
	last := len(fss) - 1
	return fs.Glob(fss[last], paths[last])
}
