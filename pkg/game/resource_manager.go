package game

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/decker502/roulette/pkg/embedded"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontName 内置字体在缓存中的键
const DefaultFontName = "builtin:goregular"

// ResourceManager is responsible for centralized management of font resources.
// It loads fonts from disk or from the embedded data directory and caches the
// parsed sources so each file is parsed only once.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. The internal caches use standard Go maps.
// For the single-threaded game loop, no synchronization is needed.
//
// Usage:
//
//	rm := NewResourceManager(logger)
//	source := rm.FontSourceOrDefault(fontPath)
type ResourceManager struct {
	fontSourceCache map[string]*text.GoTextFaceSource // path -> parsed font
	fontFaceCache   map[string]*text.GoTextFace       // "path:size" -> face
	logger          log.Logger
}

// NewResourceManager creates and initializes a new ResourceManager instance.
func NewResourceManager(logger log.Logger) *ResourceManager {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &ResourceManager{
		fontSourceCache: make(map[string]*text.GoTextFaceSource),
		fontFaceCache:   make(map[string]*text.GoTextFace),
		logger:          log.With(logger, "component", "resources"),
	}
}

// LoadFontSource loads a TrueType/OpenType font and caches the parsed source.
// Paths starting with "data/" are read from the embedded resources, others from disk.
//
// Parameters:
//   - path: The font file path, or DefaultFontName for the bundled Go font.
//
// Returns:
//   - The parsed font source.
//   - An error if the file cannot be read or parsed.
func (rm *ResourceManager) LoadFontSource(path string) (*text.GoTextFaceSource, error) {
	if source, ok := rm.fontSourceCache[path]; ok {
		return source, nil
	}

	fontData, err := rm.readFont(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
	}

	rm.fontSourceCache[path] = source
	return source, nil
}

func (rm *ResourceManager) readFont(path string) ([]byte, error) {
	switch {
	case path == DefaultFontName:
		return goregular.TTF, nil
	case strings.HasPrefix(path, "data/"):
		return embedded.ReadFile(path)
	default:
		return os.ReadFile(path)
	}
}

// FontSourceOrDefault 加载指定字体，失败或未指定时回退到内置字体
//
// 内置字体只覆盖拉丁字符，非拉丁标签需要通过 --font 指定字体
func (rm *ResourceManager) FontSourceOrDefault(path string) *text.GoTextFaceSource {
	if path != "" {
		source, err := rm.LoadFontSource(path)
		if err == nil {
			level.Info(rm.logger).Log("msg", "font loaded", "path", path)
			return source
		}
		level.Warn(rm.logger).Log("msg", "font unavailable, using built-in font", "path", path, "err", err)
	}

	source, err := rm.LoadFontSource(DefaultFontName)
	if err != nil {
		// goregular 是编译进来的固定数据，解析失败只可能是依赖损坏
		level.Error(rm.logger).Log("msg", "built-in font unusable", "err", err)
		return nil
	}
	return source
}

// LoadFont loads a font and creates a text face with the given size.
// The font face is cached with a key combining path and size.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, err := rm.LoadFontSource(path)
	if err != nil {
		return nil, err
	}

	goTextFace := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = goTextFace
	return goTextFace, nil
}

// GetFont retrieves a previously loaded font face from the cache, or nil.
func (rm *ResourceManager) GetFont(path string, size float64) *text.GoTextFace {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	return rm.fontFaceCache[cacheKey]
}
