package rules

import (
	"slices"
	"sync"

	"github.com/kevin-chtw/tw_mjcore/mahjong"
)

// Names 支持的规则
var Names = []string{NameRiichi, NameMCR, NameShanghai}

var (
	mu       sync.RWMutex
	registry = make(map[string]RuleSet)
)

// Register 注册或替换一种规则，名字必须在 Names 中
func Register(rs RuleSet) error {
	if !slices.Contains(Names, rs.Name()) {
		return mahjong.Errorf(mahjong.ErrUnsupportedShape, "unknown ruleset %q", rs.Name())
	}
	mu.Lock()
	defer mu.Unlock()
	registry[rs.Name()] = rs
	return nil
}

// MustRegister 供各规则包 init 使用
func MustRegister(rs RuleSet) {
	if err := Register(rs); err != nil {
		panic(err)
	}
}

// Lookup 查找规则，未注册返回 ErrUnsupportedShape
func Lookup(name string) (RuleSet, error) {
	mu.RLock()
	defer mu.RUnlock()
	rs, ok := registry[name]
	if !ok {
		return nil, mahjong.Errorf(mahjong.ErrUnsupportedShape, "ruleset %q not registered", name)
	}
	return rs, nil
}

// Registered 已注册的规则名
func Registered() []string {
	mu.RLock()
	defer mu.RUnlock()
	var res []string
	for _, name := range Names {
		if _, ok := registry[name]; ok {
			res = append(res, name)
		}
	}
	return res
}
