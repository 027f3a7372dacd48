package action

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Registry 动作注册中心
type Registry struct {
	actions map[string]Action
	mu      sync.RWMutex
	logger  *zap.Logger
}

// NewRegistry 创建动作注册中心
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		actions: make(map[string]Action),
		logger:  logger,
	}
}

// Register 注册动作
func (r *Registry) Register(action Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := action.Name()
	if name == "" {
		return fmt.Errorf("action name cannot be empty")
	}

	if _, exists := r.actions[name]; exists {
		return fmt.Errorf("action already registered: %s", name)
	}

	r.actions[name] = action
	r.logger.Info("动作已注册", zap.String("name", name))
	return nil
}

// Get 获取动作
func (r *Registry) Get(name string) (Action, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	action, ok := r.actions[name]
	if !ok {
		return nil, fmt.Errorf("action not found: %s", name)
	}
	return action, nil
}

// List 列出所有已注册的动作名称
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	return names
}

// Count 获取注册的动作数量
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.actions)
}
