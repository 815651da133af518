package provider

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"audio-transcript/internal/app/errors"
)

// Creator builds a capability from configuration
type Creator func(ctx context.Context, config CapabilityConfig) (Capability, error)

// capabilityRegistry stores capability creation functions
var (
	capabilityRegistry = make(map[string]Creator)
	registryMutex      sync.RWMutex
)

// RegisterCapability registers a creator under name
func RegisterCapability(name string, creator Creator) {
	registryMutex.Lock()
	defer registryMutex.Unlock()
	capabilityRegistry[name] = creator
}

// GetCreator returns the creator registered under name
func GetCreator(name string) (Creator, error) {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	creator, ok := capabilityRegistry[name]
	if !ok {
		return nil, errors.ErrInvalidConfig.With(fmt.Errorf("capability %s not registered", name))
	}
	return creator, nil
}

// NewCapability looks up name and builds the capability
func NewCapability(ctx context.Context, name string, config CapabilityConfig) (Capability, error) {
	creator, err := GetCreator(name)
	if err != nil {
		return nil, err
	}
	return creator(ctx, config)
}

// ListRegisteredCapabilities returns all registered names, sorted
func ListRegisteredCapabilities() []string {
	registryMutex.RLock()
	defer registryMutex.RUnlock()

	names := lo.Keys(capabilityRegistry)
	sort.Strings(names)
	return names
}
