package core

import (
	"fmt"
	"sort"
)

// Registry maps model kinds to their descriptors. It is built once during
// startup and read-only afterwards, so concurrent resolves need no locking.
// The registry is passed explicitly to the Service; there is no process-wide
// instance. Supporting a new model means adding one descriptor here, not
// touching the orchestrator.
type Registry struct {
	models map[ModelKind]ModelDescriptor
}

// NewRegistry builds the registry for the four supported models from their
// persistence handles.
func NewRegistry(stores Stores) *Registry {
	r := &Registry{models: make(map[ModelKind]ModelDescriptor, 4)}
	r.register(ModelDescriptor{Kind: ModelCustomers, Transform: transformCustomer, Store: stores.Customers})
	r.register(ModelDescriptor{Kind: ModelProducts, Transform: transformProduct, Store: stores.Products})
	r.register(ModelDescriptor{Kind: ModelOrders, Transform: transformOrder, Store: stores.Orders})
	r.register(ModelDescriptor{Kind: ModelEmployees, Transform: transformEmployee, Store: stores.Employees})
	return r
}

// register adds a descriptor.
// Panics on duplicate kinds or incomplete descriptors: both are wiring bugs.
func (r *Registry) register(desc ModelDescriptor) {
	if desc.Transform == nil || desc.Store == nil {
		panic(fmt.Sprintf("incomplete model descriptor: %s", desc.Kind.Key()))
	}
	if _, exists := r.models[desc.Kind]; exists {
		panic(fmt.Sprintf("model already registered: %s", desc.Kind.Key()))
	}
	desc.Key = desc.Kind.Key()
	r.models[desc.Kind] = desc
}

// Resolve looks up the descriptor for a wire-level model key.
// Returns an UnknownModelError for keys outside the registered set.
func (r *Registry) Resolve(key string) (ModelDescriptor, error) {
	kind, err := ParseModel(key)
	if err != nil {
		return ModelDescriptor{}, err
	}
	desc, ok := r.models[kind]
	if !ok {
		return ModelDescriptor{}, &UnknownModelError{Model: key}
	}
	return desc, nil
}

// Get returns the descriptor for a kind.
func (r *Registry) Get(kind ModelKind) (ModelDescriptor, bool) {
	desc, ok := r.models[kind]
	return desc, ok
}

// All returns every registered descriptor, sorted by key for stable output.
func (r *Registry) All() []ModelDescriptor {
	result := make([]ModelDescriptor, 0, len(r.models))
	for _, desc := range r.models {
		result = append(result, desc)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result
}

// Count returns the number of registered models.
func (r *Registry) Count() int {
	return len(r.models)
}
