// Package ratemodel provides the yearly rate sources the minter gateway
// compounds owed M with. Rates are in basis points.
package ratemodel

import (
	"context"
	"fmt"
	"sort"
)

// RateModel returns the current yearly rate in basis points.
type RateModel interface {
	Rate(ctx context.Context) (uint32, error)
}

// ParamsSource is the subset of the registrar read by MinterRateModel.
type ParamsSource interface {
	BaseMinterRate(ctx context.Context) uint32
	MaxMinterRate(ctx context.Context) uint32
}

// MinterRateModel follows the governance base rate, capped by the
// governance max rate.
type MinterRateModel struct {
	params ParamsSource
}

func NewMinterRateModel(params ParamsSource) MinterRateModel {
	return MinterRateModel{params: params}
}

func (m MinterRateModel) Rate(ctx context.Context) (uint32, error) {
	base := m.params.BaseMinterRate(ctx)
	if max := m.params.MaxMinterRate(ctx); base > max {
		return max, nil
	}
	return base, nil
}

// FixedRateModel always returns the same rate.
type FixedRateModel uint32

func (f FixedRateModel) Rate(context.Context) (uint32, error) {
	return uint32(f), nil
}

// Registry resolves rate models by the name stored in the registrar params.
type Registry struct {
	models map[string]RateModel
}

func NewRegistry() *Registry {
	return &Registry{models: make(map[string]RateModel)}
}

// Register adds a model under name. Registering a name twice panics, as it
// can only happen during app wiring.
func (r *Registry) Register(name string, m RateModel) *Registry {
	if _, ok := r.models[name]; ok {
		panic(fmt.Sprintf("rate model %q already registered", name))
	}
	r.models[name] = m
	return r
}

// Get returns the model registered under name.
func (r *Registry) Get(name string) (RateModel, bool) {
	m, ok := r.models[name]
	return m, ok
}

// Names returns the registered model names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.models))
	for n := range r.models {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry wires the models selectable through the registrar's
// rate_model parameter.
func DefaultRegistry(params ParamsSource, minterName, zeroName string) *Registry {
	return NewRegistry().
		Register(minterName, NewMinterRateModel(params)).
		Register(zeroName, FixedRateModel(0))
}
