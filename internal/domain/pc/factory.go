package pc

import (
	"fmt"
	"sync"
)

// CustomFactory creates uniquely named custom models. The counter is owned
// by the factory instance, so independent shops and tests do not share
// naming state. Created models are indexed by name for later lookup.
type CustomFactory struct {
	mu      sync.Mutex
	counter uint64
	models  map[string]*CustomModel
}

func NewCustomFactory() *CustomFactory {
	return &CustomFactory{models: make(map[string]*CustomModel)}
}

// New returns a fresh model named "custom-pc-N", N starting at 1, with an
// empty parts list. It never fails.
func (f *CustomFactory) New() *CustomModel {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.counter++
	m := newCustomModel(fmt.Sprintf("custom-pc-%d", f.counter))
	f.models[m.ModelName()] = m
	return m
}

// Get returns the model previously created under the given name.
func (f *CustomFactory) Get(name string) (*CustomModel, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	m, ok := f.models[name]
	return m, ok
}
