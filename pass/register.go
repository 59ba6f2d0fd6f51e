package pass

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	mu sync.RWMutex
	d  = map[string]Pass{}
)

var ErrPassExists = errors.New("pass exists")

func Register(p Pass) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[p.Name()]
	if present {
		return fmt.Errorf("%s: %w", p.Name(), ErrPassExists)
	}
	d[p.Name()] = p
	return nil
}

func Lookup(name string) Pass {
	mu.RLock()
	defer mu.RUnlock()
	return d[name]
}

// Passes returns the registered passes sorted by name.
func Passes() []Pass {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Pass, 0, len(d))
	for _, p := range d {
		res = append(res, p)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name() < res[j].Name() })
	return res
}
