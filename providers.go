package envspec

import "os"

type envProvider struct{}

// Env returns a provider that reads from the process environment.
func Env() Provider {
	return envProvider{}
}

func (envProvider) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

type mapProvider struct {
	values map[string]string
}

// Map returns a provider from a string map. The map is copied.
func Map(values map[string]string) Provider {
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}
	return &mapProvider{values: m}
}

func (p *mapProvider) Lookup(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// lookupAll consults providers from last to first, so later providers win.
func lookupAll(providers []Provider, key string) (string, bool) {
	for i := len(providers) - 1; i >= 0; i-- {
		if v, ok := providers[i].Lookup(key); ok {
			return v, true
		}
	}
	return "", false
}
