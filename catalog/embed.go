package catalog

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed locales/*.toml
var localeFS embed.FS

var (
	defaultOnce   sync.Once
	defaultBundle *Bundle
)

// Embedded returns the catalog files compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(localeFS, "locales")
	if err != nil {
		panic(err)
	}
	return sub
}

// Default returns the bundle built from the embedded catalogs. It panics if
// they cannot be loaded.
func Default() *Bundle {
	defaultOnce.Do(func() {
		b, err := Load(Embedded())
		if err != nil {
			panic("catalog: loading embedded catalogs: " + err.Error())
		}
		defaultBundle = b
	})
	return defaultBundle
}

// Lookup returns the template for key from the embedded catalogs.
func Lookup(key string, locales ...string) string {
	return Default().Lookup(key, locales...)
}
