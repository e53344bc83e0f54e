package fixtures

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// Имена файлов фикстур
const (
	ProductsFile     = "products.json"
	IntelligenceFile = "market-intelligence.json"
	SchemesFile      = "schemes.json"
	InsightsFile     = "product-insights.json"
)

//go:embed data/*.json
var embedded embed.FS

// Source - откуда читаются файлы фикстур
type Source interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
}

// ObjectReader - объектное хранилище (MinIO)
type ObjectReader interface {
	ReadObject(ctx context.Context, name string) ([]byte, error)
}

type fsSource struct {
	fsys fs.FS
}

func (s fsSource) ReadFile(_ context.Context, name string) ([]byte, error) {
	return fs.ReadFile(s.fsys, name)
}

// Embedded - фикстуры, вшитые в бинарник
func Embedded() Source {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("embedded fixtures: %v", err))
	}
	return fsSource{fsys: sub}
}

// Dir - фикстуры из каталога на диске
func Dir(dir string) Source {
	return fsSource{fsys: os.DirFS(dir)}
}

type objectSource struct {
	reader ObjectReader
	prefix string
}

// Objects - фикстуры из бакета, prefix - "папка" внутри бакета
func Objects(reader ObjectReader, prefix string) Source {
	return objectSource{reader: reader, prefix: prefix}
}

func (s objectSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	return s.reader.ReadObject(ctx, path.Join(s.prefix, name))
}
