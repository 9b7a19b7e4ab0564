package catalog

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/osse101/LoadoutCalc_Go/internal/domain"
	"github.com/osse101/LoadoutCalc_Go/internal/logger"
	"github.com/osse101/LoadoutCalc_Go/internal/metrics"
	"github.com/osse101/LoadoutCalc_Go/internal/validation"
)

//go:embed schemas/item.schema.json
var itemSchema []byte

// Loader reads item records from a directory of JSON files
type Loader interface {
	Load(ctx context.Context, dir string) (*LoadResult, error)
}

// LoadResult holds the decoded records in file order plus what was skipped
type LoadResult struct {
	Records []domain.Item
	Report  LoadReport
}

// LoadReport summarises a directory load
type LoadReport struct {
	Dir       string        `json:"dir"`
	FilesRead int           `json:"files_read"`
	Skipped   []SkippedFile `json:"skipped,omitempty"`
}

// SkippedFile is a file that could not be turned into a record
type SkippedFile struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

type itemLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader. With schemaCheck set, each file is validated
// against the embedded item schema and skipped when it does not conform.
func NewLoader(schemaCheck bool) (Loader, error) {
	l := &itemLoader{}
	if schemaCheck {
		v := validation.NewSchemaValidator()
		if err := v.RegisterSchema(ItemSchemaName, itemSchema); err != nil {
			return nil, fmt.Errorf(ErrMsgRegisterSchema, err)
		}
		l.schemaValidator = v
	}
	return l, nil
}

// Load reads every *.json file in dir in name order. Unreadable or malformed
// files are skipped and reported; only an unreadable directory is an error.
func (l *itemLoader) Load(ctx context.Context, dir string) (*LoadResult, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadDirFailed, dir, err)
	}

	result := &LoadResult{Report: LoadReport{Dir: dir}}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf(ErrMsgContextCanceled, err)
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ItemFileExt) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		result.Report.FilesRead++

		item, err := l.loadFile(path)
		if err != nil {
			log.Warn(LogMsgSkippedFile, "path", path, "error", err)
			metrics.CatalogFilesSkipped.Inc()
			result.Report.Skipped = append(result.Report.Skipped, SkippedFile{Path: path, Reason: err.Error()})
			continue
		}

		result.Records = append(result.Records, item)
	}

	log.Info(LogMsgLoadCompleted,
		"dir", dir,
		"files", result.Report.FilesRead,
		"records", len(result.Records),
		"skipped", len(result.Report.Skipped))

	return result, nil
}

func (l *itemLoader) loadFile(path string) (domain.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Item{}, fmt.Errorf(ErrMsgReadFileFailed, err)
	}

	if l.schemaValidator != nil {
		if err := l.schemaValidator.ValidateBytes(data, ItemSchemaName); err != nil {
			return domain.Item{}, fmt.Errorf(ErrMsgSchemaCheckFailed, err)
		}
	}

	return decodeRecord(data)
}

// LoadCatalog loads dir and builds a Catalog from it. An empty result is an
// error since nothing downstream can work without records.
func LoadCatalog(ctx context.Context, loader Loader, dir string) (*Catalog, *LoadReport, error) {
	result, err := loader.Load(ctx, dir)
	if err != nil {
		return nil, nil, err
	}
	if len(result.Records) == 0 {
		return nil, &result.Report, fmt.Errorf("%w: "+ErrMsgNoRecordsLoaded, domain.ErrCatalogNotLoaded, dir)
	}

	c := New(result.Records)
	for category, n := range c.Counts() {
		metrics.CatalogRecords.WithLabelValues(string(category)).Set(float64(n))
	}

	logger.FromContext(ctx).Info(LogMsgCatalogBuilt, "records", c.Len(), "partitions", len(c.Counts()))
	return c, &result.Report, nil
}
