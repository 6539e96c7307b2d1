package export

import (
	"context"
	"fmt"
	"path/filepath"

	"bitbucket.org/seferidata/pos_backend/config"
	"bitbucket.org/seferidata/pos_backend/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

func (f Format) IsValid() bool {
	return f == FormatCSV || f == FormatXLSX
}

// Result reports one completed export run.
type Result struct {
	FilePath string `json:"file_path"`
	RowCount int    `json:"row_count"`
}

// Filename builds the conventional export filename, e.g. master_2026-08-28.csv.
func Filename(prefix string, date string, format Format) string {
	return fmt.Sprintf("%s_%s.%s", prefix, date, format)
}

// ExportMaster builds and writes the master export for one business date into
// outDir. Build errors abort before anything is written.
func ExportMaster(ctx context.Context, db *gorm.DB, opts Options, outDir string, format Format) (*Result, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: unsupported export format %q", utils.ErrorInvalidInput, format)
	}
	rows, err := BuildMasterRows(ctx, db, opts)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(outDir, Filename("master", opts.Date, format))
	if format == FormatXLSX {
		err = WriteMasterXLSX(path, rows)
	} else {
		err = WriteCSVFile(path, MasterCSV(rows))
	}
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	config.GetLogger().WithFields(logrus.Fields{
		"module":          "export",
		"organization_id": opts.OrganizationId,
		"date":            opts.Date,
		"bucket_minutes":  opts.BucketMinutes,
		"rows":            len(rows),
		"file":            path,
	}).Info("master export written")

	return &Result{FilePath: path, RowCount: len(rows)}, nil
}

// ExportProducts builds and writes the per-product export for one business date.
func ExportProducts(ctx context.Context, db *gorm.DB, opts Options, outDir string, format Format) (*Result, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: unsupported export format %q", utils.ErrorInvalidInput, format)
	}
	rows, err := BuildProductRows(ctx, db, opts)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(outDir, Filename("products", opts.Date, format))
	if format == FormatXLSX {
		err = WriteProductXLSX(path, rows)
	} else {
		err = WriteCSVFile(path, ProductCSV(rows))
	}
	if err != nil {
		return nil, fmt.Errorf("writing %s: %w", path, err)
	}

	config.GetLogger().WithFields(logrus.Fields{
		"module":          "export",
		"organization_id": opts.OrganizationId,
		"date":            opts.Date,
		"bucket_minutes":  opts.BucketMinutes,
		"rows":            len(rows),
		"file":            path,
	}).Info("product export written")

	return &Result{FilePath: path, RowCount: len(rows)}, nil
}
