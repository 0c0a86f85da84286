package service

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vibe-gaming/clan-api/internal/config"
	"github.com/vibe-gaming/clan-api/internal/domain"
	"github.com/vibe-gaming/clan-api/internal/repository"
	"github.com/vibe-gaming/clan-api/pkg/logger"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	columnID        = "id"
	columnName      = "name"
	columnRegion    = "region"
	columnCreatedAt = "created_at"

	utf8BOM = "\ufeff"
)

var exportHeader = []string{columnID, columnName, columnRegion, columnCreatedAt}

type clanCSVService struct {
	clanRepository repository.Clans
	cfg            config.CSV
}

func newClanCSVService(clanRepository repository.Clans, cfg config.CSV) *clanCSVService {
	return &clanCSVService{
		clanRepository: clanRepository,
		cfg:            cfg,
	}
}

// Import loads clans from the configured import file.
func (s *clanCSVService) Import(ctx context.Context) (int, error) {
	return s.ImportFile(ctx, s.cfg.ImportPath)
}

// Export writes every clan to the configured export file.
func (s *clanCSVService) Export(ctx context.Context) (int, error) {
	return s.ExportFile(ctx, s.cfg.ExportPath)
}

// ImportFile creates one clan per data row of the file at path, in file order.
// The whole file is validated before anything is stored, and rows are inserted
// in a single transaction: a malformed file leaves the store untouched.
func (s *clanCSVService) ImportFile(ctx context.Context, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "open import file %s", path)
	}
	defer f.Close()

	clans, err := readClans(f)
	if err != nil {
		return 0, errors.WithMessagef(err, "read import file %s", path)
	}

	if len(clans) == 0 {
		return 0, nil
	}

	if err := s.clanRepository.CreateBatch(ctx, clans); err != nil {
		return 0, errors.Wrap(err, "store imported clans")
	}

	logger.Info("clans imported from csv", zap.String("path", path), zap.Int("count", len(clans)))

	return len(clans), nil
}

// ExportFile writes all clans to path, replacing any existing file. Rows are
// written to a temporary file next to path and renamed into place.
func (s *clanCSVService) ExportFile(ctx context.Context, path string) (int, error) {
	clans, err := s.clanRepository.GetAll(ctx, domain.ClanFilter{})
	if err != nil {
		return 0, errors.Wrap(err, "list clans for export")
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".clans-export-*.csv")
	if err != nil {
		return 0, errors.Wrap(err, "create export temp file")
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if err := writeClans(tmp, clans); err != nil {
		tmp.Close()
		return 0, err
	}

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return 0, errors.Wrap(err, "chmod export file")
	}

	if err := tmp.Close(); err != nil {
		return 0, errors.Wrap(err, "close export file")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return 0, errors.Wrapf(err, "move export file to %s", path)
	}

	logger.Info("clans exported to csv", zap.String("path", path), zap.Int("count", len(clans)))

	return len(clans), nil
}

func readClans(r io.Reader) ([]domain.Clan, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrap(ErrMalformedCSV, "missing header row")
	}
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedCSV, "header: %v", err)
	}

	index := headerIndex(header)
	nameCol, ok := index[columnName]
	if !ok {
		return nil, errors.Wrapf(ErrMalformedCSV, "missing required column %q", columnName)
	}
	regionCol, hasRegion := index[columnRegion]

	clans := []domain.Clan{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedCSV, "%v", err)
		}

		if isEmptyRow(record) {
			continue
		}

		line, _ := reader.FieldPos(0)

		name := cell(record, nameCol)
		if strings.TrimSpace(name) == "" {
			return nil, errors.Wrapf(ErrMalformedCSV, "line %d: empty %q", line, columnName)
		}

		var region *string
		if hasRegion {
			v := cell(record, regionCol)
			region = &v
		}

		clans = append(clans, domain.NewClan(name, region))
	}

	return clans, nil
}

func writeClans(w io.Writer, clans []domain.Clan) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(exportHeader); err != nil {
		return errors.Wrap(err, "write export header")
	}

	for _, clan := range clans {
		region := ""
		if clan.Region != nil {
			region = *clan.Region
		}
		record := []string{
			clan.ID.String(),
			clan.Name,
			region,
			clan.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "write clan %s", clan.ID)
		}
	}

	writer.Flush()
	return errors.Wrap(writer.Error(), "flush export file")
}

// headerIndex maps lower-cased, trimmed column names to their position.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return idx
}

// cell returns the value at col exactly as read, surrounding spaces included.
func cell(record []string, col int) string {
	if col >= len(record) {
		return ""
	}
	return record[col]
}

func isEmptyRow(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
