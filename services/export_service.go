package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/LinQu/SOGSCup/repositories"
	"github.com/LinQu/SOGSCup/storage"
)

type ExportKind string

const (
	ExportStandings ExportKind = "standings"
	ExportSchedule  ExportKind = "schedule"
	ExportFinalists ExportKind = "finalists"
)

type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type ExportService interface {
	Build(ctx context.Context, kind ExportKind, format ExportFormat) (*ExportFile, error)
	// BuildAndUpload additionally pushes the file to object storage and
	// returns its public location.
	BuildAndUpload(ctx context.Context, kind ExportKind, format ExportFormat) (*ExportFile, *storage.UploadResult, error)
}

type exportService struct {
	standingsService StandingsService
	bracketService   BracketService
	matchRepo        repositories.MatchRepository
	uploader         storage.FileUploader // nil when R2 is not configured
}

func NewExportService(
	standingsService StandingsService,
	bracketService BracketService,
	matchRepo repositories.MatchRepository,
	uploader storage.FileUploader,
) ExportService {
	return &exportService{
		standingsService: standingsService,
		bracketService:   bracketService,
		matchRepo:        matchRepo,
		uploader:         uploader,
	}
}

func (s *exportService) Build(ctx context.Context, kind ExportKind, format ExportFormat) (*ExportFile, error) {
	records, err := s.records(ctx, kind)
	if err != nil {
		return nil, err
	}

	name := fmt.Sprintf("%s_%s.%s", kind, time.Now().Format("20060102_150405"), format)
	switch format {
	case FormatCSV:
		data, err := encodeCSV(records)
		if err != nil {
			return nil, err
		}
		return &ExportFile{Name: name, ContentType: "text/csv", Data: data}, nil
	case FormatXLSX:
		data, err := encodeXLSX(records)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Name:        name,
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, fmt.Errorf("%w: format %q", ErrValidationFailed, format)
	}
}

func (s *exportService) BuildAndUpload(ctx context.Context, kind ExportKind, format ExportFormat) (*ExportFile, *storage.UploadResult, error) {
	if s.uploader == nil {
		return nil, nil, ErrUploaderNotConfigured
	}
	file, err := s.Build(ctx, kind, format)
	if err != nil {
		return nil, nil, err
	}

	result, err := s.uploader.Upload(ctx, "exports/"+file.Name, file.ContentType, bytes.NewReader(file.Data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to upload export: %w", err)
	}
	return file, result, nil
}

func (s *exportService) records(ctx context.Context, kind ExportKind) ([][]string, error) {
	switch kind {
	case ExportStandings:
		return s.standingsRecords(ctx)
	case ExportSchedule:
		return s.scheduleRecords(ctx)
	case ExportFinalists:
		return s.finalistRecords(ctx)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownExportKind, kind)
	}
}

func (s *exportService) standingsRecords(ctx context.Context) ([][]string, error) {
	groups, err := s.standingsService.AllGroupStandings(ctx)
	if err != nil {
		return nil, err
	}

	records := [][]string{{"Group", "Team", "Played", "Wins", "Losses", "PF", "PA", "Diff", "Points"}}
	for _, g := range groups {
		for _, row := range g.Table {
			records = append(records, []string{
				g.Group,
				row.Team,
				strconv.Itoa(row.GamesPlayed),
				strconv.Itoa(row.Wins),
				strconv.Itoa(row.Losses),
				strconv.Itoa(row.PointsFor),
				strconv.Itoa(row.PointsAgainst),
				strconv.Itoa(row.PointsDiff),
				strconv.Itoa(row.Points),
			})
		}
	}
	return records, nil
}

func (s *exportService) scheduleRecords(ctx context.Context) ([][]string, error) {
	matches, err := s.matchRepo.List(ctx, repositories.MatchFilter{})
	if err != nil {
		return nil, err
	}

	records := [][]string{{"ID", "Group", "Team1", "Team2", "Score1", "Score2", "Status", "Updated"}}
	for _, m := range matches {
		records = append(records, []string{
			strconv.Itoa(m.ID),
			m.Group,
			m.Team1,
			m.Team2,
			formatScore(m.Score1),
			formatScore(m.Score2),
			string(m.Status),
			m.UpdatedAt.Format("02/01/2006 15:04"),
		})
	}
	return records, nil
}

func (s *exportService) finalistRecords(ctx context.Context) ([][]string, error) {
	finalists, err := s.bracketService.Finalists(ctx)
	if err != nil {
		return nil, err
	}

	records := [][]string{{"Group", "Winner", "RunnerUp"}}
	for _, f := range finalists {
		records = append(records, []string{f.Group, f.Winner, f.RunnerUp})
	}
	return records, nil
}

func formatScore(score *int) string {
	if score == nil {
		return ""
	}
	return strconv.Itoa(*score)
}

func encodeCSV(records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to encode csv: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeXLSX(records [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for rowIdx, record := range records {
		for colIdx, value := range record {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to encode xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
