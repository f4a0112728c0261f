package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/port"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/workflow"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/xlsxexport"
)

// RegisterExport is a rendered drawing-register workbook.
type RegisterExport struct {
	Filename string
	Content  []byte
}

// ExportService renders a project's drawing register as an xlsx workbook.
type ExportService interface {
	Register(ctx context.Context, viewer domain.Viewer, token string, projectID uuid.UUID) (*RegisterExport, error)
}

type exportService struct {
	projectAPI port.ProjectAPI
	drawingAPI port.DrawingAPI
	sheetName  string
	maxRows    int
	now        func() time.Time
}

// NewExportService creates an ExportService implementation.
func NewExportService(projectAPI port.ProjectAPI, drawingAPI port.DrawingAPI, sheetName string, maxRows int) ExportService {
	return &exportService{
		projectAPI: projectAPI,
		drawingAPI: drawingAPI,
		sheetName:  sheetName,
		maxRows:    maxRows,
		now:        time.Now,
	}
}

func (s *exportService) Register(ctx context.Context, viewer domain.Viewer, token string, projectID uuid.UUID) (*RegisterExport, error) {
	var (
		project  *domain.Project
		drawings []domain.Drawing
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		project, err = s.projectAPI.Get(egCtx, token, projectID)
		if err != nil {
			return fmt.Errorf("getting project: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		drawings, err = s.drawingAPI.List(egCtx, token, projectID)
		if err != nil {
			return fmt.Errorf("listing drawings: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if s.maxRows > 0 && len(drawings) > s.maxRows {
		drawings = drawings[:s.maxRows]
	}

	now := s.now()
	views := workflow.Views(workflow.ClassifyViewer(viewer), drawings, now)

	w, err := xlsxexport.NewWriter(s.sheetName)
	if err != nil {
		return nil, fmt.Errorf("creating workbook: %w", err)
	}
	defer func() { _ = w.Close() }()

	if err := w.WriteHeader(); err != nil {
		return nil, fmt.Errorf("writing header: %w", err)
	}
	if err := w.WriteViews(views); err != nil {
		return nil, fmt.Errorf("writing rows: %w", err)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serializing workbook: %w", err)
	}

	return &RegisterExport{
		Filename: xlsxexport.BuildFilename(project.Name, now),
		Content:  buf.Bytes(),
	}, nil
}
