package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/domain"
	"github.com/deepaksahajwani/4th-Dimension-sub002/internal/service"
	"github.com/deepaksahajwani/4th-Dimension-sub002/mocks"
)

func TestExportService_Register(t *testing.T) {
	projectAPI := new(mocks.MockProjectAPI)
	drawingAPI := new(mocks.MockDrawingAPI)
	svc := service.NewExportService(projectAPI, drawingAPI, "Drawing Register", 5000)

	projectID := uuid.New()
	projectAPI.On("Get", mock.Anything, "tok", projectID).Return(&domain.Project{
		ID: projectID, Name: "Hillside Villa",
	}, nil)
	drawingAPI.On("List", mock.Anything, "tok", projectID).Return([]domain.Drawing{
		{ID: uuid.New(), Name: "Ground Floor Plan", Category: "Architecture", FileURL: "gf.pdf", IsIssued: true, CurrentRevision: 2},
		{ID: uuid.New(), Name: "Section AA", Category: "Architecture"},
	}, nil)

	export, err := svc.Register(context.Background(), owner(), "tok", projectID)
	require.NoError(t, err)

	assert.Contains(t, export.Filename, "Hillside_Villa_register_")
	assert.Contains(t, export.Filename, ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(export.Content))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	name, err := f.GetCellValue("Drawing Register", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Ground Floor Plan", name)

	status, err := f.GetCellValue("Drawing Register", "C3")
	require.NoError(t, err)
	assert.Equal(t, "Pending Upload", status)
}

func TestExportService_Register_CapsRows(t *testing.T) {
	projectAPI := new(mocks.MockProjectAPI)
	drawingAPI := new(mocks.MockDrawingAPI)
	svc := service.NewExportService(projectAPI, drawingAPI, "Register", 1)

	projectID := uuid.New()
	projectAPI.On("Get", mock.Anything, "tok", projectID).Return(&domain.Project{ID: projectID, Name: "P"}, nil)
	drawingAPI.On("List", mock.Anything, "tok", projectID).Return([]domain.Drawing{
		{ID: uuid.New(), Name: "One"},
		{ID: uuid.New(), Name: "Two"},
	}, nil)

	export, err := svc.Register(context.Background(), owner(), "tok", projectID)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(export.Content))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Register")
	require.NoError(t, err)
	// Header plus the single capped row.
	assert.Len(t, rows, 2)
}

func TestExportService_Register_ProjectNotFound(t *testing.T) {
	projectAPI := new(mocks.MockProjectAPI)
	drawingAPI := new(mocks.MockDrawingAPI)
	svc := service.NewExportService(projectAPI, drawingAPI, "Register", 5000)

	projectID := uuid.New()
	projectAPI.On("Get", mock.Anything, "tok", projectID).Return(nil, domain.ErrNotFound)
	drawingAPI.On("List", mock.Anything, "tok", projectID).Return([]domain.Drawing{}, nil).Maybe()

	export, err := svc.Register(context.Background(), owner(), "tok", projectID)

	assert.Nil(t, export)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
